package console

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aliskhannn/grammar-genius/internal/domain/entities"
)

type LessonService interface {
	GetByKey(ctx context.Context, key string) (*entities.Lesson, error)
	Menu(ctx context.Context) ([]entities.MenuItem, error)
	ExitKey() string
}

type EncouragementService interface {
	ForQuestion(ctx context.Context, index int) string
}

// Handler runs the interactive game session on a terminal.
type Handler struct {
	in                   io.Reader
	screen               *Screen
	logger               *zap.Logger
	lessonService        LessonService
	encouragementService EncouragementService
}

func NewHandler(
	in io.Reader,
	screen *Screen,
	logger *zap.Logger,
	lessonService LessonService,
	encouragementService EncouragementService,
) *Handler {
	return &Handler{
		in:                   in,
		screen:               screen,
		logger:               logger,
		lessonService:        lessonService,
		encouragementService: encouragementService,
	}
}

// Run plays the game from the introduction until the user chooses to exit.
// It returns nil on a regular exit, an error wrapping ErrInputClosed when
// input ends early, and ctx.Err() when ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("console game started")
	defer h.logger.Info("console game stopped")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return h.run(ctx, newLineReader(ctx, h.in))
}

func (h *Handler) run(ctx context.Context, input lineSource) error {
	current := session{state: stateIntro}

	for {
		h.logger.Debug("entering state",
			zap.Stringer("state", current.state),
			zap.String("lesson", current.lessonKey),
		)

		next, err := h.step(ctx, input, current)
		if err != nil {
			return fmt.Errorf("%s: %w", current.state, err)
		}
		if err := h.screen.Err(); err != nil {
			return fmt.Errorf("%s: write output: %w", current.state, err)
		}

		if current.state == stateExit {
			return nil
		}
		current = next
	}
}

// prompt shows text and waits for one line of input.
func (h *Handler) prompt(ctx context.Context, input lineSource, text string) (string, error) {
	h.screen.Prompt(text)
	if err := h.screen.Err(); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	return input.ReadLine(ctx)
}
