package console

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const questionsPerLesson = 10

type state int

const (
	stateIntro state = iota
	stateMainMenu
	stateLessonInfo
	stateQuestionLoop
	stateExit
)

func (s state) String() string {
	switch s {
	case stateIntro:
		return "intro"
	case stateMainMenu:
		return "main menu"
	case stateLessonInfo:
		return "lesson info"
	case stateQuestionLoop:
		return "question loop"
	case stateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// session is the position of the game in its state machine.
type session struct {
	state      state
	lessonKey  string // set for stateLessonInfo and stateQuestionLoop
	keepNotice bool   // skip clearing the menu so the last notice stays visible
}

func (h *Handler) step(ctx context.Context, input lineSource, s session) (session, error) {
	switch s.state {
	case stateIntro:
		return h.intro(ctx, input)
	case stateMainMenu:
		return h.mainMenu(ctx, input, s.keepNotice)
	case stateLessonInfo:
		return h.lessonInfo(ctx, input, s.lessonKey)
	case stateQuestionLoop:
		return h.questionLoop(ctx, input, s.lessonKey)
	case stateExit:
		h.screen.Type(h.screen.styles.notice, msgFarewell)
		return s, nil
	default:
		return s, fmt.Errorf("unknown state %s", s.state)
	}
}

func (h *Handler) intro(ctx context.Context, input lineSource) (session, error) {
	h.screen.Clear()
	h.screen.Header(titleWelcome)
	h.screen.Type(h.screen.styles.plain, msgIntroduction)

	if _, err := h.prompt(ctx, input, msgPressEnterToContinue); err != nil {
		return session{}, err
	}

	return session{state: stateMainMenu}, nil
}

func (h *Handler) mainMenu(ctx context.Context, input lineSource, keepNotice bool) (session, error) {
	items, err := h.lessonService.Menu(ctx)
	if err != nil {
		return session{}, fmt.Errorf("build menu: %w", err)
	}

	if !keepNotice {
		h.screen.Clear()
	}
	h.screen.Header(titleMainMenu)
	h.screen.Println(h.screen.styles.notice, msgSelectTense)
	for _, item := range items {
		h.screen.Println(h.screen.styles.plain, fmt.Sprintf(msgMenuItemFormat, item.Key, item.Label))
	}
	h.screen.Divider()

	choice, err := h.prompt(ctx, input, msgEnterChoice)
	if err != nil {
		return session{}, err
	}

	if choice == h.lessonService.ExitKey() {
		return session{state: stateExit}, nil
	}
	for _, item := range items {
		if item.Key == choice {
			h.logger.Info("lesson selected", zap.String("lesson", choice))
			return session{state: stateLessonInfo, lessonKey: choice}, nil
		}
	}

	h.logger.Debug("invalid menu choice", zap.String("choice", choice))
	h.screen.Type(h.screen.styles.warning, msgInvalidChoice)

	return session{state: stateMainMenu, keepNotice: true}, nil
}

func (h *Handler) lessonInfo(ctx context.Context, input lineSource, key string) (session, error) {
	lesson, err := h.lessonService.GetByKey(ctx, key)
	if err != nil {
		return session{}, fmt.Errorf("get lesson %q: %w", key, err)
	}

	h.screen.Clear()
	h.screen.Header(lesson.Name)
	h.screen.Type(h.screen.styles.explanation, lesson.Explanation)
	h.screen.Divider()
	h.screen.Type(h.screen.styles.plain, msgExamples)
	for _, ex := range lesson.Examples {
		h.screen.Type(h.screen.styles.example, msgExampleBullet+ex)
	}
	h.screen.Divider()

	if _, err := h.prompt(ctx, input, msgPressEnterToStart); err != nil {
		return session{}, err
	}

	return session{state: stateQuestionLoop, lessonKey: key}, nil
}

func (h *Handler) questionLoop(ctx context.Context, input lineSource, key string) (session, error) {
	lesson, err := h.lessonService.GetByKey(ctx, key)
	if err != nil {
		return session{}, fmt.Errorf("get lesson %q: %w", key, err)
	}

	h.screen.Type(h.screen.styles.notice, fmt.Sprintf(msgPracticeIntroFormat, lesson.Name))
	h.screen.Type(h.screen.styles.plain, fmt.Sprintf(msgPracticeRulesFormat, questionsPerLesson, lesson.Name))
	h.screen.Divider()

	for i := 0; i < questionsPerLesson; i++ {
		// Answers are free-form practice and are neither checked nor kept.
		if _, err := h.prompt(ctx, input, fmt.Sprintf(msgQuestionFormat, i+1, lesson.Name)); err != nil {
			return session{}, fmt.Errorf("question %d: %w", i+1, err)
		}

		h.screen.Type(h.screen.styles.encouragement, h.encouragementService.ForQuestion(ctx, i))
		h.screen.Divider()
	}

	h.screen.Type(h.screen.styles.plain, fmt.Sprintf(msgLessonCompletedFormat, questionsPerLesson, lesson.Name))
	h.logger.Info("lesson completed", zap.String("lesson", key))

	if _, err := h.prompt(ctx, input, msgPressEnterToReturn); err != nil {
		return session{}, err
	}

	return session{state: stateMainMenu}, nil
}
