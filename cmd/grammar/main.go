package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/grammar-genius/internal/config"
	"github.com/aliskhannn/grammar-genius/internal/delivery/console"
	"github.com/aliskhannn/grammar-genius/internal/logger"
	"github.com/aliskhannn/grammar-genius/internal/repository"
	"github.com/aliskhannn/grammar-genius/internal/service"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return exitFailure
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Printf("init logger: %v", err)
		return exitFailure
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories and services.
	lessonRepo, err := repository.NewLessonRepository(cfg.LessonsJSONPath)
	if err != nil {
		lg.Error("failed to load lessons", zap.String("path", cfg.LessonsJSONPath), zap.Error(err))
		return exitFailure
	}

	encouragementRepo, err := repository.NewEncouragementRepository()
	if err != nil {
		lg.Error("failed to load encouragements", zap.Error(err))
		return exitFailure
	}

	lessonService := service.NewLessonService(lessonRepo)
	encouragementService := service.NewEncouragementService(encouragementRepo)

	screen := console.NewScreen(os.Stdout, console.NewTypewriter(cfg.UI.TypingDelay), cfg.UI.ClearScreen)

	handler := console.NewHandler(
		os.Stdin,
		screen,
		lg,
		lessonService,
		encouragementService,
	)
	if err := handler.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			lg.Info("shutdown signal received")
			return exitInterrupted
		}
		lg.Error("game aborted", zap.Error(err))
		return exitFailure
	}

	return 0
}
