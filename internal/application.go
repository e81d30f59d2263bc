package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/onlyupgames/onlyup-backend/internal/config"
	"github.com/onlyupgames/onlyup-backend/internal/repository"
	"github.com/onlyupgames/onlyup-backend/internal/repository/storage"
	"github.com/onlyupgames/onlyup-backend/internal/tictactoe"
	"github.com/onlyupgames/onlyup-backend/internal/usecase"
	"github.com/onlyupgames/onlyup-backend/transport/console"
	"github.com/onlyupgames/onlyup-backend/transport/rest"
)

// RunApp - wires the engine to its front-ends and runs until the context is
// cancelled or a transport fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var archiveRepo repository.ArchiveRepository
	if conf.ArchiveEnabled {
		client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = client.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		archiveRepo = repository.NewArchiveRepository(client)
	}

	game := tictactoe.NewGame("")
	manager := usecase.NewGameManager(logger, game, archiveRepo)

	if conf.Console {
		log.Info("Starting console game")
		term := console.New(manager, os.Stdin, os.Stdout)
		if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console game failed: %w", err)
		}
		return nil
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort, rest.NewHandlers(manager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
