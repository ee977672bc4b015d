package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/opethe1st/connect4/internal/config"
	"github.com/opethe1st/connect4/internal/entity"
	"github.com/opethe1st/connect4/internal/repository"
	"github.com/opethe1st/connect4/internal/repository/storage"
	"github.com/opethe1st/connect4/internal/transport/terminal"
	"github.com/opethe1st/connect4/internal/transport/text"
	"github.com/opethe1st/connect4/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the game until the players quit or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	resultRepo, closeRepo, err := newResultRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	dimensions := entity.Dimensions{Height: conf.Board.Height, Width: conf.Board.Width}

	gameManager, err := usecase.NewGameManager(logger, dimensions, resultRepo)
	if err != nil {
		return fmt.Errorf("could not create game manager: %w", err)
	}

	switch conf.Mode {
	case config.ModeTerminal:
		return runTerminal(ctx, logger, gameManager)
	case config.ModeText:
		log.Info("Starting text runtime")
		if err = text.New(logger, gameManager, os.Stdin, os.Stdout).Run(ctx); err != nil {
			return fmt.Errorf("text runtime error: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runTerminal(ctx context.Context, logger *slog.Logger, gameManager *usecase.GameManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("Starting terminal runtime", "component", "app")

	if err = terminal.New(logger, screen, gameManager).Run(ctx); err != nil {
		return fmt.Errorf("terminal runtime error: %w", err)
	}

	return nil
}

// newResultRepository - Redis when enabled, otherwise results live only as long as the process.
func newResultRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryResultRepository(conf.Redis.HistoryLimit), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisClient, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisClient, conf.Redis.HistoryLimit), closeFn, nil
}
