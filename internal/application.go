package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/cli"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownStore = errors.New("unknown session store")
)

// with no arguments the binary starts a game
var defaultCommandArgs = []string{"play"}

// RunApp - runs the command line given in args.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
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

	if len(args) == 0 {
		args = defaultCommandArgs
	}

	rootCmd := cli.NewRootCmd(logger, conf, newGamePlayFactory(logger, conf))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	return err
}

func newGamePlayFactory(logger *slog.Logger, conf *config.Config) cli.GamePlayFactory {
	return func(ctx context.Context) (service.GamePlayService, func() error, error) {
		gameRepo, closeStore, err := newGameRepository(ctx, conf)
		if err != nil {
			return nil, nil, err
		}

		botService := service.NewBotService(logger, conf.ParallelSearch)

		return service.NewGamePlayService(logger, gameRepo, botService), closeStore, nil
	}
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.SessionStore {
	case config.StoreMemory, "":
		return repository.NewMemoryGameRepository(), nothingToClose, nil
	case config.StoreRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == ":" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage, conf.Redis.SessionTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, conf.SessionStore)
	}
}

func nothingToClose() error {
	return nil
}
