package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/taunttactoe-backend/internal/bot"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/commentary"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/config"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/repository"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/repository/storage"
	"github.com/rocketscienceinc/taunttactoe-backend/internal/usecase"
	"github.com/rocketscienceinc/taunttactoe-backend/transport/rest"
	"github.com/rocketscienceinc/taunttactoe-backend/transport/websocket"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage backend")
)

// RunApp - runs the application.
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

	var playerRepo repository.PlayerRepository
	var gameRepo repository.GameRepository

	switch conf.Storage {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		playerRepo = repository.NewPlayerRepository(redisStorage.Connection)
		gameRepo = repository.NewGameRepository(redisStorage.Connection)
	case config.StorageMemory:
		playerRepo = repository.NewMemoryPlayerRepository()
		gameRepo = repository.NewMemoryGameRepository()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStorage, conf.Storage)
	}

	var producer commentary.Producer
	if conf.Commentary.URL != "" {
		producer = commentary.NewHTTPProducer(conf.Commentary.URL, conf.Commentary.Timeout())
	}

	commentaryService := commentary.NewService(logger, producer)
	botService := bot.NewService()
	hub := websocket.NewHub(logger)

	gameUseCase := usecase.NewGameManager(
		logger,
		playerRepo,
		gameRepo,
		botService,
		commentaryService,
		hub,
		conf.Bot.ThinkDelayMin(),
		conf.Bot.ThinkDelayMax(),
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restHandlers := rest.NewHandlers(logger, gameUseCase)
		if httpErr := rest.Start(conf.HTTPPort, restHandlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, hub)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
