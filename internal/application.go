package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe3d-client/internal/config"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/transport/websocket"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/usecase"
)

const defaultClientID = "local"

// PlayFunc drives one attached manager until the player is done.
type PlayFunc func(ctx context.Context, manager *usecase.GameManager) error

// RunApp - wires the client, keeps the push channel up and runs play. The session is torn
// down when play returns or the process is signalled, whichever comes first.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, notifier usecase.Notifier, play PlayFunc) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	remote := rest.New(logger, conf.GetAPIBase(), conf.RequestTimeout)

	channel := websocket.New(logger, conf.SocketURL, websocket.WithReconnect(websocket.ReconnectOptions{
		Attempts: conf.Reconnect.Attempts,
		Delay:    conf.Reconnect.Delay,
		MaxDelay: conf.Reconnect.MaxDelay,
	}))
	defer func() {
		if err := channel.Close(); err != nil {
			log.Error("could not close push channel", "error", err)
		}
	}()

	opts := []usecase.Option{
		usecase.WithNotifier(notifier),
		usecase.WithRequestTimeout(conf.RequestTimeout),
	}

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, &conf.Redis)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		repo := repository.NewSessionRepository(redisStorage.Connection, conf.Redis.TTL)
		opts = append(opts, usecase.WithSessionRepository(repo, clientID(conf)))
	}

	manager := usecase.NewGameManager(logger, remote, channel, opts...)
	defer manager.Close()

	// runs before the channel is closed, so the leave still has a connection to go out on
	release := manager.Bind(ctx)
	defer release()

	// run push channel
	go func() {
		if err := channel.Run(ctx); err != nil {
			log.Error("push channel stopped", "error", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			manager.Teardown(usecase.TeardownProcessExit)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := play(ctx, manager); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	return nil
}

func clientID(conf *config.Config) string {
	if conf.ClientID != "" {
		return conf.ClientID
	}

	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}

	return defaultClientID
}
