package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/busbooker/config"
	"github.com/VladPetriv/busbooker/internal/api/server"
	"github.com/VladPetriv/busbooker/internal/api/telegram"
	"github.com/VladPetriv/busbooker/internal/migrations"
	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/internal/store"
	"github.com/VladPetriv/busbooker/pkg/database"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/notify"
)

// Run is used to start the application.
func Run(cfg *config.Config, logger *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("run application")
	}

	logger.Info().Msg("application stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	postgres, err := database.NewPostgreSQL(database.PostgreSQLOptions{
		User:     cfg.PostgreSQL.User,
		Password: cfg.PostgreSQL.Password,
		Database: cfg.PostgreSQL.Database,
		Host:     cfg.PostgreSQL.Host,
		Port:     cfg.PostgreSQL.Port,
		SSLMode:  cfg.PostgreSQL.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("create postgres connection: %w", err)
	}
	defer func() {
		if err := postgres.Close(); err != nil {
			logger.Error().Err(err).Msg("close postgres connection")
		}
	}()

	err = postgres.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	err = migrations.MigrateDB(logger, postgres.DB, cfg.PostgreSQL.Database, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	sinks, err := notificationSinks(cfg)
	if err != nil {
		return err
	}

	notifier := notify.New(notify.Options{
		Logger:       logger,
		Sinks:        sinks,
		WorkersCount: cfg.Notification.WorkersCount,
		QueueSize:    cfg.Notification.QueueSize,
	})
	notifier.Start(ctx)
	defer notifier.Stop()

	stores := service.Stores{
		Route:   store.NewRoute(postgres),
		Seat:    store.NewSeat(postgres),
		Payment: store.NewPayment(postgres),
		Health:  store.NewHealth(postgres),
	}
	apis := service.APIs{
		Notifier: notifier,
	}

	services := service.Services{
		Booking: service.NewBooking(&service.BookingOptions{
			Logger: logger,
			APIs:   apis,
			Stores: stores,
		}),
		Payment: service.NewPayment(&service.PaymentOptions{
			Logger: logger,
			APIs:   apis,
			Stores: stores,
		}),
		Health: service.NewHealth(logger, stores),
	}

	srv := server.New(server.Options{
		Logger:   logger,
		Services: services,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(cfg.HTTP.Address)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("shutting down http server")
	}

	err = srv.Shutdown()
	if err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

func notificationSinks(cfg *config.Config) ([]notify.Sink, error) {
	if cfg.Telegram.BotToken == "" {
		return nil, nil
	}

	if cfg.Telegram.ChatID == 0 {
		return nil, errors.New("telegram chat id is required when bot token is set")
	}

	telegramSink, err := telegram.New(telegram.Options{
		Token:  cfg.Telegram.BotToken,
		ChatID: cfg.Telegram.ChatID,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram sink: %w", err)
	}

	return []notify.Sink{telegramSink}, nil
}
