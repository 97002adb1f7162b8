// Package app wires the service together with fx.
package app

import (
	"context"

	"hotel/internal/config"
	"hotel/internal/database"
	"hotel/internal/events"
	"hotel/internal/metrics"
	"hotel/internal/modules/notification"
	"hotel/internal/pkg/cache"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/jwt"
	"hotel/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewLogger,
		NewDB,
		NewCache,
		NewPublisher,
		NewMetrics,
		NewTokens,
		NewHub,
		clock.NewRealClock,
	),
)

// FxLogger routes fx's own event log through zap.
func FxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Named("fx")}
}

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Env,
		ServiceName: cfg.App.Name,
	})
}

func NewDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.DB.URL, database.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		LogQueries:      cfg.DB.LogQueries,
	}, log)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		log.Info("schema migrated")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return database.Close(db)
		},
	})
	return db, nil
}

func NewCache(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) cache.Store {
	c := cache.New(cfg.Cache.LocalMaxSize, cfg.Cache.MemcachedAddr, cfg.Cache.TTL, log)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.Stop()
			return nil
		},
	})
	return c
}

func NewPublisher(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (events.Publisher, error) {
	p, err := events.New(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

func NewMetrics(cfg *config.Config) *metrics.Metrics {
	return metrics.New(cfg.App.Name)
}

func NewTokens(cfg *config.Config) *jwt.Service {
	return jwt.New(cfg.JWT.Secret, cfg.JWT.TTL)
}

func NewHub(lc fx.Lifecycle, log *zap.Logger) *notification.Hub {
	hub := notification.NewHub(log)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}
