// Command noshow marks overdue reservations. Run it once a day from cron.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"hotel/internal/app"
	"hotel/internal/config"
	"hotel/internal/modules/reservation"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	grace := flag.Int("grace", cfg.NoShow.GraceDays, "days after fechaEntrada before a CONFIRMADA reservation is a no-show")
	flag.Parse()

	var (
		svc    *reservation.Service
		logger *zap.Logger
	)
	a := fx.New(
		fx.Supply(cfg),
		app.Module,
		fx.WithLogger(app.FxLogger),
		fx.Populate(&svc, &logger),
	)
	ctx := context.Background()
	if err := a.Start(ctx); err != nil {
		log.Printf("start: %v", err)
		os.Exit(1)
	}

	res, err := svc.Sweep(ctx, *grace)
	exit := 0
	if err != nil {
		logger.Error("no-show sweep failed", zap.Error(err))
		exit = 1
	} else {
		logger.Info("no-show sweep completed",
			zap.Int("grace_days", *grace),
			zap.Int("processed", res.Processed),
			zap.Int("no_shows", res.NoShows),
			zap.Int("expired", res.Expired),
			zap.Int("failed", res.Failed),
		)
		if res.Failed > 0 {
			exit = 1
		}
	}

	if err := a.Stop(ctx); err != nil {
		log.Printf("stop: %v", err)
	}
	os.Exit(exit)
}
