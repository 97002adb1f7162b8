package main

import (
	"context"
	"log"
	"os"

	"hotel/internal/app"
	"hotel/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title			Hotel API
// @version		1.0
// @description	Reservas, habitaciones, pagos y facturación.
// @BasePath		/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	a := fx.New(
		fx.Supply(cfg),
		app.Module,
		app.ServerModule,
		fx.WithLogger(app.FxLogger),
	)

	if err := a.Start(context.Background()); err != nil {
		log.Printf("start: %v", err)
		os.Exit(1)
	}

	sig := <-a.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout+fx.DefaultTimeout)
	defer cancel()
	if err := a.Stop(stopCtx); err != nil {
		log.Printf("stop: %v", err)
	}
	os.Exit(sig.ExitCode)
}
