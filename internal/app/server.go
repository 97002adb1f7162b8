package app

import (
	"context"
	"net"
	"net/http"

	"hotel/internal/config"
	"hotel/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerModule starts the HTTP listener; tests leave it out.
var ServerModule = fx.Module("server",
	fx.Provide(NewHTTPServer),
	fx.Invoke(func(*http.Server) {}),
)

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger, shutdowner fx.Shutdowner) *http.Server {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("mode", gin.Mode()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errs.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	return srv
}
