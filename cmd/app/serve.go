package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecoandino/cmd/fx/category_fx"
	"ecoandino/cmd/fx/config_fx"
	"ecoandino/cmd/fx/controllers_fx"
	"ecoandino/cmd/fx/db_fx"
	"ecoandino/cmd/fx/health_fx"
	"ecoandino/cmd/fx/logger_fx"
	"ecoandino/cmd/fx/material_fx"
	"ecoandino/cmd/fx/point_fx"
	"ecoandino/internal/api/controllers"
	"ecoandino/internal/config"
	"ecoandino/pkg/middleware"
)

const readHeaderTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			config_fx.Module,
			logger_fx.Module,
			db_fx.Module,
			category_fx.Module,
			material_fx.Module,
			point_fx.Module,
			health_fx.Module,
			controllers_fx.Module,

			fx.Provide(ProvideRouter),
			fx.Invoke(StartServer),
		)
		if err := app.Err(); err != nil {
			return err
		}

		app.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	categoryController *controllers.CategoryController,
	materialController *controllers.MaterialController,
	pointsController *controllers.RecyclingPointsController,
	healthController *controllers.HealthController) *gin.Engine {

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	controllers.RegisterRoutes(r, categoryController, materialController, pointsController, healthController)

	return r
}
