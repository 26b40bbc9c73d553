package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"rockguard/internal/api"
	"rockguard/internal/config"
	"rockguard/internal/dashboard"
	"rockguard/internal/logging"
	"rockguard/internal/mapview"
	"rockguard/internal/models"
	"rockguard/internal/repository"
	"rockguard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

//	@title			RockGuard API
//	@version		1.0
//	@description	Mine selection, heat overlays, chart panels and contact enquiries behind the RockGuard dashboard.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	repo, err := repository.Open(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open contact storage")
	}
	defer repo.Close()

	store := dashboard.NewStore(dashboard.Config{
		Map: mapview.Options{
			Tiles: models.TileLayer{
				URLTemplate: config.TileURL,
				Attribution: config.TileAttribution,
				MaxZoom:     config.TileMaxZoom,
			},
			Zoom:       config.MapZoom,
			HeatRadius: config.HeatRadius,
		},
		TTL:           config.SessionTTL,
		SweepInterval: config.SweepInterval,
		MaxSessions:   config.MaxSessions,
	})
	defer store.Close()

	// Initialize layers
	dashboardService := service.NewDashboardService(store, config.HeatRadius)
	contactService := service.NewContactService(repo)

	router, err := api.SetupRouter(dashboardService, contactService)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build router")
	}

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return store.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("addr", config.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
