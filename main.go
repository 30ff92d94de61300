package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guaranihost/config"
	_ "guaranihost/docs"
	"guaranihost/jobs"
	"guaranihost/routes"
	"guaranihost/services"
	"guaranihost/services/logger"
	"guaranihost/services/notification"
	"guaranihost/utils"
)

// @title GuaraníHost API
// @version 1.0
// @description Pantallas de propiedades, tours y reservas de GuaraníHost.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	if f, err := utils.NewPriceFormatter(cfg.Currency, cfg.Locale); err != nil {
		appLogger.Warn("moneda %s/%s inválida, se usa PYG/es-PY: %v", cfg.Currency, cfg.Locale, err)
	} else {
		utils.SetDefaultFormatter(f)
	}

	app, err := config.InitApp(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	rdb := app.RedisCmdable()

	var events services.EventPublisher = services.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		publisher, err := services.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.EventsQueue, appLogger)
		if err != nil {
			appLogger.Warn("RabbitMQ no disponible, no se publicarán eventos: %v", err)
		} else {
			events = publisher
		}
	}
	defer events.Close()

	client := services.NewAPIClient(services.APIClientOptions{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  appLogger,
	})
	api := services.NewCachedAPI(client, services.NewListCache(rdb, cfg.CacheTTL, appLogger))
	notifier := notification.NewMelodyService(app.Melody)
	staging := services.NewStagingStore(cfg.StagingTTL)

	deps := routes.Deps{
		API: api,
		Properties: services.NewPropertyService(services.PropertyServiceOptions{
			API:      api,
			Staging:  staging,
			Uploader: services.NewCloudinaryUploader(app.Cloudinary, cfg.CloudinaryFolder),
			Notifier: notifier,
			Events:   events,
			Logger:   appLogger,
		}),
		Bookings: services.NewBookingFacade(services.BookingFacadeOptions{
			Bookings:  api,
			Resources: api,
			Notifier:  notifier,
			Events:    events,
			Logger:    appLogger,
		}),
		Staging: staging,
		Melody:  app.Melody,
		Logger:  appLogger,
	}
	if rdb != nil {
		deps.Filters = services.NewRedisFiltersStore(rdb)
		deps.Favorites = services.NewRedisFavorites(rdb)
	}
	routes.SetupRoutes(app.Router, deps)

	if err := jobs.InitCronJobs(app.Cron, cfg.FeaturedRefreshSpec, api, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	go jobs.RefreshFeatured(api, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.Info("Servidor escuchando en el puerto %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLogger.Info("Apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	<-app.Cron.Stop().Done()
	app.Melody.Close()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("cierre forzado del servidor: %v", err)
	}
	if app.Redis != nil {
		app.Redis.Close()
	}
	appLogger.Info("Servidor detenido")
}
