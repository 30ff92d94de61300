package config

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"guaranihost/middleware"
	"guaranihost/services/logger"
)

// App componentes de infraestructura ya inicializados
type App struct {
	Router     *gin.Engine
	Melody     *melody.Melody
	Cron       *cron.Cron
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

// RedisCmdable devuelve nil (interfaz nula) si no hay Redis
func (a *App) RedisCmdable() redis.Cmdable {
	if a.Redis == nil {
		return nil
	}
	return a.Redis
}

// corsConfig solo permite credenciales con una lista explícita de orígenes.
// Sin CORS_ORIGINS se acepta cualquier origen, pero sin cookies.
func corsConfig(cfg Config) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", middleware.SessionHeader)
	configCors.AddExposeHeaders(middleware.SessionHeader, "Content-Disposition")
	if len(cfg.AllowedOrigins) > 0 {
		configCors.AllowOrigins = cfg.AllowedOrigins
		configCors.AllowCredentials = true
	} else {
		configCors.AllowAllOrigins = true
		configCors.AllowCredentials = false
	}
	return configCors
}

func InitApp(cfg Config, log logger.Logger) (*App, error) {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	router.Use(cors.New(corsConfig(cfg)))
	router.Use(middleware.SessionMiddleware(), middleware.OptionalAuth())

	router.SetTrustedProxies(nil)

	app := &App{
		Router: router,
		Melody: melody.New(),
		Cron:   cron.New(),
	}

	rdb, err := ConnectRedis(context.Background(), cfg)
	if err != nil {
		log.Warn("Redis no disponible, se sigue sin filtros guardados ni favoritos: %v", err)
	} else if rdb != nil {
		log.Info("Conexión a Redis exitosa")
	}
	app.Redis = rdb

	cld, err := ConnectCloudinary(cfg)
	if err != nil {
		log.Warn("Cloudinary no disponible: %v", err)
	}
	if cld == nil {
		log.Warn("Cloudinary sin configurar, no se podrán subir imágenes")
	}
	app.Cloudinary = cld

	return app, nil
}
