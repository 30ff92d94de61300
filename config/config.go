package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// Config valores leídos del entorno al arrancar
type Config struct {
	Port                string
	APIBaseURL          string
	APITimeout          time.Duration
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
	RabbitMQURL         string
	EventsQueue         string
	Currency            string
	Locale              string
	CacheTTL            time.Duration
	StagingTTL          time.Duration
	FeaturedRefreshSpec string
	LogLevel            string
	AllowedOrigins      []string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar .env, se usan las variables del sistema: %v", err)
	}
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: %s=%q no es una duración válida, se usa %s", key, v, def)
		return def
	}
	return d
}

// Load lee .env (si existe) y el entorno
func Load() Config {
	LoadEnv()

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:                getEnvDefault("PORT", "8083"),
		APIBaseURL:          getEnvDefault("API_BASE_URL", "http://localhost:5000/api"),
		APITimeout:          getDuration("API_TIMEOUT", 15*time.Second),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisUser:           os.Getenv("REDIS_USER"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnvDefault("CLOUDINARY_FOLDER", "guaranihost/properties"),
		RabbitMQURL:         os.Getenv("RABBITMQ_URL"),
		EventsQueue:         getEnvDefault("RABBITMQ_QUEUE", "guaranihost.events"),
		Currency:            getEnvDefault("CURRENCY", "PYG"),
		Locale:              getEnvDefault("LOCALE", "es-PY"),
		CacheTTL:            getDuration("CACHE_TTL", 10*time.Minute),
		StagingTTL:          getDuration("STAGING_TTL", 30*time.Minute),
		FeaturedRefreshSpec: getEnvDefault("FEATURED_REFRESH_SPEC", "@every 10m"),
		LogLevel:            getEnvDefault("LOG_LEVEL", "info"),
		AllowedOrigins:      origins,
	}
}

// ConnectCloudinary devuelve nil si faltan las credenciales; la subida de
// imágenes responde entonces "no configurado"
func ConnectCloudinary(cfg Config) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, nil
	}
	return cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
}
