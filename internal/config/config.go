package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	Catalog CatalogConfig
	Upload  UploadConfig
	Redis   RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type CatalogConfig struct {
	// Path to a YAML job catalog. Empty selects the embedded catalog.
	Path string
}

type UploadConfig struct {
	MaxBytes int64
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

const (
	defaultUploadMaxBytes = 10 << 20
	defaultRedisTTL       = 600 * time.Second
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Log = LogConfig{
		JSON:  parseBool(opt("LOG_JSON"), false),
		Debug: parseBool(opt("LOG_DEBUG"), false),
	}

	cfg.Catalog = CatalogConfig{Path: opt("CATALOG_PATH")}

	cfg.Upload = UploadConfig{MaxBytes: parseInt64(opt("UPLOAD_MAX_BYTES"), defaultUploadMaxBytes)}

	host := opt("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := opt("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	cfg.Redis = RedisConfig{
		Enabled:  parseBool(opt("REDIS_ENABLED"), false),
		Host:     host,
		Port:     port,
		Password: opt("REDIS_PASSWORD"),
		TTL:      time.Duration(parseInt64(opt("REDIS_TTL"), int64(defaultRedisTTL/time.Second))) * time.Second,
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func parseInt64(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
