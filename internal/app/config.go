package app

import (
	"github.com/lineboard/lineboard-backend/internal/pkg/envutil"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type Config struct {
	JWTSecretKey string
	RedisURL     string
	Environment  string
	Version      string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		JWTSecretKey: envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		RedisURL:     envutil.String("REDIS_URL", ""),
		Environment:  envutil.String("ENVIRONMENT", "development"),
		Version:      envutil.String("SERVICE_VERSION", "dev"),
	}
	if cfg.JWTSecretKey == "defaultsecret" {
		log.Warn("JWT_SECRET_KEY not set, using default secret")
	}
	return cfg
}
