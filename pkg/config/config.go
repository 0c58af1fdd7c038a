package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Password PasswordConfig
	Media    MediaConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MODACART_APP_ENV" required:"true"`
	Port         string `envconfig:"MODACART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MODACART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MODACART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MongoConfig struct {
	URI            string        `envconfig:"MODACART_MONGO_URI" required:"true"`
	Database       string        `envconfig:"MODACART_MONGO_DATABASE" default:"e-commerce"`
	ConnectTimeout time.Duration `envconfig:"MODACART_MONGO_CONNECT_TIMEOUT" default:"10s"`
	PingTimeout    time.Duration `envconfig:"MODACART_MONGO_PING_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MODACART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MODACART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MODACART_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// Expiration returns the token lifetime configured in minutes.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MODACART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MODACART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MODACART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MODACART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MODACART_ARGON_KEY_LEN" default:"32"`
}

type MediaConfig struct {
	Dir           string `envconfig:"MODACART_MEDIA_DIR" default:"upload/images"`
	PublicBaseURL string `envconfig:"MODACART_MEDIA_PUBLIC_BASE_URL" required:"true"`
	MaxUploadMB   int    `envconfig:"MODACART_MAX_UPLOAD_MB" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MODACART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
