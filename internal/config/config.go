package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	Port string `envconfig:"PORT" default:"5000"` // サーバーポート

	//DATABASE_URLがあれば最優先
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"food"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`

	JWTSecret  string        `envconfig:"TOKEN_SECRET"` // JWT署名シークレット
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	AuditLogPath string   `envconfig:"AUDIT_LOG_PATH" default:"logs.txt"`
	LogLevel     string   `envconfig:"LOG_LEVEL" default:"info"`
	GoEnv        string   `envconfig:"GO_ENV" default:"dev"` // dev/prod
	CORSOrigins  []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// console client の設定
type ClientConfig struct {
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:5000"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Loadは .env と環境変数から読む
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("TOKEN_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive")
	}
	if cfg.PostgresPort <= 0 {
		return Config{}, fmt.Errorf("POSTGRES_PORT must be positive")
	}

	return cfg, nil
}

func LoadClient() (ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return ClientConfig{}, err
	}

	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.BackendURL == "" {
		return ClientConfig{}, fmt.Errorf("BACKEND_URL is required")
	}
	return cfg, nil
}

// Addrは echo に渡す listen アドレス
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// IsProd は本番かどうか
func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// .envは無くてもよい
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}
