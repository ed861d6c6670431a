package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"studycards.app/pkg/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devJWTSecret = "studycards-development-secret"

// Config uygulamanın tüm ayarlarını taşır.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	AI        AIConfig        `mapstructure:"ai"`
	Tika      TikaConfig      `mapstructure:"tika"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type AppConfig struct {
	Env             string        `mapstructure:"env" validate:"oneof=development production test"`
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	Timezone        string        `mapstructure:"timezone" validate:"required"`
	UploadMaxBytes  int           `mapstructure:"upload_max_bytes" validate:"gt=0"`
}

type DBConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	Host            string        `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port            string        `mapstructure:"port" validate:"required_if=Driver postgres"`
	User            string        `mapstructure:"user" validate:"required_if=Driver postgres"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name" validate:"required_if=Driver postgres"`
	SSLMode         string        `mapstructure:"sslmode" validate:"oneof=disable require verify-ca verify-full"`
	Path            string        `mapstructure:"path" validate:"required_if=Driver sqlite"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL      time.Duration `mapstructure:"jwt_ttl" validate:"gt=0"`
	Required      bool          `mapstructure:"required"`
	RatePerSecond float64       `mapstructure:"rate_per_second" validate:"gt=0"`
	RateBurst     int           `mapstructure:"rate_burst" validate:"min=1"`
}

type AIConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url" validate:"required,url"`
	Model      string        `mapstructure:"model" validate:"required"`
	MaxRetries int           `mapstructure:"max_retries" validate:"min=1,max=10"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type TikaConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type SchedulerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	DigestAt string `mapstructure:"digest_at" validate:"required,len=5"`
}

// Enabled LLM tabanlı kart üretiminin kullanılabilir olup olmadığını söyler.
func (c AIConfig) Enabled() bool { return c.APIKey != "" }

// Location TIMEZONE ayarını *time.Location'a çevirir.
func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("geçersiz TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// envBindings viper anahtarlarını ortam değişkenlerine bağlar.
var envBindings = map[string]string{
	"app.env":              "APP_ENV",
	"app.port":             "SERVER_PORT",
	"app.shutdown_timeout": "SERVER_SHUTDOWN_TIMEOUT",
	"app.timezone":         "TIMEZONE",
	"app.upload_max_bytes": "UPLOAD_MAX_BYTES",

	"db.driver":            "DB_DRIVER",
	"db.host":              "DB_HOST",
	"db.port":              "DB_PORT",
	"db.user":              "DB_USER",
	"db.password":          "DB_PASSWORD",
	"db.name":              "DB_NAME",
	"db.sslmode":           "DB_SSLMODE",
	"db.path":              "DB_PATH",
	"db.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"db.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"db.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",

	"auth.jwt_secret":      "JWT_SECRET",
	"auth.jwt_ttl":         "JWT_TTL",
	"auth.required":        "AUTH_REQUIRED",
	"auth.rate_per_second": "AUTH_RATE_PER_SECOND",
	"auth.rate_burst":      "AUTH_RATE_BURST",

	"ai.api_key":     "AI_API_KEY",
	"ai.base_url":    "AI_BASE_URL",
	"ai.model":       "AI_MODEL",
	"ai.max_retries": "AI_MAX_RETRIES",
	"ai.timeout":     "AI_TIMEOUT",

	"tika.url":     "TIKA_URL",
	"tika.timeout": "TIKA_TIMEOUT",

	"scheduler.enabled":   "SCHEDULER_ENABLED",
	"scheduler.digest_at": "SCHEDULER_DIGEST_AT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "production")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.shutdown_timeout", "10s")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.upload_max_bytes", 10<<20)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "studycards")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.path", "studycards.db")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_ttl", "2h")
	v.SetDefault("auth.required", true)
	v.SetDefault("auth.rate_per_second", 5.0)
	v.SetDefault("auth.rate_burst", 10)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.max_retries", 3)
	v.SetDefault("ai.timeout", "60s")

	v.SetDefault("tika.url", "")
	v.SetDefault("tika.timeout", "30s")

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.digest_at", "08:00")
}

// Load .env dosyasını (varsa) yükler, ortam değişkenlerini okur ve sonucu doğrular.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" && cfg.App.Env != "production" {
		cfg.Auth.JWTSecret = devJWTSecret
	}

	if err := validation.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.App.Location(); err != nil {
		return nil, err
	}
	if _, err := time.Parse("15:04", cfg.Scheduler.DigestAt); err != nil {
		return nil, fmt.Errorf("geçersiz SCHEDULER_DIGEST_AT %q: %w", cfg.Scheduler.DigestAt, err)
	}

	return &cfg, nil
}
