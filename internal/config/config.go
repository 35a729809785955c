package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string   `yaml:"env" env:"APP_ENV" env-default:"local" validate:"oneof=local dev prod"`
	Database   Database `yaml:"database"`
	HTTPServer `yaml:"http_server"`
	Auth       Auth     `yaml:"auth"`
	Bookings   Bookings `yaml:"bookings"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" validate:"required"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"sahara"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// Auth configures verification of tokens issued by the identity service.
type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required"`
	Issuer    string `yaml:"issuer" env:"AUTH_ISSUER"`
}

type Bookings struct {
	Timezone         string `yaml:"timezone" env:"BOOKINGS_TIMEZONE" env-default:"UTC"`
	DefaultRangeDays int    `yaml:"default_range_days" env-default:"7" validate:"gte=1"`
	FallbackPath     string `yaml:"fallback_path" env-default:"/queue" validate:"startswith=/"`
}

// Location resolves the configured timezone.
func (b Bookings) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

func MustLoad() *Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("cannot load env file %s: %s", envFile, err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := cfg.Bookings.Location(); err != nil {
		return nil, fmt.Errorf("%s: invalid timezone: %w", op, err)
	}

	return &cfg, nil
}
