package config

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "your-secret-key-change-in-production"

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Mongo MongoConfig
	Redis RedisConfig
	NATS  NATSConfig
	JWT   JWTConfig
	Hash  HashConfig
}

type AppConfig struct {
	Port      string
	Env       string
	ClientURL string
}

// IsDevelopment reports whether internal error detail may be returned to clients.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Timeout  time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Host            string
	Port            string
	Password        string
	DB              int
	ProfileCacheTTL time.Duration
}

// Enabled is false when no Redis host is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type NATSConfig struct {
	URL string
}

func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	DoctorExpiry  time.Duration
}

type HashConfig struct {
	Cost        int
	Concurrency int
}

// LoadConfig reads .env from the working directory (when present) and the environment.
func LoadConfig() (*Config, error) {
	return Load(".env")
}

func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	accessExpiry, err := ParseDuration(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	refreshExpiry, err := ParseDuration(v.GetString("JWT_REFRESH_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("JWT_REFRESH_EXPIRES_IN: %w", err)
	}
	doctorExpiry, err := ParseDuration(v.GetString("JWT_DOCTOR_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("JWT_DOCTOR_EXPIRES_IN: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Port:      v.GetString("APP_PORT"),
			Env:       v.GetString("APP_ENV"),
			ClientURL: v.GetString("CLIENT_URL"),
		},
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Timeout:  v.GetDuration("DB_TIMEOUT"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
		},
		Redis: RedisConfig{
			Host:            v.GetString("REDIS_HOST"),
			Port:            v.GetString("REDIS_PORT"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			ProfileCacheTTL: v.GetDuration("PROFILE_CACHE_TTL"),
		},
		NATS: NATSConfig{
			URL: v.GetString("NATS_URL"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
			DoctorExpiry:  doctorExpiry,
		},
		Hash: HashConfig{
			Cost:        v.GetInt("BCRYPT_COST"),
			Concurrency: v.GetInt("HASH_CONCURRENCY"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CLIENT_URL", "http://localhost:4200")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "hospital_management")
	v.SetDefault("DB_TIMEOUT", 5*time.Second)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "hospital-management")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("PROFILE_CACHE_TTL", 5*time.Minute)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_EXPIRES_IN", "7d")
	v.SetDefault("JWT_REFRESH_EXPIRES_IN", "30d")
	v.SetDefault("JWT_DOCTOR_EXPIRES_IN", "2h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("HASH_CONCURRENCY", runtime.NumCPU())
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		c.JWT.Secret = DefaultJWTSecret
	}
	if c.App.Env == "production" && c.JWT.Secret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.JWT.AccessExpiry <= 0 || c.JWT.RefreshExpiry <= 0 || c.JWT.DoctorExpiry <= 0 {
		return errors.New("token expiries must be positive")
	}
	if c.DB.Timeout <= 0 {
		c.DB.Timeout = 5 * time.Second
	}
	if c.Hash.Concurrency < 1 {
		c.Hash.Concurrency = 1
	}
	return nil
}

// ParseDuration accepts time.ParseDuration syntax plus a whole-day suffix ("7d").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
