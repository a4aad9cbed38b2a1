package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Драйверы хранилища сессии
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config конфигурация портала
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	API        APIConfig        `toml:"api"`
	Session    SessionConfig    `toml:"session"`
	Guard      GuardConfig      `toml:"guard"`
	Authorizer AuthorizerConfig `toml:"authorizer"`
	RateLimit  RateLimitConfig  `toml:"ratelimit"`
	Payment    PaymentConfig    `toml:"payment"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// APIConfig внешний MediCare REST API
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // секунды
}

type SessionConfig struct {
	Driver    string         `toml:"driver"`
	Key       string         `toml:"key"`
	Namespace string         `toml:"namespace"` // разделяет экземпляры портала в общем redis/postgres
	FilePath  string         `toml:"file_path"`
	Redis     RedisConfig    `toml:"redis"`
	Postgres  PostgresConfig `toml:"postgres"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type PostgresConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
}

// DSN строка подключения для lib/pq
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

type GuardConfig struct {
	GracePeriodMs int    `toml:"grace_period_ms"`
	HomePath      string `toml:"home_path"`
}

type AuthorizerConfig struct {
	RedirectDelayMs int    `toml:"redirect_delay_ms"`
	LoginPath       string `toml:"login_path"`
}

// RateLimitConfig ограничение попыток входа и регистрации с одного IP
type RateLimitConfig struct {
	LoginPerMinute int `toml:"login_per_minute"`
	LoginBurst     int `toml:"login_burst"`
}

type PaymentConfig struct {
	CheckoutTTLMinutes int  `toml:"checkout_ttl_minutes"`
	TestMode           bool `toml:"test_mode"`
}

func (g GuardConfig) GracePeriod() time.Duration {
	return time.Duration(g.GracePeriodMs) * time.Millisecond
}

func (a AuthorizerConfig) RedirectDelay() time.Duration {
	return time.Duration(a.RedirectDelayMs) * time.Millisecond
}

func (a APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

func (p PaymentConfig) CheckoutTTL() time.Duration {
	return time.Duration(p.CheckoutTTLMinutes) * time.Minute
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "medicare-portal",
		},
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 10,
		},
		Session: SessionConfig{
			Driver:    DriverFile,
			Key:       "auth-storage",
			Namespace: "medicare-portal",
			FilePath:  "data/localstorage.json",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				SSLMode: "disable",
			},
		},
		Guard: GuardConfig{
			GracePeriodMs: 100,
			HomePath:      "/",
		},
		Authorizer: AuthorizerConfig{
			RedirectDelayMs: 100,
			LoginPath:       "/login",
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: 10,
			LoginBurst:     5,
		},
		Payment: PaymentConfig{
			CheckoutTTLMinutes: 30,
		},
	}
}

// Load читает TOML поверх значений по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, errors.New("api.timeout must be positive"))
	}

	switch c.Session.Driver {
	case DriverFile:
		if strings.TrimSpace(c.Session.FilePath) == "" {
			errs = append(errs, errors.New("session.file_path is required for the file driver"))
		}
	case DriverRedis:
		if c.Session.Redis.Addr == "" {
			errs = append(errs, errors.New("session.redis.addr is required for the redis driver"))
		}
	case DriverPostgres:
		if c.Session.Postgres.Host == "" || c.Session.Postgres.DBName == "" {
			errs = append(errs, errors.New("session.postgres.host and dbname are required for the postgres driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("session.driver must be one of file, redis, postgres, memory, got %q", c.Session.Driver))
	}
	if strings.TrimSpace(c.Session.Key) == "" {
		errs = append(errs, errors.New("session.key is required"))
	}

	if c.Guard.GracePeriodMs < 0 {
		errs = append(errs, errors.New("guard.grace_period_ms must not be negative"))
	}
	if c.Authorizer.RedirectDelayMs < 0 {
		errs = append(errs, errors.New("authorizer.redirect_delay_ms must not be negative"))
	}
	if !strings.HasPrefix(c.Authorizer.LoginPath, "/") || !strings.HasPrefix(c.Guard.HomePath, "/") {
		errs = append(errs, errors.New("authorizer.login_path and guard.home_path must be absolute paths"))
	}

	if c.RateLimit.LoginPerMinute > 0 && c.RateLimit.LoginBurst < 1 {
		errs = append(errs, fmt.Errorf("ratelimit.login_burst must be at least 1 when login_per_minute is set, got %d",
			c.RateLimit.LoginBurst))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path))
	}

	return errors.Join(errs...)
}
