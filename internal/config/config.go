package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Policy    PolicyConfig    `toml:"policy"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// PolicyConfig дефолты политики подбора слотов
// Каждый параметр может быть переопределён в конкретном запросе доступности
type PolicyConfig struct {
	IntervalMinutes int `toml:"interval_minutes"`
	BufferMinutes   int `toml:"buffer_minutes"`
	MinLeadHours    int `toml:"min_lead_hours"`
	MaxLeadDays     int `toml:"max_lead_days"`
}

// AuthConfig настройки администраторской аутентификации
type AuthConfig struct {
	AdminLogin        string `toml:"admin_login"`
	AdminPasswordHash string `toml:"admin_password_hash"` // bcrypt
	CookieHashKey     string `toml:"cookie_hash_key"`
	CookieBlockKey    string `toml:"cookie_block_key"`
	SessionTTLHours   int    `toml:"session_ttl_hours"`
}

// RateLimitConfig настройки лимитера на write-эндпоинты
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load загружает конфигурацию из TOML файла и подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "salon-booking-service"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Policy.IntervalMinutes == 0 {
		cfg.Policy.IntervalMinutes = domain.DefaultIntervalMinutes
	}
	if cfg.Policy.BufferMinutes == 0 {
		cfg.Policy.BufferMinutes = domain.DefaultBufferMinutes
	}
	if cfg.Policy.MinLeadHours == 0 {
		cfg.Policy.MinLeadHours = domain.DefaultMinLeadHours
	}
	if cfg.Policy.MaxLeadDays == 0 {
		cfg.Policy.MaxLeadDays = domain.DefaultMaxLeadDays
	}

	if cfg.Auth.SessionTTLHours == 0 {
		cfg.Auth.SessionTTLHours = 12
	}

	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 1
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 5
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Policy.IntervalMinutes < domain.MinIntervalMinutes || cfg.Policy.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("config: policy.interval_minutes must be between %d and %d",
			domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if cfg.Policy.BufferMinutes < 0 || cfg.Policy.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("config: policy.buffer_minutes must be between 0 and %d", domain.MaxBufferMinutes)
	}
	if len(cfg.Auth.CookieHashKey) != 0 && len(cfg.Auth.CookieHashKey) != 32 && len(cfg.Auth.CookieHashKey) != 64 {
		return fmt.Errorf("config: auth.cookie_hash_key must be 32 or 64 bytes")
	}
	return nil
}
