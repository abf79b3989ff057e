package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // база часовых поясов для контейнеров без zoneinfo

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid config")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

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
	AutoMigrate     bool   `toml:"auto_migrate"`
	TxMaxRetries    int    `toml:"tx_max_retries"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// SchedulingConfig параметры ядра планирования
type SchedulingConfig struct {
	// Часовой пояс, в котором определяется "сегодня" (IANA, например Europe/Moscow)
	Timezone string `toml:"timezone"`

	// Значения для компаний без собственной конфигурации
	DefaultSlotIntervalMinutes int  `toml:"default_slot_interval_minutes"`
	DefaultMaxAdvanceDays      int  `toml:"default_max_advance_days"`
	DefaultResourceScoped      bool `toml:"default_resource_scoped"`

	// Размер LRU кэша разбора дат; 0 отключает кэш
	DateCacheSize int `toml:"date_cache_size"`

	// Если задано, заменяет встроенную таблицу праздников
	Holidays []HolidayConfig `toml:"holidays"`
}

// HolidayConfig праздник с фиксированной датой
type HolidayConfig struct {
	Month int    `toml:"month"`
	Day   int    `toml:"day"`
	Name  string `toml:"name"`
}

// Location загружает часовой пояс из конфигурации
func (s SchedulingConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	return loc, nil
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "smc_scheduling",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			TxMaxRetries:    3,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc_scheduling_service",
		},
		Scheduling: SchedulingConfig{
			Timezone:                   "Local",
			DefaultSlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
			DefaultMaxAdvanceDays:      domain.DefaultMaxAdvanceDays,
			DateCacheSize:              1024,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
	}

	s := c.Scheduling
	defaults := domain.ScheduleConfig{
		SlotIntervalMinutes: s.DefaultSlotIntervalMinutes,
		MaxAdvanceDays:      s.DefaultMaxAdvanceDays,
	}
	if err := defaults.Validate(); err != nil {
		return fmt.Errorf("%w: scheduling defaults: %v", ErrInvalidConfig, err)
	}
	if s.DateCacheSize < 0 {
		return fmt.Errorf("%w: scheduling.date_cache_size must not be negative", ErrInvalidConfig)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	for i, h := range s.Holidays {
		if h.Month < 1 || h.Month > 12 || h.Day < 1 || h.Day > 31 || h.Name == "" {
			return fmt.Errorf("%w: scheduling.holidays[%d]", ErrInvalidConfig, i)
		}
	}

	return nil
}
