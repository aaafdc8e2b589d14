// Package config загружает конфигурацию сервиса из config.toml.
// Секреты (пароль БД, адреса Redis/RabbitMQ) могут быть переопределены
// переменными окружения; .env подхватывается через godotenv, если есть.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Config полная конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Cache    CacheConfig    `toml:"cache"`
	Queue    QueueConfig    `toml:"queue"`
	Parking  ParkingConfig  `toml:"parking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis-кэша статуса парковки.
// При выключенном кэше (или недоступном Redis) статус читается
// напрямую из БД.
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// QueueConfig настройки публикации событий въезда/выезда в RabbitMQ
type QueueConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
}

// ParkingConfig параметры парковки. Читаются один раз при
// инициализации; изменение после провижининга не поддерживается.
type ParkingConfig struct {
	HourlyRate    float64 `toml:"hourly_rate"`
	Floors        int     `toml:"floors"`
	SpotsPerFloor int     `toml:"spots_per_floor"`
}

// Load читает конфигурацию из TOML файла и применяет переопределения
// из окружения
func Load(path string) (*Config, error) {
	// .env опционален - отсутствие файла не ошибка
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PARKING_DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.DB = n
		}
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		c.Queue.URL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Parking.HourlyRate == 0 {
		c.Parking.HourlyRate = domain.DefaultHourlyRate
	}
	if c.Parking.Floors == 0 {
		c.Parking.Floors = domain.DefaultFloors
	}
	if c.Parking.SpotsPerFloor == 0 {
		c.Parking.SpotsPerFloor = domain.DefaultSpotsPerFloor
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "parking-service"
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 5
	}
}

func (c *Config) validate() error {
	if c.Parking.HourlyRate < 0 {
		return fmt.Errorf("config: parking.hourly_rate must be non-negative")
	}
	if c.Parking.Floors < 0 || c.Parking.SpotsPerFloor < 0 {
		return fmt.Errorf("config: parking.floors and parking.spots_per_floor must be non-negative")
	}
	return nil
}
