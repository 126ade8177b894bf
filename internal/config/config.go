package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	App        AppConfig        `toml:"app"`
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Redis      RedisConfig      `toml:"redis"`
	NATS       NATSConfig       `toml:"nats"`
	DNIService DNIServiceConfig `toml:"dni_service"`
	Company    CompanyConfig    `toml:"company"`
	Documents  DocumentsConfig  `toml:"documents"`
}

// AppConfig общие настройки
type AppConfig struct {
	Env      string `toml:"env"`      // development | production
	Timezone string `toml:"timezone"` // IANA, например America/Lima
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN строка подключения в формате key=value для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL строка подключения в формате postgres:// для pgx
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки сессий
type AuthConfig struct {
	JWTSecret             string `toml:"jwt_secret"`
	SessionTimeoutMinutes int    `toml:"session_timeout_minutes"`
	SweepIntervalSeconds  int    `toml:"sweep_interval_seconds"`

	// Администратор, создаваемый при пустой таблице пользователей
	AdminName     string `toml:"admin_name"`
	AdminEmail    string `toml:"admin_email"`
	AdminPassword string `toml:"admin_password"`
}

// SessionTimeout таймаут неактивности сессии
func (c AuthConfig) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutMinutes) * time.Minute
}

// SweepInterval период очистки истёкших сессий
func (c AuthConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// RedisConfig хранилище метаданных сессий
type RedisConfig struct {
	Enabled   bool   `toml:"enabled"`
	URL       string `toml:"url"`
	KeyPrefix string `toml:"key_prefix"`
}

// NATSConfig публикация доменных событий
type NATSConfig struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"`
	SubjectPrefix string `toml:"subject_prefix"`
	ClientName    string `toml:"client_name"`
}

// DNIServiceConfig внешний сервис поиска по DNI
type DNIServiceConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

// CompanyConfig реквизиты компании по умолчанию
type CompanyConfig struct {
	Name    string `toml:"name"`
	RUC     string `toml:"ruc"`
	Address string `toml:"address"`
	Phone   string `toml:"phone"`
}

// DocumentsConfig архив сгенерированных билетов в S3
type DocumentsConfig struct {
	ArchiveEnabled bool   `toml:"archive_enabled"`
	S3Bucket       string `toml:"s3_bucket"`
	S3Region       string `toml:"s3_region"`
	S3Prefix       string `toml:"s3_prefix"`
}

// Load читает TOML файл, подмешивает .env и переменные окружения, проставляет
// значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv секреты и адреса инфраструктуры можно переопределить окружением
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":    &c.Database.Password,
		"DB_HOST":        &c.Database.Host,
		"JWT_SECRET":     &c.Auth.JWTSecret,
		"REDIS_URL":      &c.Redis.URL,
		"NATS_URL":       &c.NATS.URL,
		"DNI_API_TOKEN":  &c.DNIService.Token,
		"S3_BUCKET":      &c.Documents.S3Bucket,
		"APP_ENV":        &c.App.Env,
		"ADMIN_PASSWORD": &c.Auth.AdminPassword,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.Timezone == "" {
		c.App.Timezone = "America/Lima"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 1800
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "wjl_ticket_service"
	}
	if c.Auth.SessionTimeoutMinutes == 0 {
		c.Auth.SessionTimeoutMinutes = 10
	}
	if c.Auth.SweepIntervalSeconds == 0 {
		c.Auth.SweepIntervalSeconds = 60
	}
	if c.Auth.AdminName == "" {
		c.Auth.AdminName = "Administrador"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "wjl:session:"
	}
	if c.NATS.SubjectPrefix == "" {
		c.NATS.SubjectPrefix = "wjl"
	}
	if c.NATS.ClientName == "" {
		c.NATS.ClientName = "wjl-ticket-service"
	}
	if c.DNIService.Timeout == 0 {
		c.DNIService.Timeout = 5
	}
	if c.Documents.S3Prefix == "" {
		c.Documents.S3Prefix = "tickets/"
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 16 characters (or set JWT_SECRET)"))
	}
	if c.Auth.SessionTimeoutMinutes < 1 {
		errs = append(errs, fmt.Errorf("auth.session_timeout_minutes must be positive: %d", c.Auth.SessionTimeoutMinutes))
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("app.timezone: %v", err))
	}
	if c.Redis.Enabled && c.Redis.URL == "" {
		errs = append(errs, errors.New("redis.url is required when redis is enabled"))
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		errs = append(errs, errors.New("nats.url is required when nats is enabled"))
	}
	if c.Documents.ArchiveEnabled && (c.Documents.S3Bucket == "" || c.Documents.S3Region == "") {
		errs = append(errs, errors.New("documents.s3_bucket and documents.s3_region are required when the archive is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Location часовой пояс, в котором считается "сегодня"
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
