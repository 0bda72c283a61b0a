package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Supported customer stores
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverSQLite   = "sqlite"
)

// MongoCfg is mongodb connection config
type MongoCfg struct {
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// URI builds mongodb connection string
func (c MongoCfg) URI() string {
	u := url.URL{
		Scheme:   "mongodb",
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/",
		RawQuery: fmt.Sprintf("maxPoolSize=%d", c.MaxPoolSize),
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}

// PostgresCfg is postgresql connection config
type PostgresCfg struct {
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"customers"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"10"`
}

// URL builds postgresql connection url without pool settings
func (c PostgresCfg) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": []string{c.SslMode}}.Encode(),
	}
	return u.String()
}

// PoolURL builds postgresql connection url including pgxpool settings
func (c PostgresCfg) PoolURL() string {
	return fmt.Sprintf("%s&pool_max_conns=%d", c.URL(), c.PoolMaxConn)
}

// SQLiteCfg is sqlite database file config
type SQLiteCfg struct {
	Path string `env:"SQLITE_PATH" envDefault:"customers.db"`
}

// RedisCfg is redis connection config, cache is disabled if address is empty
type RedisCfg struct {
	Addr        string        `env:"REDIS_ADDR" envDefault:""`
	Password    string        `env:"REDIS_PASSWORD" envDefault:""`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	CustomerTTL time.Duration `env:"REDIS_CUSTOMER_TTL" envDefault:"10m"`
}

// Enabled reports whether redis cache must be used
func (c RedisCfg) Enabled() bool {
	return c.Addr != ""
}

// HTTPCfg is http server config
type HTTPCfg struct {
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// APIConfig is config of customers API process
type APIConfig struct {
	HTTPCfg
	Port        int    `env:"HTTP_PORT" envDefault:"3000"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	SQLiteCfg   SQLiteCfg
	RedisCfg    RedisCfg
}

// WebConfig is config of web front end process
type WebConfig struct {
	HTTPCfg
	Port       int    `env:"WEB_PORT" envDefault:"5000"`
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000/"`
}

// BuildAPI reads API config from environment, .env file is loaded if present
func BuildAPI() (APIConfig, error) {
	var cfg APIConfig
	if err := parse(&cfg); err != nil {
		return cfg, err
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMongo, StoreDriverSQLite:
	default:
		return cfg, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
	return cfg, nil
}

// BuildWeb reads web front end config from environment, .env file is loaded if present
func BuildWeb() (WebConfig, error) {
	var cfg WebConfig
	if err := parse(&cfg); err != nil {
		return cfg, err
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return cfg, fmt.Errorf("API_BASE_URL must be absolute url, got %q", cfg.APIBaseURL)
	}
	return cfg, nil
}

func parse(cfg any) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file - %w", err)
	}

	opts := env.Options{RequiredIfNoDef: true}
	if err := env.Parse(cfg, opts); err != nil {
		return fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return nil
}
