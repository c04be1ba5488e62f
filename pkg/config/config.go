package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ESONGE_APP_ENV" default:"dev"`
	Port         string `envconfig:"ESONGE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ESONGE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ESONGE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Storage drivers for the per-store snapshot persistence.
const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

type StorageConfig struct {
	Driver string `envconfig:"ESONGE_STORAGE_DRIVER" default:"memory"`
}

func (s StorageConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Driver)) {
	case StorageDriverMemory, StorageDriverSQLite, StorageDriverPostgres, StorageDriverRedis:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}

type DBConfig struct {
	DSN string `envconfig:"ESONGE_DB_DSN" default:"storefront.db"`

	MaxOpenConns    int           `envconfig:"ESONGE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"ESONGE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"ESONGE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ESONGE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ESONGE_REDIS_URL"`
	Address      string        `envconfig:"ESONGE_REDIS_ADDR"`
	Password     string        `envconfig:"ESONGE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ESONGE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ESONGE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ESONGE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ESONGE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ESONGE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ESONGE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ESONGE_JWT_SECRET" default:"dev-only-secret"`
	Issuer            string `envconfig:"ESONGE_JWT_ISSUER" default:"esonge-storefront"`
	ExpirationMinutes int    `envconfig:"ESONGE_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type AuthConfig struct {
	// LoginDelay simulates the network latency of the mock credential check.
	LoginDelay time.Duration `envconfig:"ESONGE_AUTH_LOGIN_DELAY" default:"500ms"`
	DemoEmail  string        `envconfig:"ESONGE_AUTH_DEMO_EMAIL" default:"demo@esonge.com"`
}

type CatalogConfig struct {
	ItemsPerPage int `envconfig:"ESONGE_CATALOG_ITEMS_PER_PAGE" default:"12"`
}
