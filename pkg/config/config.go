package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Uploads UploadsConfig
	Seed    SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CAMPUSCARE_APP_ENV" default:"dev"`
	Port         string `envconfig:"CAMPUSCARE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CAMPUSCARE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAMPUSCARE_LOG_WARN_STACK" default:"false"`
	StaticDir    string `envconfig:"CAMPUSCARE_STATIC_DIR" default:"./static"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects the GORM dialector. SQLite is the default so the
	// service runs out of the box; production deployments point DSN at
	// Postgres.
	Driver string `envconfig:"CAMPUSCARE_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"CAMPUSCARE_DB_DSN" default:"/tmp/campus_cleaning.db"`

	AutoMigrate bool `envconfig:"CAMPUSCARE_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"CAMPUSCARE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAMPUSCARE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAMPUSCARE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAMPUSCARE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

func (db *DBConfig) validate() error {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	switch driver {
	case DriverPostgres, DriverSQLite:
		db.Driver = driver
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("CAMPUSCARE_DB_DSN is required")
	}
	return nil
}

type UploadsConfig struct {
	Dir         string `envconfig:"CAMPUSCARE_UPLOAD_DIR" default:"/tmp/uploads"`
	MaxUploadMB int    `envconfig:"CAMPUSCARE_MAX_UPLOAD_MB" default:"10"`
}

// MaxUploadBytes returns the multipart memory ceiling in bytes.
func (u UploadsConfig) MaxUploadBytes() int64 {
	return int64(u.MaxUploadMB) << 20
}

type SeedConfig struct {
	Enabled bool `envconfig:"CAMPUSCARE_SEED_ON_BOOT" default:"true"`
}
