package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/donation_tracker/pkg/database"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backup drivers accepted by BACKUP_DRIVER.
const (
	BackupNone       = "none"
	BackupFilesystem = "filesystem"
	BackupS3         = "s3"
)

// Config holds application configuration.
type Config struct {
	DBDriver      database.Driver
	DatabasePath  string
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool

	Port               string
	IsProduction       bool
	LogLevel           string
	RateLimit          string
	CORSAllowedOrigins []string

	Backup BackupConfig
}

// BackupConfig selects where database backups are written.
type BackupConfig struct {
	Driver     string
	Dir        string
	Prefix     string
	S3Bucket   string
	S3Region   string
	S3Endpoint string
	// S3PathStyle is needed by most S3-compatible servers (minio, localstack).
	S3PathStyle bool
}

// Options returns the database options described by the config.
func (c *Config) Options() database.Options {
	return database.Options{
		Driver:      c.DBDriver,
		SQLitePath:  c.DatabasePath,
		PostgresURL: c.DatabaseURL,
		Ping:        c.EnableDBCheck,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", string(database.DriverSQLite))
	v.SetDefault("DATABASE_PATH", "data/donations.sqlite")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("BACKUP_DRIVER", BackupFilesystem)
	v.SetDefault("BACKUP_DIR", "data/backups")
	v.SetDefault("BACKUP_PREFIX", "")
	v.SetDefault("BACKUP_S3_BUCKET", "")
	v.SetDefault("BACKUP_S3_REGION", "us-east-1")
	v.SetDefault("BACKUP_S3_ENDPOINT", "")
	v.SetDefault("BACKUP_S3_PATH_STYLE", false)
}

func fromViper(v *viper.Viper) (*Config, error) {
	driver, err := database.ParseDriver(v.GetString("DB_DRIVER"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBDriver:           driver,
		DatabasePath:       v.GetString("DATABASE_PATH"),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:      v.GetBool("RUN_MIGRATIONS"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Backup: BackupConfig{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("BACKUP_DRIVER"))),
			Dir:         v.GetString("BACKUP_DIR"),
			Prefix:      v.GetString("BACKUP_PREFIX"),
			S3Bucket:    v.GetString("BACKUP_S3_BUCKET"),
			S3Region:    v.GetString("BACKUP_S3_REGION"),
			S3Endpoint:  v.GetString("BACKUP_S3_ENDPOINT"),
			S3PathStyle: v.GetBool("BACKUP_S3_PATH_STYLE"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.DBDriver {
	case database.DriverSQLite:
		if cfg.DatabasePath == "" {
			return nil, fmt.Errorf("DATABASE_PATH is required for the sqlite driver")
		}
	case database.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required for the postgres driver")
		}
	}

	switch cfg.Backup.Driver {
	case "", BackupNone:
		cfg.Backup.Driver = BackupNone
	case BackupFilesystem:
		if cfg.Backup.Dir == "" {
			return nil, fmt.Errorf("BACKUP_DIR is required for filesystem backups")
		}
	case BackupS3:
		if cfg.Backup.S3Bucket == "" {
			return nil, fmt.Errorf("BACKUP_S3_BUCKET is required for s3 backups")
		}
	default:
		return nil, fmt.Errorf("unknown BACKUP_DRIVER %q", cfg.Backup.Driver)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
