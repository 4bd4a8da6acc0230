package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// SQLitePath is used when Driver is DriverSQLite.
	SQLitePath string

	LogLevel string
	Pool     *ConnectionPoolConfig
}

type ConnectionPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func DefaultConnectionPoolConfig() *ConnectionPoolConfig {
	return &ConnectionPoolConfig{
		MaxOpenConns:    50,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
	}
}

// DefaultDatabaseConfig loads database configuration from environment variables
func DefaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:     strings.ToLower(getEnvWithDefault("DB_DRIVER", DriverPostgres)),
		Host:       getEnvWithDefault("POSTGRES_HOST", "localhost"),
		Port:       getEnvWithDefault("POSTGRES_PORT", "5432"),
		User:       getEnvWithDefault("POSTGRES_USER", "postgres"),
		Password:   getEnvWithDefault("POSTGRES_PASSWORD", ""),
		DBName:     getEnvWithDefault("POSTGRES_DB_NAME", "dashboard_config"),
		SSLMode:    getEnvWithDefault("POSTGRES_SSL_MODE", "disable"),
		SQLitePath: getEnvWithDefault("SQLITE_PATH", filepath.Join("data", "dashboard_config.db")),
		LogLevel:   getEnvWithDefault("DB_LOG_LEVEL", "warn"),
		Pool:       getConnectionPoolConfig(),
	}
}

// getConnectionPoolConfig loads connection pool configuration from environment variables
func getConnectionPoolConfig() *ConnectionPoolConfig {
	defaults := DefaultConnectionPoolConfig()
	return &ConnectionPoolConfig{
		MaxOpenConns:    getEnvIntWithDefault("DB_MAX_OPEN_CONNS", defaults.MaxOpenConns),
		MaxIdleConns:    getEnvIntWithDefault("DB_MAX_IDLE_CONNS", defaults.MaxIdleConns),
		ConnMaxLifetime: getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", defaults.ConnMaxLifetime),
	}
}

// buildDSN creates PostgreSQL connection string from configuration
func (c *DatabaseConfig) buildDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open connects to the configured driver and applies pool settings.
func (c *DatabaseConfig) Open() (*gorm.DB, error) {
	switch c.Driver {
	case DriverPostgres:
		return OpenPostgres(c)
	case DriverSQLite:
		return OpenSQLite(c.SQLitePath, c.LogLevel)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// OpenPostgres creates a GORM connection with connection pool tuning
func OpenPostgres(c *DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.buildDSN()), &gorm.Config{
		Logger: newGormLogger(c.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pool := c.Pool
	if pool == nil {
		pool = DefaultConnectionPoolConfig()
	}
	if err := configureConnectionPool(db, pool); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	return db, nil
}

// OpenSQLite opens a file-backed database. SQLite allows a single writer, so the
// pool is pinned to one connection and writes are serialized in process.
func OpenSQLite(dbPath string, logLevel string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := configureConnectionPool(db, &ConnectionPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	return db, nil
}

// configureConnectionPool applies connection pool settings to the database connection
func configureConnectionPool(gormDB *gorm.DB, poolConfig *ConnectionPoolConfig) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(poolConfig.MaxOpenConns)
	sqlDB.SetMaxIdleConns(poolConfig.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(poolConfig.ConnMaxLifetime)

	return nil
}

func newGormLogger(level string) gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseGormLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func parseGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// CloseDatabase closes the underlying sql.DB.
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
