// Package cmd wires configuration and dependency construction for the
// order service executable.
package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config carries all runtime settings, populated from environment variables.
// A .env file, when present, is loaded into the environment before parsing.
type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"orders"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// SweepCron is a six-field cron expression with a seconds column.
	// The default runs the pending-order sweep every five minutes.
	SweepCron string `env:"SWEEP_CRON" envDefault:"0 */5 * * * *"`
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// DSN builds the postgres connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
