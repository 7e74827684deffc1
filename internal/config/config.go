// Package config loads handler configuration from the environment.
package config

import (
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

// Config is the root configuration structure. It is populated once at
// process start and passed by value into every component; nothing re-reads
// the environment mid-invocation.
type Config struct {
	DBHost     string `envconfig:"DBHOST"`
	DBPort     int    `envconfig:"DBPORT" default:"5432"`
	DBName     string `envconfig:"DBDATABASE" default:"postgres"`
	DBUser     string `envconfig:"DBUSER"`
	DBPassword string `envconfig:"DBPASSWORD"`

	// ScriptBucket/ScriptKey locate the seed SQL script in S3.
	ScriptBucket string `envconfig:"BUCKET_NAME"`
	ScriptKey    string `envconfig:"OBJECT_KEY"`

	// ImportRoleARN is assumed for the cross-account bulk import; the CSV
	// lives under BucketPath in ScriptBucket.
	ImportRoleARN string `envconfig:"IAM_ROLE_ARN"`
	BucketPath    string `envconfig:"BUCKET_PATH" default:"labs/cfn_dependencies/c4w4a1/csv"`

	AccountID string `envconfig:"ACCOUNT_ID"`
	Project   string `envconfig:"PROJECT" default:"de-c4w4a1"`
	Region    string `envconfig:"REGION" default:"us-east-1"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures fields every code path depends on are present. The
// database and import settings are only required on the Create path and
// are checked there, so a Delete still converges on a half-configured
// environment.
func (c Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("project is required")
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		return fmt.Errorf("db port %d out of range", c.DBPort)
	}
	return nil
}

// DSN builds the Postgres connection string for the lab database.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	return u.String()
}
