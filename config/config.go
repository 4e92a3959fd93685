// Package config loads and validates the generator configuration file.
//
// The file is YAML with three sections: database (connection parameters),
// generator (output options) and attributes (annotation toggles). The
// database and generator values are required; every attribute toggle
// defaults to false when absent.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingConfig is matched by every ConfigError.
var ErrMissingConfig = errors.New("entigen: missing configuration")

// ConfigError reports a missing configuration file or a missing required
// key. It is fatal and aborts the run before any table is processed.
type ConfigError struct {
	Key     string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("entigen: config error for %q: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("entigen: config error: %s", e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// Database holds the connection parameters.
type Database struct {
	Host     string `yaml:"host"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Generator holds the output options.
type Generator struct {
	OutputDirectory string `yaml:"output_directory"`
	Namespace       string `yaml:"namespace"`

	// GenerateSQL additionally emits a structure script built from
	// SHOW CREATE TABLE, written next to the class files.
	GenerateSQL   bool   `yaml:"generate_sql"`
	SQLOutputFile string `yaml:"sql_output_file"`
}

// Attributes holds the annotation toggles. Absent keys are false.
type Attributes struct {
	UseKey               bool `yaml:"use_key_attribute"`
	UseRequired          bool `yaml:"use_required_attribute"`
	UseColumn            bool `yaml:"use_column_attribute"`
	UseMaxLength         bool `yaml:"use_maxlength_attribute"`
	UseTable             bool `yaml:"use_table_attribute"`
	UseDatabaseGenerated bool `yaml:"use_databasegenerated_attribute"`
}

// Config is the full, immutable run configuration. It is constructed once
// at startup and read-only thereafter.
type Config struct {
	Database   Database   `yaml:"database"`
	Generator  Generator  `yaml:"generator"`
	Attributes Attributes `yaml:"attributes"`
}

// DefaultSQLOutputFile is used when generate_sql is enabled without an
// explicit sql_output_file.
const DefaultSQLOutputFile = "database_structure.sql"

// Default returns a configuration skeleton with placeholder connection
// values, used by "entigen init" to create a starting file.
func Default() *Config {
	return &Config{
		Database: Database{
			Host:     "localhost",
			Database: "your_database_name",
			User:     "username",
			Password: "your_password",
		},
		Generator: Generator{
			OutputDirectory: "./GeneratedEntities",
			Namespace:       "Your.Namespace",
			SQLOutputFile:   DefaultSQLOutputFile,
		},
		Attributes: Attributes{
			UseKey:               true,
			UseRequired:          true,
			UseColumn:            true,
			UseMaxLength:         true,
			UseTable:             true,
			UseDatabaseGenerated: true,
		},
	}
}

// Load reads and validates the configuration at path. A missing file,
// unparsable YAML, or a blank required key is a ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigError("", fmt.Sprintf("configuration file not found: %s", path))
		}
		return nil, NewConfigError("", fmt.Sprintf("read %s: %v", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError("", fmt.Sprintf("parse %s: %v", path, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Generator.SQLOutputFile == "" {
		cfg.Generator.SQLOutputFile = DefaultSQLOutputFile
	}
	return &cfg, nil
}

// Validate checks the required database and generator values. Attribute
// toggles are optional by design.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"database.host", c.Database.Host},
		{"database.database", c.Database.Database},
		{"database.user", c.Database.User},
		{"database.password", c.Database.Password},
		{"generator.output_directory", c.Generator.OutputDirectory},
		{"generator.namespace", c.Generator.Namespace},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewConfigError(r.key, "required value is missing or blank")
		}
	}
	return nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// DSN builds the go-sql-driver connection string. parseTime is enabled so
// time columns scan correctly; a host without an explicit port gets the
// MySQL default.
func (c *Config) DSN() string {
	host := c.Database.Host
	if !strings.Contains(host, ":") {
		host += ":3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		c.Database.User, c.Database.Password, host, c.Database.Database)
}
