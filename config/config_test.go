package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/syssam/entigen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entigen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `database:
  host: localhost
  database: shop
  user: root
  password: secret
generator:
  output_directory: ./entities
  namespace: Shop.Models
attributes:
  use_key_attribute: true
  use_column_attribute: true
`

func TestLoad(t *testing.T) {
	t.Run("valid_file", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "shop", cfg.Database.Database)
		assert.Equal(t, "./entities", cfg.Generator.OutputDirectory)
		assert.Equal(t, "Shop.Models", cfg.Generator.Namespace)
		assert.True(t, cfg.Attributes.UseKey)
		assert.True(t, cfg.Attributes.UseColumn)
	})

	t.Run("absent_attribute_toggles_default_false", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.False(t, cfg.Attributes.UseRequired)
		assert.False(t, cfg.Attributes.UseMaxLength)
		assert.False(t, cfg.Attributes.UseTable)
		assert.False(t, cfg.Attributes.UseDatabaseGenerated)
	})

	t.Run("sql_output_file_default", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, config.DefaultSQLOutputFile, cfg.Generator.SQLOutputFile)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, config.IsConfigError(err))
		assert.True(t, errors.Is(err, config.ErrMissingConfig))
	})

	t.Run("unparsable_yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "database: [unclosed"))
		require.Error(t, err)
		assert.True(t, config.IsConfigError(err))
	})

	t.Run("missing_database_value", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, `database:
  host: localhost
  database: shop
  user: root
generator:
  output_directory: ./entities
  namespace: Shop.Models
`))
		require.Error(t, err)
		var cfgErr *config.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "database.password", cfgErr.Key)
	})

	t.Run("blank_generator_value", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, `database:
  host: localhost
  database: shop
  user: root
  password: secret
generator:
  output_directory: "  "
  namespace: Shop.Models
`))
		require.Error(t, err)
		var cfgErr *config.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "generator.output_directory", cfgErr.Key)
	})
}

func TestDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entigen.yaml")
	require.NoError(t, config.Default().Save(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.True(t, cfg.Attributes.UseKey)
	assert.True(t, cfg.Attributes.UseDatabaseGenerated)
}

func TestDSN(t *testing.T) {
	t.Run("default_port", func(t *testing.T) {
		cfg := config.Default()
		cfg.Database = config.Database{Host: "db.internal", Database: "shop", User: "root", Password: "secret"}
		assert.Equal(t, "root:secret@tcp(db.internal:3306)/shop?parseTime=true", cfg.DSN())
	})

	t.Run("explicit_port_kept", func(t *testing.T) {
		cfg := config.Default()
		cfg.Database = config.Database{Host: "db.internal:3307", Database: "shop", User: "root", Password: "secret"}
		assert.Equal(t, "root:secret@tcp(db.internal:3307)/shop?parseTime=true", cfg.DSN())
	})
}
