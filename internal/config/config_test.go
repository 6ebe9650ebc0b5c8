package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "World", cfg.Greeting.Name)
	assert.Equal(t, Operands{X: 5, Y: 3}, cfg.Demo.Add)
	assert.Equal(t, Operands{X: 4, Y: 7}, cfg.Demo.Multiply)
	assert.Equal(t, "syntaxdemo", cfg.Server.Name)
	assert.Empty(t, cfg.Log.Dir, "file logging must be off by default")
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[greeting]
name = "Gopher"

[demo.add]
x = 1.5
y = 2.0

[server]
name = "calc-server"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Gopher", cfg.Greeting.Name)
	assert.Equal(t, Operands{X: 1.5, Y: 2}, cfg.Demo.Add)
	assert.Equal(t, Operands{X: 4, Y: 7}, cfg.Demo.Multiply, "unset keys keep their defaults")
	assert.Equal(t, "calc-server", cfg.Server.Name)
	assert.Equal(t, "dev", cfg.Server.Version)
}

func TestLoadFromFile_TOMLUnknownKeysIgnored(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[greeting]
name = "World"
colour = "blue"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "World", cfg.Greeting.Name)
}

func TestLoadFromFile_YAML(t *testing.T) {
	for _, ext := range []string{"yaml", "yml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeConfig(t, "config."+ext, `
greeting:
  name: ""
demo:
  multiply:
    x: -2
    y: 0.5
log:
  dir: /tmp/syntaxdemo
`)

			cfg, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, "", cfg.Greeting.Name, "empty name is allowed")
			assert.Equal(t, Operands{X: -2, Y: 0.5}, cfg.Demo.Multiply)
			assert.Equal(t, Operands{X: 5, Y: 3}, cfg.Demo.Add)
			assert.Equal(t, "/tmp/syntaxdemo", cfg.Log.Dir)
			assert.Equal(t, "syntaxdemo.log", cfg.Log.File)
		})
	}
}

func TestLoadFromFile_ExpandsVariables(t *testing.T) {
	t.Setenv("SYNTAXDEMO_TEST_NAME", "Ada")
	path := writeConfig(t, "config.toml", `
[greeting]
name = "${SYNTAXDEMO_TEST_NAME} Lovelace"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", cfg.Greeting.Name)
}

func TestLoadFromFile_UndefinedVariable(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
greeting:
  name: "${SYNTAXDEMO_DEFINITELY_UNSET}"
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "greeting.name", verr.Path)
	assert.Contains(t, verr.Error(), "SYNTAXDEMO_DEFINITELY_UNSET")
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		errMatch string
	}{
		{"unsupported extension", "config.json", `{}`, "unsupported config file extension '.json'"},
		{"malformed toml", "config.toml", "[greeting\nname =", "failed to decode TOML"},
		{"malformed yaml", "config.yaml", "greeting: [unterminated", "failed to decode YAML"},
		{"empty server name", "config.toml", "[server]\nname = \"\"\n", "'name' is required"},
		{"log file with separator", "config.yaml", "log:\n  dir: /tmp\n  file: ../escape.log\n", "must not contain path separators"},
		{"log dir without file", "config.yaml", "log:\n  dir: /tmp\n  file: \"\"\n", "'file' is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMatch)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
