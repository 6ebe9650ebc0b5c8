// Package config loads syntaxdemo settings. Defaults reproduce the built-in
// demo; a TOML or YAML file may override any subset of them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mmonari/syntaxdemo/internal/config/rules"
	"github.com/mmonari/syntaxdemo/internal/logger"
)

var logConfig = logger.New("config:config")

// Config is the full set of settings.
type Config struct {
	Greeting GreetingConfig `toml:"greeting" yaml:"greeting"`
	Demo     DemoConfig     `toml:"demo" yaml:"demo"`
	Server   ServerConfig   `toml:"server" yaml:"server"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// GreetingConfig controls who gets greeted.
type GreetingConfig struct {
	Name string `toml:"name" yaml:"name"`
}

// Operands is a pair of calculator inputs.
type Operands struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// DemoConfig holds the operands used by the default run.
type DemoConfig struct {
	Add      Operands `toml:"add" yaml:"add"`
	Multiply Operands `toml:"multiply" yaml:"multiply"`
}

// ServerConfig is the identity the MCP server announces.
type ServerConfig struct {
	Name    string `toml:"name" yaml:"name"`
	Version string `toml:"version" yaml:"version"`
}

// LogConfig enables the file logger when Dir is set.
type LogConfig struct {
	Dir  string `toml:"dir" yaml:"dir"`
	File string `toml:"file" yaml:"file"`
}

// DefaultConfig returns the settings that produce the literal demo output.
func DefaultConfig() *Config {
	return &Config{
		Greeting: GreetingConfig{Name: "World"},
		Demo: DemoConfig{
			Add:      Operands{X: 5, Y: 3},
			Multiply: Operands{X: 4, Y: 7},
		},
		Server: ServerConfig{
			Name:    "syntaxdemo",
			Version: "dev",
		},
		Log: LogConfig{File: "syntaxdemo.log"},
	}
}

// LoadFromFile decodes path on top of DefaultConfig. The decoder is picked by
// extension: .toml, .yaml or .yml.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	ext := strings.ToLower(filepath.Ext(path))
	logConfig.Printf("Loading config: path=%s, format=%s", path, ext)

	switch ext {
	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		for _, key := range md.Undecoded() {
			logConfig.Printf("Ignoring unknown key: %s", key.String())
			logger.LogWarn("config", "Ignoring unknown key %s in %s", key.String(), path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, rules.UnsupportedFormat(ext, path)
	}

	if err := cfg.expand(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	logConfig.Printf("Config loaded: greeting=%q, server=%s", cfg.Greeting.Name, cfg.Server.Name)
	return cfg, nil
}

// expand resolves ${VAR} references in string settings.
func (c *Config) expand() error {
	fields := []struct {
		value *string
		path  string
	}{
		{&c.Greeting.Name, "greeting.name"},
		{&c.Server.Name, "server.name"},
		{&c.Log.Dir, "log.dir"},
	}
	for _, f := range fields {
		expanded, err := expandVariables(*f.value, f.path)
		if err != nil {
			return err
		}
		*f.value = expanded
	}
	return nil
}
