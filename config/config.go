// Package config loads application configuration from file and
// environment via viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Logger  *Logger
	Data    *Data
	Viper   *viper.Viper
}

// Load loads the configuration from the given file path. An empty path
// falls back to a config.yaml search in the standard locations; a missing
// file is not an error, defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("catalog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/catalog")
		v.AddConfigPath("$HOME/.catalog")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Host:    v.GetString("server.host"),
		Port:    v.GetInt("server.port"),
		Logger:  getLoggerConfig(v),
		Data:    getDataConfig(v),
		Viper:   v,
	}

	return cfg, nil
}

// Watch reloads the configuration whenever the underlying file changes.
func (c *Config) Watch(onChange func(*Config)) {
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := Load(e.Name)
		if err != nil {
			return
		}
		onChange(cfg)
	})
	c.Viper.WatchConfig()
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsRelease reports whether the service runs in release mode, which gates
// error message detail on the wire.
func (c *Config) IsRelease() bool {
	return c.RunMode == "release"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "catalog")
	v.SetDefault("run_mode", "debug")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("data.database.driver", "sqlite3")
	v.SetDefault("data.database.source", "file:catalog.db?_loc=UTC")
}
