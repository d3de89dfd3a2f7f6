package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Record store backend
	Store StoreConfig

	// Account identity
	Identity IdentityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig points at the remote record store. An empty URL switches the
// service to the in-memory store (local development mode).
type StoreConfig struct {
	URL            string
	AccessToken    string
	RequestsPerSec float64
}

// IdentityConfig pins the account identity the service operates as. An
// empty user id behaves as signed-out.
type IdentityConfig struct {
	UserID string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Store.URL = viper.GetString("store.url")
	cfg.Store.AccessToken = viper.GetString("store.access_token")
	cfg.Store.RequestsPerSec = viper.GetFloat64("store.requests_per_sec")
	if storeURL := viper.GetString("store_url"); storeURL != "" {
		cfg.Store.URL = storeURL
	}
	if storeToken := viper.GetString("store_access_token"); storeToken != "" {
		cfg.Store.AccessToken = storeToken
	}

	cfg.Identity.UserID = viper.GetString("identity.user_id")
	if userID := viper.GetString("identity_user_id"); userID != "" {
		cfg.Identity.UserID = userID
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.requests_per_sec", 10)
}
