package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	OIDC    OIDCConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type OIDCConfig struct {
	IssuerURL string
	ClientID  string
	// AllowInsecure enables payload-only token parsing for integration
	// runs; never set in production.
	AllowInsecure bool
}

// LoadConfig loads configuration from environment variables and .env file.
// The store URI and the verifier credentials are startup requirements:
// a missing value is an error here, not a per-request failure later.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "authgw")
	viper.SetDefault("MONGODB_TIMEOUT", 10)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		OIDC: OIDCConfig{
			IssuerURL:     viper.GetString("OIDC_ISSUER_URL"),
			ClientID:      viper.GetString("OIDC_CLIENT_ID"),
			AllowInsecure: insecureOptIn(),
		},
	}

	if cfg.MongoDB.URI == "" {
		return nil, errors.New("environment variable MONGODB_URI is required")
	}
	if !cfg.OIDC.AllowInsecure {
		if cfg.OIDC.IssuerURL == "" {
			return nil, errors.New("environment variable OIDC_ISSUER_URL is required")
		}
		if cfg.OIDC.ClientID == "" {
			return nil, errors.New("environment variable OIDC_CLIENT_ID is required")
		}
	}

	return cfg, nil
}

func insecureOptIn() bool {
	return strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN"))) == "true"
}
