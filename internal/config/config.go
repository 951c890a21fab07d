package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// StoreConfig holds record store client configuration
type StoreConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	AuthToken string        `mapstructure:"auth_token"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// MailerConfig holds transactional mail API configuration.
// An empty APIURL disables outbound notification entirely.
type MailerConfig struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
	From   string `mapstructure:"from"`
}

// PortalConfig holds sponsor portal configuration
type PortalConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	ExpiryDays  int    `mapstructure:"expiry_days"`
	DueSoonDays int    `mapstructure:"due_soon_days"`
}

// NATSConfig holds NATS JetStream configuration.
// An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig `mapstructure:"server"`
	Store      StoreConfig  `mapstructure:"store"`
	Mailer     MailerConfig `mapstructure:"mailer"`
	Portal     PortalConfig `mapstructure:"portal"`
	NATS       NATSConfig   `mapstructure:"nats"`
	Auth       AuthConfig   `mapstructure:"auth"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("store.timeout", "30s")
	v.SetDefault("portal.expiry_days", 90)
	v.SetDefault("portal.due_soon_days", 7)
	v.SetDefault("nats.stream_name", "SPONSOR_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "sponsorpipe-api")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Store.BaseURL == "" {
		return nil, errors.New("store.base_url is required")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("SPONSORPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when
// no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Record store
		"store.base_url",
		"store.auth_token",
		"store.timeout",
		// Mailer
		"mailer.api_url",
		"mailer.api_key",
		"mailer.from",
		// Portal
		"portal.base_url",
		"portal.expiry_days",
		"portal.due_soon_days",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
