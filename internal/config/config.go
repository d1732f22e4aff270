package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the intake service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SES       SESConfig       `yaml:"ses"`
	OrderSync OrderSyncConfig `yaml:"order_sync"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GetHost returns the bind host, defaulting to all interfaces.
func (s ServerConfig) GetHost() string {
	if s.Host == "" {
		return "0.0.0.0"
	}
	return s.Host
}

// DatabaseConfig holds PostgreSQL connection settings. The URL is required
// at startup; the pool limits have conservative defaults suited to a small
// serverless Postgres plan.
type DatabaseConfig struct {
	URL                    string `yaml:"url"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSeconds int    `yaml:"conn_max_lifetime_seconds"`
	ConnMaxIdleSeconds     int    `yaml:"conn_max_idle_seconds"`
}

// ConnMaxLifetime returns the maximum connection lifetime as a duration.
func (d DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeSeconds) * time.Second
}

// ConnMaxIdleTime returns the maximum idle time as a duration.
func (d DatabaseConfig) ConnMaxIdleTime() time.Duration {
	return time.Duration(d.ConnMaxIdleSeconds) * time.Second
}

// SESConfig holds AWS SES credentials and the verified sender identity.
// When AccessKey/SecretKey are empty the AWS SDK default credential chain
// is used (instance profile, env vars, shared config).
type SESConfig struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region"`
	Sender    string `yaml:"sender"`
}

// OrderSyncConfig holds the external order-sync endpoint. Empty URL
// disables dispatching.
type OrderSyncConfig struct {
	URL       string `yaml:"url"`
	QueueSize int    `yaml:"queue_size"`
}

// CORSConfig holds the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns a configuration with development defaults. The registration
// form runs on a separate Vite dev server, hence the two localhost origins.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 3000},
		Database: DatabaseConfig{
			MaxOpenConns:           10,
			MaxIdleConns:           3,
			ConnMaxLifetimeSeconds: 300,
			ConnMaxIdleSeconds:     30,
		},
		SES: SESConfig{Region: "ap-southeast-1"},
		OrderSync: OrderSyncConfig{QueueSize: 64},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3001"},
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// A .env file is loaded first if present (no error if missing).
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("AWS_SES_ACCESS_KEY"); v != "" {
		cfg.SES.AccessKey = v
	}
	if v := os.Getenv("AWS_SES_SECRET_KEY"); v != "" {
		cfg.SES.SecretKey = v
	}
	if v := os.Getenv("AWS_SES_REGION"); v != "" {
		cfg.SES.Region = v
	}
	if v := os.Getenv("SENDER_EMAIL"); v != "" {
		cfg.SES.Sender = v
	}
	if v := os.Getenv("ORDER_SYNC_URL"); v != "" {
		cfg.OrderSync.URL = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}

	return cfg, nil
}

// Validate checks the settings the process cannot run without. These are
// deployment mistakes, caught at startup rather than per request.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database url is required (set DATABASE_URL)")
	}
	if c.SES.Sender == "" {
		return fmt.Errorf("sender email is required (set SENDER_EMAIL)")
	}
	if c.SES.Region == "" {
		return fmt.Errorf("ses region is required (set AWS_SES_REGION)")
	}
	return nil
}
