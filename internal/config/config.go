package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Upstream    UpstreamConfig    `yaml:"upstream"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Tailscale   TailscaleConfig   `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type UpstreamConfig struct {
	BaseURL string `yaml:"base_url"`
	// APIKey is the single-user fallback: used in stdio mode and for HTTP
	// sessions that present no bearer token. Optional when every caller
	// links their own key.
	APIKey string `yaml:"api_key"`
}

type CredentialsConfig struct {
	// Backend selects the credential store: "sqlite" or "postgres".
	Backend    string         `yaml:"backend"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   DatabaseConfig `yaml:"postgres"`
	// EncryptionKey is a hex-encoded 32-byte AES key for credentials at rest.
	EncryptionKey string `yaml:"encryption_key"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix LIFTGATE_ and underscore-separated paths:
//
//	LIFTGATE_SERVER_HOST, LIFTGATE_SERVER_PORT,
//	LIFTGATE_UPSTREAM_BASE_URL, LIFTGATE_UPSTREAM_API_KEY,
//	LIFTGATE_CREDS_BACKEND, LIFTGATE_CREDS_SQLITE_PATH,
//	LIFTGATE_CREDS_ENCRYPTION_KEY,
//	LIFTGATE_CREDS_DB_HOST, LIFTGATE_CREDS_DB_PORT, LIFTGATE_CREDS_DB_NAME,
//	LIFTGATE_CREDS_DB_USER, LIFTGATE_CREDS_DB_PASSWORD, LIFTGATE_CREDS_DB_SSLMODE,
//	LIFTGATE_TS_HOSTNAME, LIFTGATE_TS_STATE_DIR
//
// Required fields differ by serving mode, so Load only parses and defaults;
// the caller validates with ValidateServe or ValidateStdio.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTGATE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTGATE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTGATE_UPSTREAM_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv("LIFTGATE_UPSTREAM_API_KEY"); v != "" {
		cfg.Upstream.APIKey = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_BACKEND"); v != "" {
		cfg.Credentials.Backend = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_SQLITE_PATH"); v != "" {
		cfg.Credentials.SQLitePath = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_ENCRYPTION_KEY"); v != "" {
		cfg.Credentials.EncryptionKey = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_DB_HOST"); v != "" {
		cfg.Credentials.Postgres.Host = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Credentials.Postgres.Port = port
		}
	}
	if v := os.Getenv("LIFTGATE_CREDS_DB_NAME"); v != "" {
		cfg.Credentials.Postgres.Name = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_DB_USER"); v != "" {
		cfg.Credentials.Postgres.User = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_DB_PASSWORD"); v != "" {
		cfg.Credentials.Postgres.Password = v
	}
	if v := os.Getenv("LIFTGATE_CREDS_DB_SSLMODE"); v != "" {
		cfg.Credentials.Postgres.SSLMode = v
	}
	if v := os.Getenv("LIFTGATE_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
		cfg.Tailscale.Enabled = true
	}
	if v := os.Getenv("LIFTGATE_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = "https://api.hevyapp.com"
	}
	if cfg.Credentials.Backend == "" {
		cfg.Credentials.Backend = "sqlite"
	}
	if cfg.Credentials.SQLitePath == "" {
		cfg.Credentials.SQLitePath = "liftgate-creds.db"
	}
}

// ValidateServe checks the fields HTTP mode needs: a listener, a credential
// store, and its encryption key. Stdio mode never opens either, so these are
// not checked at load time.
func (c *Config) ValidateServe() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Credentials.Backend {
	case "sqlite":
	case "postgres":
		if c.Credentials.Postgres.Host == "" {
			return fmt.Errorf("credentials.postgres.host is required")
		}
		if c.Credentials.Postgres.Port == 0 {
			return fmt.Errorf("credentials.postgres.port is required")
		}
		if c.Credentials.Postgres.Name == "" {
			return fmt.Errorf("credentials.postgres.name is required")
		}
		if c.Credentials.Postgres.User == "" {
			return fmt.Errorf("credentials.postgres.user is required")
		}
	default:
		return fmt.Errorf("credentials.backend must be sqlite or postgres, got %q", c.Credentials.Backend)
	}
	if c.Credentials.EncryptionKey == "" {
		return fmt.Errorf("credentials.encryption_key is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}

// ValidateStdio checks the fields stdio mode needs. There is no token
// exchange over stdio, so the configured key is the only credential.
func (c *Config) ValidateStdio() error {
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("upstream.api_key is required in stdio mode")
	}
	return nil
}
