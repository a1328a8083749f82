package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string        `mapstructure:"PORT"`
	Env         string        `mapstructure:"ENV"`
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32         `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string      `mapstructure:"CORS_ORIGINS"`
	AuthSecret  string        `mapstructure:"AUTH_SECRET"`
	AuthStrict  bool          `mapstructure:"AUTH_STRICT"`
	SessionTTL  time.Duration `mapstructure:"SESSION_TTL"`
	SessionFile string        `mapstructure:"SESSION_FILE"`
}

// ConnectionInfo is the status the UI renders in its connection badge.
type ConnectionInfo struct {
	IsDemoMode     bool   `json:"is_demo_mode"`
	Mode           string `json:"mode"`
	HasCredentials bool   `json:"has_credentials"`
}

const demoAuthSecret = "onkoai-demo-secret"

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("AUTH_SECRET", demoAuthSecret)
	v.SetDefault("AUTH_STRICT", true)
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("SESSION_FILE", ".oncodemo/session.json")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("AUTH_STRICT")
	v.BindEnv("SESSION_TTL")
	v.BindEnv("SESSION_FILE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDemo() {
		log.Println("WARNING: running in DEMO mode, all data is synthetic and")
		log.Println("WARNING: credential checks are a simulation. Set DATABASE_URL")
		log.Println("WARNING: to run patient storage against a real backend.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsDemo reports whether the server runs against the synthetic
// in-memory dataset. Demo mode is the default; configuring
// DATABASE_URL switches patient storage to the real backend.
func (c *Config) IsDemo() bool {
	return c.DatabaseURL == ""
}

// Mode returns the operating mode label used by the connection badge.
func (c *Config) Mode() string {
	if c.IsDemo() {
		return "demo"
	}
	return "production"
}

// Connection returns the status consumed by the UI badge.
func (c *Config) Connection() ConnectionInfo {
	return ConnectionInfo{
		IsDemoMode:     c.IsDemo(),
		Mode:           c.Mode(),
		HasCredentials: !c.IsDemo(),
	}
}

// Validate checks that the configuration is safe to run. Production
// mode must not ship with the baked-in demo signing secret.
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if !c.IsDemo() && c.AuthSecret == demoAuthSecret {
		return fmt.Errorf("AUTH_SECRET must be overridden when DATABASE_URL is configured")
	}
	return nil
}
