package config

import (
	"log"
	"strings"

	"chokokon/internal/models"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Database DatabaseConfig
	Business BusinessConfig
	Site     models.SiteInfo
}

type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type SessionConfig struct {
	Secret           string
	TTLHours         int    `mapstructure:"ttl_hours"`
	CookieName       string `mapstructure:"cookie_name"`
	Username         string
	PasswordHash     string `mapstructure:"password_hash"`
	LoginDelayMillis int    `mapstructure:"login_delay_ms"`
}

type DatabaseConfig struct {
	DSN         string
	LogLevel    string `mapstructure:"log_level"`
	SeedFixture bool   `mapstructure:"seed_fixtures"`
}

type BusinessConfig struct {
	StrictOrderTransitions bool `mapstructure:"strict_order_transitions"`
	LowStockThreshold      int  `mapstructure:"low_stock_threshold"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SESSION_TTL_HOURS", 12)
	v.SetDefault("SESSION_COOKIE", "chokokon_session")
	v.SetDefault("LOGIN_DELAY_MS", 0)
	v.SetDefault("DB_DSN", "file::memory:?cache=shared")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("SEED_FIXTURES", true)
	v.SetDefault("STRICT_ORDER_TRANSITIONS", false)
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
}

// LoadConfig reads .env (optional), the process environment and the TOML
// site file. envFile and siteFile may be empty to use the defaults.
func LoadConfig(envFile, siteFile string) *Config {
	if envFile == "" {
		envFile = ".env"
	}
	if siteFile == "" {
		siteFile = "config/config.toml"
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Read .env file
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: %s not found, checking environment variables: %v", envFile, err)
	}

	// Enable reading from OS environment variables as fallback/override
	v.AutomaticEnv()

	// Explicitly bind environment variables for robustness
	v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("SERVER_PORT"),
			Env:         v.GetString("SERVER_ENV"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Session: SessionConfig{
			Secret:           v.GetString("SESSION_SECRET"),
			TTLHours:         v.GetInt("SESSION_TTL_HOURS"),
			CookieName:       v.GetString("SESSION_COOKIE"),
			Username:         v.GetString("AUTH_USERNAME"),
			PasswordHash:     v.GetString("AUTH_PASSWORD_HASH"),
			LoginDelayMillis: v.GetInt("LOGIN_DELAY_MS"),
		},
		Database: DatabaseConfig{
			DSN:         v.GetString("DB_DSN"),
			LogLevel:    v.GetString("DB_LOG_LEVEL"),
			SeedFixture: v.GetBool("SEED_FIXTURES"),
		},
		Business: BusinessConfig{
			StrictOrderTransitions: v.GetBool("STRICT_ORDER_TRANSITIONS"),
			LowStockThreshold:      v.GetInt("LOW_STOCK_THRESHOLD"),
		},
		Site: models.DefaultSiteInfo(),
	}

	// Load TOML Config for Site Info
	siteViper := viper.New()
	siteViper.SetConfigFile(siteFile)
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		log.Printf("Warning: %s not found, using default site info: %v", siteFile, err)
	} else {
		if err := siteViper.UnmarshalKey("site", &cfg.Site); err != nil {
			log.Printf("Error: Failed to unmarshal site info from TOML: %v", err)
		}
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", cfg.Server.Port)
	log.Printf("- Server Env: %s", cfg.Server.Env)
	log.Printf("- Session Secret: %s", setOrNot(cfg.Session.Secret))
	log.Printf("- Fixed Credential: %s", setOrNot(cfg.Session.PasswordHash))
	log.Printf("- Database DSN: %s", cfg.Database.DSN)
	log.Printf("- Seed Fixtures: %t", cfg.Database.SeedFixture)
	log.Printf("- Strict Order Transitions: %t", cfg.Business.StrictOrderTransitions)
	log.Printf("- Business Name: %s", cfg.Site.Name)

	return cfg
}

func setOrNot(v string) string {
	if v != "" {
		return "SET"
	}
	return "NOT SET"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
