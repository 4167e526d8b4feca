// internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL  string `mapstructure:"base_url"`
	HTTP     struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`
	Frontend struct {
		URL           string   `mapstructure:"url"`
		PostLoginPath string   `mapstructure:"post_login_path"`
		CORSOrigins   []string `mapstructure:"cors_origins"`
	} `mapstructure:"frontend"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Security struct {
		RequestID struct {
			TrustHeader bool `mapstructure:"trust_header"`
		} `mapstructure:"request_id"`
		Session struct {
			SweeperInterval time.Duration `mapstructure:"sweeper_interval"`
			CookieSecure    bool          `mapstructure:"cookie_secure"`
			SameSite        string        `mapstructure:"same_site"`
		} `mapstructure:"session"`
		MFA struct {
			LocalRequired bool `mapstructure:"local_required"`
		} `mapstructure:"mfa"`
		RateLimit struct {
			Enabled           bool          `mapstructure:"enabled"`
			RequestsPerMinute int           `mapstructure:"rpm"`
			Burst             int           `mapstructure:"burst"`
			TTL               time.Duration `mapstructure:"ttl"`
		} `mapstructure:"rate_limit"`
		Denylist struct {
			Enabled bool `mapstructure:"enabled"`
		} `mapstructure:"denylist"`
	} `mapstructure:"security"`
	Geocoder struct {
		DefaultLat float64 `mapstructure:"default_lat"`
		DefaultLng float64 `mapstructure:"default_lng"`
	} `mapstructure:"geocoder"`
}

func Load() Config {
	// HTTP defaults
	viper.SetDefault("http.addr", ":8080")
	// Frontend defaults
	viper.SetDefault("frontend.post_login_path", "/dashboard")
	viper.SetDefault("frontend.cors_origins", []string{"http://localhost:5173"})
	// Sensible logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	// Security defaults
	viper.SetDefault("security.request_id.trust_header", false)
	viper.SetDefault("security.session.sweeper_interval", "5m")
	viper.SetDefault("security.session.cookie_secure", false)
	viper.SetDefault("security.session.same_site", "lax")
	viper.SetDefault("security.mfa.local_required", false)
	viper.SetDefault("security.rate_limit.enabled", true)
	viper.SetDefault("security.rate_limit.rpm", 120)
	viper.SetDefault("security.rate_limit.burst", 60)
	viper.SetDefault("security.rate_limit.ttl", "30m")
	viper.SetDefault("security.denylist.enabled", true)
	// Static geocoder centre (Manhattan, matches seeded locations)
	viper.SetDefault("geocoder.default_lat", 40.7128)
	viper.SetDefault("geocoder.default_lng", -74.0060)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// explicit bindings
	_ = viper.BindEnv("base_url", "BASE_URL")
	_ = viper.BindEnv("http.addr", "HTTP_ADDR")
	_ = viper.BindEnv("frontend.url", "FRONTEND_URL")
	_ = viper.BindEnv("frontend.post_login_path", "FRONTEND_POST_LOGIN_PATH")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")
	_ = viper.BindEnv("logging.format", "LOG_FORMAT")
	_ = viper.BindEnv("security.request_id.trust_header", "REQUEST_ID_TRUST_HEADER")
	_ = viper.BindEnv("security.session.sweeper_interval", "SESSION_SWEEPER_INTERVAL")
	_ = viper.BindEnv("security.session.cookie_secure", "SESSION_COOKIE_SECURE")
	_ = viper.BindEnv("security.session.same_site", "SESSION_SAME_SITE")
	_ = viper.BindEnv("security.mfa.local_required", "MFA_LOCAL_REQUIRED")
	_ = viper.BindEnv("security.rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = viper.BindEnv("security.rate_limit.rpm", "RATE_LIMIT_RPM")
	_ = viper.BindEnv("security.rate_limit.burst", "RATE_LIMIT_BURST")
	_ = viper.BindEnv("security.rate_limit.ttl", "RATE_LIMIT_TTL")
	_ = viper.BindEnv("security.denylist.enabled", "DENYLIST_ENABLED")
	_ = viper.BindEnv("geocoder.default_lat", "GEOCODER_DEFAULT_LAT")
	_ = viper.BindEnv("geocoder.default_lng", "GEOCODER_DEFAULT_LNG")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		panic("config error: " + err.Error())
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8080"
	}
	return c
}
