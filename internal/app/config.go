package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "ONBOARD"

// Keys understood by the config layer.
const (
	KeyAPIURL      = "api_url"
	KeyInitData    = "init_data"
	KeyTimeout     = "timeout"
	KeyLogLevel    = "log_level"
	KeyMetricsAddr = "metrics_addr"
)

const (
	DefaultAPIURL   = "http://127.0.0.1:8000/api"
	DefaultTimeout  = 15 * time.Second
	DefaultLogLevel = "info"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL      string        `mapstructure:"api_url"`      // backend base URL, e.g. https://host/api
	InitData    string        `mapstructure:"init_data"`    // identity token handed over by the host
	Timeout     time.Duration `mapstructure:"timeout"`      // per-call HTTP timeout
	LogLevel    string        `mapstructure:"log_level"`    // debug, info, warn, error
	MetricsAddr string        `mapstructure:"metrics_addr"` // serve /metrics here when set

	HTTP *http.Client `mapstructure:"-"` // optional; built from Timeout when nil
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIURL, DefaultAPIURL)
	v.SetDefault(KeyInitData, "")
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyMetricsAddr, "")
	return v
}

// LoadConfig reads file (if any) into v and decodes the merged settings.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.InitData = strings.TrimSpace(cfg.InitData)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot run with.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api_url %q is not an http(s) URL", ErrInvalidConfig, c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
