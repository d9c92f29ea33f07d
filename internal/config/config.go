package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	HTTP_PROXY            = "http.proxy"
	HTTP_NO_PROXY         = "http.no_proxy"
	HTTP_TIMEOUT          = "http.timeout"
	HTTP_RATE_LIMIT       = "http.rate_limit"
	HTTP_RATE_BURST       = "http.rate_burst"
	FETCH_USER_AGENT      = "fetch.user_agent"
	FETCH_HEADERS         = "fetch.headers"
	FETCH_MAX_BODY_SIZE   = "fetch.max_body_size"
	LOGGING_LEVEL         = "logging.level"
	LOGGING_WRITE_IN_FILE = "logging.write_in_file"
	LOGGING_FILE_PATH     = "logging.file_path"
)

const envPrefix = "PAGEFETCH_"

type Config struct {
	k *koanf.Koanf
}

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "Path to config file")
}

func defaults() map[string]any {
	return map[string]any{
		HTTP_PROXY:            nil,
		HTTP_TIMEOUT:          30 * time.Second,
		HTTP_RATE_LIMIT:       0,
		HTTP_RATE_BURST:       1,
		FETCH_USER_AGENT:      "",
		FETCH_MAX_BODY_SIZE:   0,
		LOGGING_LEVEL:         "warn",
		LOGGING_WRITE_IN_FILE: false,
		LOGGING_FILE_PATH:     "pagefetch.log",
	}
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom loads defaults, then the first existing file among paths, then
// PAGEFETCH_* environment variables.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config %s: %w", path, err)
			}
			break
		}
	}

	// PAGEFETCH_HTTP_RATE_LIMIT -> http.rate_limit
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"_", ".", 1,
		)
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	cfg := &Config{k: k}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.k.Duration(HTTP_TIMEOUT) < 0 {
		return fmt.Errorf("%s must not be negative", HTTP_TIMEOUT)
	}
	if c.k.Float64(HTTP_RATE_LIMIT) < 0 {
		return fmt.Errorf("%s must not be negative", HTTP_RATE_LIMIT)
	}
	if c.k.Int64(FETCH_MAX_BODY_SIZE) < 0 {
		return fmt.Errorf("%s must not be negative", FETCH_MAX_BODY_SIZE)
	}
	return nil
}

func (c *Config) HTTP() HTTPConfig {
	var proxy string
	if proxyValue, ok := c.k.Get(HTTP_PROXY).(string); ok {
		proxy = proxyValue
	}

	burst := c.k.Int(HTTP_RATE_BURST)
	if burst < 1 {
		burst = 1
	}

	return HTTPConfig{
		proxy:     &proxy,
		noProxy:   c.k.Strings(HTTP_NO_PROXY),
		Timeout:   c.k.Duration(HTTP_TIMEOUT),
		RateLimit: c.k.Float64(HTTP_RATE_LIMIT),
		RateBurst: burst,
	}
}

func (c *Config) Fetch() FetchConfig {
	return FetchConfig{
		UserAgent:   c.k.String(FETCH_USER_AGENT),
		Headers:     c.k.StringMap(FETCH_HEADERS),
		MaxBodySize: c.k.Int64(FETCH_MAX_BODY_SIZE),
	}
}

func (c *Config) Log() LoggingConfig {
	return LoggingConfig{
		LogLevel:    c.k.String(LOGGING_LEVEL),
		WriteInFile: c.k.Bool(LOGGING_WRITE_IN_FILE),
		FilePath:    c.k.String(LOGGING_FILE_PATH),
	}
}

// Set overrides a single key, e.g. from a command line flag.
func (c *Config) Set(key string, value any) error {
	return c.k.Load(confmap.Provider(map[string]any{key: value}, "."), nil)
}

func getConfigPaths() []string {
	if configPath != "" {
		return []string{configPath}
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		"pagefetch.toml",
		"config.toml",
		filepath.Join(xdgConfig, "pagefetch", "config.toml"),
		"/etc/pagefetch/config.toml",
	}
}
