package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. FORMCHECK_TARGET_URL
const EnvPrefix = "FORMCHECK"

// DefaultTargetURL is the practice form under test
const DefaultTargetURL = "https://demoqa.com/automation-practice-form"

var engines = map[string]bool{"chromium": true, "firefox": true, "webkit": true}

type Config struct {
	TargetURL   string         `mapstructure:"target_url"`
	UploadFile  string         `mapstructure:"upload_file"`
	ArtifactDir string         `mapstructure:"artifact_dir"`
	Browser     BrowserConfig  `mapstructure:"browser"`
	Timeouts    TimeoutsConfig `mapstructure:"timeouts"`
	Log         LogConfig      `mapstructure:"log"`
}

type BrowserConfig struct {
	Engine         string        `mapstructure:"engine"`
	Headless       bool          `mapstructure:"headless"`
	SlowMo         time.Duration `mapstructure:"slow_mo"`
	ViewportWidth  int           `mapstructure:"viewport_width"`
	ViewportHeight int           `mapstructure:"viewport_height"`
}

type TimeoutsConfig struct {
	Navigation   time.Duration `mapstructure:"navigation"`
	PageLoad     time.Duration `mapstructure:"page_load"`
	Assert       time.Duration `mapstructure:"assert"`
	Validation   time.Duration `mapstructure:"validation"`
	Dropdown     time.Duration `mapstructure:"dropdown"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// SetDefaults registers every key so env overrides reach Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("target_url", DefaultTargetURL)
	v.SetDefault("upload_file", "")
	v.SetDefault("artifact_dir", "artifacts")

	v.SetDefault("browser.engine", "firefox")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.slow_mo", time.Duration(0))
	v.SetDefault("browser.viewport_width", 1280)
	v.SetDefault("browser.viewport_height", 720)

	v.SetDefault("timeouts.navigation", 30*time.Second)
	v.SetDefault("timeouts.page_load", 10*time.Second)
	v.SetDefault("timeouts.assert", 5*time.Second)
	v.SetDefault("timeouts.validation", 10*time.Second)
	v.SetDefault("timeouts.dropdown", 5*time.Second)
	v.SetDefault("timeouts.poll_interval", 100*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", false)
}

// RegisterFlags adds the command line overrides to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default is ./formcheck.yaml)")
	fs.String("url", DefaultTargetURL, "practice form URL")
	fs.String("upload-file", "", "picture uploaded by the form scenarios")
	fs.String("artifact-dir", "artifacts", "directory for screenshots and run summaries")
	fs.String("browser", "firefox", "browser engine: chromium, firefox or webkit")
	fs.Bool("headless", true, "run the browser headless")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "text", "log format: text or json")
}

var flagKeys = map[string]string{
	"url":          "target_url",
	"upload-file":  "upload_file",
	"artifact-dir": "artifact_dir",
	"browser":      "browser.engine",
	"headless":     "browser.headless",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// BindFlags binds the flags registered by RegisterFlags to their keys.
// Only flags set on the command line take precedence over env and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadDotEnv loads .env files into the process environment. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// Load layers defaults, the optional config file and FORMCHECK_ env vars
// into v and decodes the result
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("formcheck")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values every run depends on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TargetURL) == "" {
		return errors.New("target_url must not be empty")
	}
	if !engines[c.Browser.Engine] {
		return fmt.Errorf("browser.engine %q is not one of chromium, firefox, webkit", c.Browser.Engine)
	}
	timeouts := []struct {
		key string
		d   time.Duration
	}{
		{"timeouts.navigation", c.Timeouts.Navigation},
		{"timeouts.page_load", c.Timeouts.PageLoad},
		{"timeouts.assert", c.Timeouts.Assert},
		{"timeouts.validation", c.Timeouts.Validation},
		{"timeouts.dropdown", c.Timeouts.Dropdown},
		{"timeouts.poll_interval", c.Timeouts.PollInterval},
	}
	for _, t := range timeouts {
		if t.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", t.key, t.d)
		}
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}
