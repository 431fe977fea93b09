package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/wishlist/internal/store"
)

// Config holds all configuration for the application
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	UI     UIConfig     `mapstructure:"ui"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// DataConfig locates the durable slot
type DataConfig struct {
	Dir       string `mapstructure:"dir"`
	Slot      string `mapstructure:"slot"`
	Ephemeral bool   `mapstructure:"ephemeral"`
}

// UIConfig tunes rendering
type UIConfig struct {
	Theme     string        `mapstructure:"theme"`
	NoticeTTL time.Duration `mapstructure:"notice_ttl"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Filename string `mapstructure:"filename"`
}

// Themes known to the ui package.
var Themes = []string{"classic", "neon", "mono"}

// Load reads .env, an optional config file, the environment and the
// given flags, in increasing order of precedence.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("WISHLIST")
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.slot", store.DefaultKey)
	v.SetDefault("data.ephemeral", false)

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.notice_ttl", "2s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "file")
	v.SetDefault("logger.filename", "")
}

func bindEnvVars(v *viper.Viper) error {
	binds := map[string]string{
		"data.dir":        "WISHLIST_DATA_DIR",
		"data.slot":       "WISHLIST_SLOT",
		"data.ephemeral":  "WISHLIST_EPHEMERAL",
		"ui.theme":        "WISHLIST_THEME",
		"ui.notice_ttl":   "WISHLIST_NOTICE_TTL",
		"logger.level":    "LOG_LEVEL",
		"logger.format":   "LOG_FORMAT",
		"logger.output":   "LOG_OUTPUT",
		"logger.filename": "LOG_FILE",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	return nil
}

// Flag names mapped to config keys. Flags that are absent from the set are skipped.
var flagKeys = map[string]string{
	"data-dir":  "data.dir",
	"slot":      "data.slot",
	"ephemeral": "data.ephemeral",
	"theme":     "ui.theme",
	"log-level": "logger.level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func validateConfig(cfg *Config) error {
	slot := strings.TrimSpace(cfg.Data.Slot)
	if slot == "" {
		return fmt.Errorf("data slot name is required")
	}
	if strings.ContainsAny(slot, `/\`) || slot == "." || slot == ".." {
		return fmt.Errorf("data slot name %q must not contain path separators", slot)
	}
	cfg.Data.Slot = slot

	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "."
	}

	theme := strings.ToLower(cfg.UI.Theme)
	known := false
	for _, t := range Themes {
		if t == theme {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown theme %q (want one of %s)", cfg.UI.Theme, strings.Join(Themes, ", "))
	}
	cfg.UI.Theme = theme

	if cfg.UI.NoticeTTL <= 0 {
		return fmt.Errorf("notice ttl must be positive")
	}

	switch cfg.Logger.Output {
	case "file", "stdout", "stderr":
	default:
		return fmt.Errorf("logger output must be file, stdout or stderr")
	}

	return nil
}

// LogPath returns the log file location, defaulting to the data directory.
func (cfg *Config) LogPath() string {
	if cfg.Logger.Filename != "" {
		return cfg.Logger.Filename
	}
	return filepath.Join(cfg.Data.Dir, "wishlist.log")
}
