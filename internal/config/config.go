package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Ledger    LedgerConfig
	Generator GeneratorConfig
	Log       LogConfig
}

// LedgerConfig holds the ledger store location.
type LedgerConfig struct {
	Path string
}

// GeneratorConfig holds dataset generation settings.
type GeneratorConfig struct {
	OutDir     string `mapstructure:"out_dir"`
	Seed       uint64
	Sales      int
	SQLitePath string `mapstructure:"sqlite_path"`
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix FINKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ledger.path", filepath.Join(dataHome(), "finkit", "transactions.json"))
	v.SetDefault("generator.out_dir", ".")
	v.SetDefault("generator.seed", 42)
	v.SetDefault("generator.sales", 3250)
	v.SetDefault("generator.sqlite_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FINKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "finkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FINKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit FINKIT_CONFIG that cannot be read is an error; a missing default file is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}
