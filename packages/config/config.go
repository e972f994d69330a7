package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config drives the demonstration run in cmd.
type Config struct {
	// number of codes pushed before the first print
	PushCount int    `mapstructure:"push_count"`
	FirstCode int    `mapstructure:"first_code"`
	PopCount  int    `mapstructure:"pop_count"`
	LogLevel  string `mapstructure:"log_level"`

	// register prometheus collectors for the stack
	Metrics bool `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("push_count", 35)
	v.SetDefault("first_code", 100)
	v.SetDefault("pop_count", 5)
	v.SetDefault("log_level", "debug")
	v.SetDefault("metrics", true)
}

// Load reads the optional dotenv file at envFile and then ERRSTACK_* environment
// variables on top of the defaults.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("no env file found, using environment only", "file", envFile)
		case err != nil:
			return Config{}, fmt.Errorf("could not load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("errstack")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	// AutomaticEnv only applies to known keys, which the defaults provide
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.PushCount < 0 {
		return fmt.Errorf("push_count must not be negative, got %d", c.PushCount)
	}
	if c.PopCount < 0 {
		return fmt.Errorf("pop_count must not be negative, got %d", c.PopCount)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
