package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "reversi"
	envPrefix = "REVERSI"
)

// Config holds runtime settings for the terminal game
type Config struct {
	Theme       string `mapstructure:"theme" validate:"oneof=off green gray brown"`
	Hints       bool   `mapstructure:"hints"`
	Plain       bool   `mapstructure:"plain"`
	HistoryFile string `mapstructure:"history-file"`
	Position    string `mapstructure:"position" validate:"omitempty,len=71"`
	Turn        string `mapstructure:"turn" validate:"oneof=black white"`
	Debug       bool   `mapstructure:"debug"`
}

var validate = validator.New()

// DefaultHistoryFile is where readline keeps entered lines between runs
func DefaultHistoryFile() string {
	return filepath.Join(xdg.StateHome, appName, "history")
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/reversi/reversi.yaml)")
	fs.String("theme", "off", "Board color theme (off|green|gray|brown)")
	fs.Bool("hints", false, "Mark legal squares on the board")
	fs.Bool("plain", false, "Read input line by line without readline")
	fs.String("history-file", DefaultHistoryFile(), "Readline history file")
	fs.String("position", "", "Start from a layout of 8 '/'-separated rows of . B W")
	fs.String("turn", "black", "Side to move when starting from --position (black|white)")
	fs.Bool("debug", false, "Enable debug logging")
}

// Load layers flags over REVERSI_* environment variables over the config
// file, then validates the result
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	explicit := v.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Theme = strings.ToLower(cfg.Theme)
	cfg.Turn = strings.ToLower(cfg.Turn)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports them in one error
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "len":
			details.WriteString(fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}
