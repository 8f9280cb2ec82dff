package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds the settings for one audio stream block.
type Config struct {
	BlockName  string  `mapstructure:"block_name"`
	Sink       bool    `mapstructure:"sink"`      // true selects output, false input
	DType      string  `mapstructure:"dtype"`     // float32, int32, int16, int8, uint8
	Channels   int     `mapstructure:"channels"`
	ChanMode   string  `mapstructure:"chan_mode"` // "INTERLEAVED" or anything else for planar
	SampleRate float64 `mapstructure:"sample_rate"`
	Device     string  `mapstructure:"device"` // selector: empty, index, or device name
	ReportMode string  `mapstructure:"report_mode"`
	BackoffMs  int64   `mapstructure:"backoff_ms"`
	LogLevel   string  `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("block_name", "audio")
	v.SetDefault("sink", false)
	v.SetDefault("dtype", "float32")
	v.SetDefault("channels", 1)
	v.SetDefault("chan_mode", "INTERLEAVED")
	v.SetDefault("sample_rate", 44100.0)
	v.SetDefault("device", "")
	v.SetDefault("report_mode", "STDERROR")
	v.SetDefault("backoff_ms", 0)
	v.SetDefault("log_level", "info")
}

// Load reads the config file at path, falling back to the platform
// default location when path is empty. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = configPath()
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "pothos-audio", "config.json")
}
