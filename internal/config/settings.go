package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default encode parameters.
const (
	DefaultFFmpegPath       = "ffmpeg"
	DefaultVideoCodec       = "libx264"
	DefaultAudioCodec       = "aac"
	DefaultPreset           = "fast"
	DefaultCRF              = 23
	DefaultTargetResolution = "1080p"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
)

// EnvPrefix namespaces the environment variable overrides, e.g.
// CLIPCUT_ENCODE_CRF=20.
const EnvPrefix = "CLIPCUT"

// Config represents the entire application configuration.
type Config struct {
	Encode   EncodeConfig   `mapstructure:"encode"`
	Selector SelectorConfig `mapstructure:"selector"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// EncodeConfig contains the ffmpeg invocation settings.
type EncodeConfig struct {
	FFmpegPath string `mapstructure:"ffmpeg_path"`
	VideoCodec string `mapstructure:"video_codec"`
	AudioCodec string `mapstructure:"audio_codec"`
	Preset     string `mapstructure:"preset"`
	CRF        int    `mapstructure:"crf"`
}

// SelectorConfig contains stream selection settings.
type SelectorConfig struct {
	TargetResolution string `mapstructure:"target_resolution"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from the given file path. An empty path loads
// defaults plus environment overrides only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("encode.ffmpeg_path", DefaultFFmpegPath)
	v.SetDefault("encode.video_codec", DefaultVideoCodec)
	v.SetDefault("encode.audio_codec", DefaultAudioCodec)
	v.SetDefault("encode.preset", DefaultPreset)
	v.SetDefault("encode.crf", DefaultCRF)
	v.SetDefault("selector.target_resolution", DefaultTargetResolution)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Encode.CRF < 0 || cfg.Encode.CRF > 51 {
		return nil, fmt.Errorf("encode.crf must be in [0, 51], got %d", cfg.Encode.CRF)
	}

	return &cfg, nil
}
