// Package config resolves go-mkdocs settings from defaults, an optional
// YAML config file, GO_MKDOCS_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "go-mkdocs"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = ".go-mkdocs"
	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "GO_MKDOCS"
)

// Discovery modes.
const (
	ModeImports = "imports"
	ModeFiles   = "files"
)

// ErrInvalidMode is returned for an unknown discovery mode.
var ErrInvalidMode = errors.New("invalid mode")

// Config holds the resolved settings.
type Config struct {
	Output       string         `mapstructure:"output"`
	Mode         string         `mapstructure:"mode"`
	Flat         bool           `mapstructure:"flat"`
	Members      bool           `mapstructure:"members"`
	HeadingLevel bool           `mapstructure:"heading_level"`
	Tracked      bool           `mapstructure:"tracked"`
	IncludeMain  bool           `mapstructure:"include_main"`
	Strict       bool           `mapstructure:"strict"`
	Verbose      bool           `mapstructure:"verbose"`
	Preview      bool           `mapstructure:"preview"`
	Options      map[string]any `mapstructure:"options"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Mode:   ModeImports,
		Strict: true,
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"output":        "output",
	"mode":          "mode",
	"flat":          "flat",
	"members":       "members",
	"heading-level": "heading_level",
	"tracked":       "tracked",
	"cmd":           "include_main",
	"strict":        "strict",
	"verbose":       "verbose",
	"preview":       "preview",
}

// Load resolves the configuration. When path is empty a ConfigFileName
// file in the working directory is used if present. Flags that were not
// set on the command line do not override lower layers.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("flat", defaults.Flat)
	v.SetDefault("members", defaults.Members)
	v.SetDefault("heading_level", defaults.HeadingLevel)
	v.SetDefault("tracked", defaults.Tracked)
	v.SetDefault("include_main", defaults.IncludeMain)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("preview", defaults.Preview)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot be honored.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeImports, ModeFiles:
	default:
		return fmt.Errorf("%w %q: want %q or %q", ErrInvalidMode, c.Mode, ModeImports, ModeFiles)
	}
	return nil
}
