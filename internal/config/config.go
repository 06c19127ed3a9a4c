// Package config loads themed settings, with live updates for the
// icon-set setting.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config is the themed configuration surface.
type Config struct {
	ExtensionsDir     string `mapstructure:"extensions_dir"`
	DataDir           string `mapstructure:"data_dir"`
	ListenAddr        string `mapstructure:"listen_addr"`
	LogLevel          string `mapstructure:"log_level"`
	DefaultColorTheme string `mapstructure:"default_color_theme"`

	Icons IconsConfig `mapstructure:"icons"`
}

// IconsConfig holds the registered icon-set setting.
type IconsConfig struct {
	// DefaultSet is the default file-icon set id.
	DefaultSet string `mapstructure:"default_set"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ExtensionsDir: "extensions",
		DataDir:       ".",
		ListenAddr:    ":7420",
		LogLevel:      "info",
	}
}

// Source reads configuration and notifies on icon-set changes.
type Source struct {
	v *viper.Viper

	mu       sync.Mutex
	cfg      Config
	handlers []func(iconSet string)
}

// Load reads the configuration file at path (optional; defaults apply
// when absent) plus THEMED_* environment overrides.
func Load(path string) (*Source, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("extensions_dir", def.ExtensionsDir)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("default_color_theme", def.DefaultColorTheme)
	v.SetDefault("icons.default_set", def.Icons.DefaultSet)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("themed")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("THEMED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := &Source{v: v}
	if err := v.Unmarshal(&s.cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}

// Config returns the current configuration snapshot.
func (s *Source) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// OnIconSetChange registers a handler for live changes to the icon-set
// setting and starts watching the config file on first use.
func (s *Source) OnIconSetChange(fn func(iconSet string)) {
	s.mu.Lock()
	watching := len(s.handlers) > 0
	s.handlers = append(s.handlers, fn)
	s.mu.Unlock()

	if watching {
		return
	}
	s.v.OnConfigChange(func(fsnotify.Event) {
		s.reload()
	})
	s.v.WatchConfig()
}

func (s *Source) reload() {
	var next Config
	if err := s.v.Unmarshal(&next); err != nil {
		return
	}

	s.mu.Lock()
	prev := s.cfg.Icons.DefaultSet
	s.cfg = next
	handlers := append([]func(string){}, s.handlers...)
	s.mu.Unlock()

	if next.Icons.DefaultSet == prev {
		return
	}
	for _, fn := range handlers {
		fn(next.Icons.DefaultSet)
	}
}
