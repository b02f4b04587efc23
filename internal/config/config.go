package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Steps for the seek and volume keys, in seconds / percent points.
	SeekStep   int `koanf:"seek_step"`
	VolumeStep int `koanf:"volume_step"`

	// Desktop notifications on track change.
	Notifications bool `koanf:"notifications"`

	// Icon style for the UI: "nerd", "unicode" or "none".
	Icons string `koanf:"icons"`

	Catalog CatalogConfig `koanf:"catalog"`
	MPV     MPVConfig     `koanf:"mpv"`
}

// CatalogConfig holds the catalog API settings.
type CatalogConfig struct {
	URL         string `koanf:"url"`          // API root, e.g. "https://catalog.example/api"
	StreamURL   string `koanf:"stream_url"`   // playback URL prefix a track id is appended to
	SearchLimit int    `koanf:"search_limit"` // results per search (1-30)
}

// MPVConfig holds the playback backend settings.
type MPVConfig struct {
	Binary    string `koanf:"binary"`     // mpv executable (default: found on PATH)
	SocketDir string `koanf:"socket_dir"` // where the IPC socket lives (default: os temp dir)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Notifications: true,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Normalize catalog URLs (remove trailing slash from the API root)
	cfg.Catalog.URL = strings.TrimSuffix(cfg.Catalog.URL, "/")

	// Expand ~ in socket_dir
	if cfg.MPV.SocketDir != "" {
		cfg.MPV.SocketDir = expandPath(cfg.MPV.SocketDir)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SeekStep <= 0 {
		c.SeekStep = 5
	}
	if c.VolumeStep <= 0 || c.VolumeStep > 100 {
		c.VolumeStep = 5
	}
	if c.Catalog.URL == "" {
		c.Catalog.URL = "https://music.youtube.com/youtubei/v1"
	}
	if c.Catalog.StreamURL == "" {
		c.Catalog.StreamURL = "https://music.youtube.com/watch?v="
	}
	if c.Catalog.SearchLimit <= 0 || c.Catalog.SearchLimit > 30 {
		c.Catalog.SearchLimit = 30
	}
	if c.MPV.Binary == "" {
		c.MPV.Binary = "mpv"
	}
	if c.Icons == "" {
		c.Icons = "unicode"
	}
}

// SeekStepDuration returns the seek step as a duration.
func (c *Config) SeekStepDuration() time.Duration {
	return time.Duration(c.SeekStep) * time.Second
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/harmonix/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "harmonix", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
