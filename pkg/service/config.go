package service

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lexicloud/pkg/cloud"
	"github.com/matzehuels/lexicloud/pkg/errors"
)

// Config is the service configuration, loaded from a TOML file.
type Config struct {
	HTTP    HTTPConfig    `toml:"http"`
	Canvas  CanvasConfig  `toml:"canvas"`
	Cache   CacheConfig   `toml:"cache"`
	History HistoryConfig `toml:"history"`
	Emoji   EmojiConfig   `toml:"emoji"`
	Font    FontConfig    `toml:"font"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr string `toml:"addr"`
}

// CanvasConfig sets the word-cloud canvas extent in pixels.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// CacheConfig selects the image cache backend. Backend is one of
// "memory", "file", "redis", or "null".
type CacheConfig struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`        // file backend; empty means the user cache dir
	RedisAddr string `toml:"redis_addr"` // redis backend
	RedisDB   int    `toml:"redis_db"`
}

// HistoryConfig configures the message archive used for backfill. An
// empty URI disables backfill.
type HistoryConfig struct {
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
	Limit      int    `toml:"limit"` // messages replayed per place
}

// EmojiConfig configures custom-emoji asset fetching. BaseURL must
// contain one %s verb for the emoji ID.
type EmojiConfig struct {
	BaseURL string `toml:"base_url"`
}

// FontConfig selects the text rasterizer font. An empty path means
// discover a system font.
type FontConfig struct {
	Path string `toml:"path"`
}

// DefaultConfig returns a configuration usable without any file: default
// canvas, in-memory cache, no archive, system font.
func DefaultConfig() Config {
	return Config{
		HTTP:    HTTPConfig{Addr: ":8080"},
		Canvas:  CanvasConfig{Width: cloud.DefaultWidth, Height: cloud.DefaultHeight},
		Cache:   CacheConfig{Backend: "memory"},
		History: HistoryConfig{Limit: 2000},
	}
}

// LoadConfig reads a TOML configuration file, filling unset fields from
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing config %s", path)
	}
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "canvas extent must be positive, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	return cfg, nil
}
