package service

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicloud.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[http]
addr = ":9000"

[canvas]
width = 1024
height = 512

[cache]
backend = "file"
dir = "/tmp/lexicloud-cache"

[history]
mongo_uri = "mongodb://localhost:27017"
limit = 500

[emoji]
base_url = "https://cdn.example.com/emojis/%s.png"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTP.Addr != ":9000" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 512 {
		t.Errorf("canvas = %dx%d, want 1024x512", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Cache.Backend != "file" || cfg.Cache.Dir != "/tmp/lexicloud-cache" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.History.MongoURI != "mongodb://localhost:27017" || cfg.History.Limit != 500 {
		t.Errorf("history = %+v", cfg.History)
	}
}

func TestLoadConfigKeepsDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `[http]
addr = ":7000"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.Canvas != def.Canvas {
		t.Errorf("canvas = %+v, want default %+v", cfg.Canvas, def.Canvas)
	}
	if cfg.Cache.Backend != def.Cache.Backend {
		t.Errorf("cache backend = %q, want default %q", cfg.Cache.Backend, def.Cache.Backend)
	}
	if cfg.History.Limit != def.History.Limit {
		t.Errorf("history limit = %d, want default %d", cfg.History.Limit, def.History.Limit)
	}
}

func TestLoadConfigRejectsBadCanvas(t *testing.T) {
	path := writeConfig(t, `[canvas]
width = -1
height = 400
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should reject a non-positive canvas extent")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadConfig should fail on a missing file")
	}
}
