package config

import (
	"testing"

	"github.com/inamate/inamate/editor-go/internal/entity"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 || cfg.ControlSize != 20 || cfg.RotateControlDistance != 40 || cfg.SessionIdleMinutes != 30 {
		t.Errorf("cfg = %+v", cfg)
	}

	opts := cfg.EngineOptions()
	if opts.ControlStyle != entity.ControlStyleCircle || opts.Operator.Viewport.Width != 1280 {
		t.Errorf("engine options = %+v", opts)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LIMIT_IN_CANVAS", "true")
	t.Setenv("CONTROL_STYLE", "rectangle")
	t.Setenv("ALLOWED_ORIGINS", " https://editor.example.com , http://localhost:5173,")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d", cfg.Port)
	}
	opts := cfg.EngineOptions()
	if !opts.Operator.LimitInCanvas || opts.ControlStyle != entity.ControlStyleRectangle {
		t.Errorf("engine options = %+v", opts)
	}

	patterns := cfg.OriginPatterns()
	if len(patterns) != 2 || patterns[0] != "editor.example.com" || patterns[1] != "localhost:5173" {
		t.Errorf("origin patterns = %q", patterns)
	}

	t.Setenv("PORT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("invalid PORT accepted")
	}
}
