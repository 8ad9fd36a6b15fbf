package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/inamate/inamate/editor-go/internal/engine"
	"github.com/inamate/inamate/editor-go/internal/entity"
	"github.com/inamate/inamate/editor-go/internal/operator"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	JWTSecret      string `envconfig:"JWT_SECRET" default:"dev-secret-change-in-production"`
	TokenTTLHours  int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	AssetDir       string `envconfig:"ASSET_DIR" default:"./data/assets"`

	// SessionIdleMinutes is how long a session without clients is kept.
	SessionIdleMinutes int `envconfig:"SESSION_IDLE_MINUTES" default:"30"`

	// Editor defaults for new sessions.
	ControlSize           float64 `envconfig:"CONTROL_SIZE" default:"20"`
	RotateControlDistance float64 `envconfig:"ROTATE_CONTROL_DISTANCE" default:"40"`
	ControlStyle          string  `envconfig:"CONTROL_STYLE" default:"circle"`
	LimitInCanvas         bool    `envconfig:"LIMIT_IN_CANVAS" default:"false"`
	LockGroupResize       bool    `envconfig:"LOCK_GROUP_RESIZE" default:"false"`
	TouchBoxSelect        bool    `envconfig:"TOUCH_BOX_SELECT" default:"false"`
	ViewportWidth         float64 `envconfig:"VIEWPORT_WIDTH" default:"1280"`
	ViewportHeight        float64 `envconfig:"VIEWPORT_HEIGHT" default:"720"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into full origins, e.g. "http://localhost:5173".
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// OriginPatterns returns the origins as host patterns for websocket.Accept.
func (c *Config) OriginPatterns() []string {
	origins := c.Origins()
	out := make([]string, len(origins))
	for i, o := range origins {
		o = strings.TrimPrefix(o, "https://")
		out[i] = strings.TrimPrefix(o, "http://")
	}
	return out
}

// EngineOptions returns the editor settings for new sessions.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		Operator: operator.Options{
			LimitInCanvas:   c.LimitInCanvas,
			LockGroupResize: c.LockGroupResize,
			TouchBoxSelect:  c.TouchBoxSelect,
			Viewport:        operator.Viewport{Width: c.ViewportWidth, Height: c.ViewportHeight},
		},
		ControlSize:           c.ControlSize,
		RotateControlDistance: c.RotateControlDistance,
		ControlStyle:          entity.ControlStyle(c.ControlStyle),
	}
}
