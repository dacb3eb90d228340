package anima

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/anima/input"
)

// RunConfig holds the window settings and the widget layout of a game. It is
// usually loaded from a TOML file:
//
//	title = "anima"
//	width = 640
//	height = 480
//	tps = 60
//	show_fps = false
//	log_level = "info"
//
//	[[buttons]]
//	id = 1
//	x = 40
//	y = 40
//	width = 20
//	height = 20
//
//	[[areas]]
//	id = 2
//	x = 100
//	y = 100
//	width = 200
//	height = 120
//	special_button = "right"
//	special_touch_time = "500ms"
type RunConfig struct {
	Title    string `toml:"title"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	TPS      int    `toml:"tps"`
	ShowFPS  bool   `toml:"show_fps"`
	LogLevel string `toml:"log_level"`

	Buttons []ButtonConfig `toml:"buttons"`
	Areas   []AreaConfig   `toml:"areas"`
}

// ButtonConfig describes an input.Button.
type ButtonConfig struct {
	ID     uint32 `toml:"id"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// AreaConfig describes an input.SelectableArea. SpecialButton enables the
// special channel.
type AreaConfig struct {
	ID               uint32             `toml:"id"`
	X                int                `toml:"x"`
	Y                int                `toml:"y"`
	Width            int                `toml:"width"`
	Height           int                `toml:"height"`
	SpecialButton    *input.MouseButton `toml:"special_button"`
	SpecialTouchTime time.Duration      `toml:"special_touch_time"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("anima: invalid config")

// DefaultConfig returns the settings used for keys a config file omits.
func DefaultConfig() RunConfig {
	return RunConfig{
		Title:    "anima",
		Width:    640,
		Height:   480,
		TPS:      60,
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML config file on top of DefaultConfig.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("anima: load config %s: %w", path, err)
	}
	return finishConfig(cfg, md)
}

// ParseConfig decodes TOML data on top of DefaultConfig.
func ParseConfig(data []byte) (RunConfig, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("anima: parse config: %w", err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg RunConfig, md toml.MetaData) (RunConfig, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		Logger().Warn("anima: ignoring unknown config keys", "keys", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[uint32]string)
	claim := func(kind string, id uint32, w, h int) error {
		if w < 0 || h < 0 {
			return fmt.Errorf("%w: %s %d has negative size %dx%d", ErrInvalidConfig, kind, id, w, h)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s %d reuses the id of a %s", ErrInvalidConfig, kind, id, prev)
		}
		seen[id] = kind
		return nil
	}
	for _, b := range c.Buttons {
		if err := claim("button", b.ID, b.Width, b.Height); err != nil {
			return err
		}
	}
	for _, a := range c.Areas {
		if err := claim("area", a.ID, a.Width, a.Height); err != nil {
			return err
		}
		if a.SpecialTouchTime < 0 {
			return fmt.Errorf("%w: area %d has negative special_touch_time", ErrInvalidConfig, a.ID)
		}
	}
	return nil
}

// Level parses LogLevel. An empty LogLevel means info.
func (c RunConfig) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c RunConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Pipeline builds a Cursor followed by every configured Button and then
// every configured SelectableArea, in file order.
func (c RunConfig) Pipeline() *input.Pipeline {
	p := input.NewPipeline(input.NewCursor())
	for _, b := range c.Buttons {
		p.Add(input.NewButton(b.ID, b.X, b.Y, b.Width, b.Height))
	}
	for _, a := range c.Areas {
		var special *input.SpecialSelect
		if a.SpecialButton != nil {
			special = &input.SpecialSelect{Button: *a.SpecialButton, TouchTime: a.SpecialTouchTime}
		}
		p.Add(input.NewSelectableArea(a.ID, a.X, a.Y, a.Width, a.Height, special))
	}
	return p
}
