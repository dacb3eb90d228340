package anima

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawer is implemented by games that render. Games that do not implement it
// get a blank window.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// Reloader is implemented by games that rebuild state from a reloaded
// config.
type Reloader interface {
	Reload(cfg RunConfig)
}

// RunOption configures Run.
type RunOption func(*runner)

// WithConfigWatcher makes Run apply configs delivered by w between frames.
// The window settings are updated and, if the game implements Reloader, the
// game is handed the new config.
func WithConfigWatcher(w *ConfigWatcher) RunOption {
	return func(r *runner) { r.watcher = w }
}

// Run opens an Ebitengine window described by cfg and drives game from the
// window's update tick. It blocks until the game returns false from Update,
// the window is closed, or Ebitengine reports an error. A game that stops on
// its own is not an error.
func Run(game Game, cfg RunConfig, opts ...RunOption) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := newRunner(game, cfg)
	for _, opt := range opts {
		opt(r)
	}
	r.applyWindow(cfg)

	Logger().Info("anima: run", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)
	err := ebiten.RunGame(r)
	if errors.Is(err, ebiten.Termination) {
		Logger().Info("anima: game stopped", "frames", r.frames)
		return nil
	}
	return err
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	game    Game
	cfg     RunConfig
	watcher *ConfigWatcher

	now         func() time.Time
	applyWindow func(RunConfig)
	fps         *fpsOverlay

	last   time.Time
	frames uint64
}

func newRunner(game Game, cfg RunConfig) *runner {
	return &runner{
		game:        game,
		cfg:         cfg,
		now:         time.Now,
		applyWindow: applyWindowConfig,
		fps:         newFPSOverlay(),
	}
}

func applyWindowConfig(cfg RunConfig) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	r.drainWatcher()

	t := r.now()
	if r.last.IsZero() {
		r.last = t
	}
	dt := t.Sub(r.last)
	r.last = t

	if r.cfg.ShowFPS {
		r.fps.update(dt)
	}

	r.frames++
	if !r.game.Update(dt) {
		return ebiten.Termination
	}
	return nil
}

func (r *runner) drainWatcher() {
	if r.watcher == nil {
		return
	}
	cfg, ok := r.watcher.Poll()
	if !ok {
		return
	}
	r.cfg = cfg
	r.applyWindow(cfg)
	if rl, ok := r.game.(Reloader); ok {
		rl.Reload(cfg)
	}
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	if d, ok := r.game.(Drawer); ok {
		d.Draw(screen)
	}
	if r.cfg.ShowFPS {
		r.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen matches the configured
// window size.
func (r *runner) Layout(_, _ int) (int, int) {
	return r.cfg.Width, r.cfg.Height
}
