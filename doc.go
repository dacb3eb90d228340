// Package anima is the foundation of an embeddable game engine built on
// [Ebitengine].
//
// It provides the per-frame game loop, a windowed runner, TOML run
// configuration with hot reload, and the glue between raw device input and
// the semantic input events produced by package input. Math primitives live
// in package vmath, and an ECS adapter for [Donburi] lives in anima/ecs.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// a [Game] from its update tick:
//
//	cfg, err := anima.LoadConfig("game.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	g := anima.NewInputGame(input.NewEbitenSource(), cfg.Pipeline())
//	g.Handle = func(events []input.Event, dt time.Duration) bool {
//		// react to ButtonPressed, SelectableDragged, ...
//		return true
//	}
//	if err := anima.Run(g, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Headless games and tests use [Loop], which calls Update in a tight poll
// until it returns false.
//
// # Configuration
//
// [RunConfig] holds the window settings and the widget layout. Keys omitted
// from the file keep their [DefaultConfig] values. [WatchConfig] reloads the
// file on change; pass the watcher to Run with [WithConfigWatcher] and games
// implementing [Reloader] are handed every new config between frames.
//
// # Logging
//
// anima logs through [log/slog]. Output is discarded until a logger is set
// with [SetLogger]; debug level enables per-frame pipeline diagnostics.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package anima
