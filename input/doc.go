// Package input converts raw pointer and touch events into semantic gesture
// events through a chain of stateful filters.
//
// Each frame a [Source] yields a batch of raw events ([MouseMoved],
// [MouseInput], [TouchEvent]). A [Pipeline] hands the batch to each
// [Intermediate] stage in order; a stage consumes the events it understands,
// inserts the intermediate events it synthesizes, and passes everything else
// through unchanged.
//
// The stock stages are:
//
//   - [Cursor] tracks pointer position and held buttons and emits
//     CursorReleased on release plus one level-triggered CursorPressed per
//     held button at the end of every batch.
//   - [Button] turns left-button cursor events and touches inside a
//     rectangle into ButtonPressed, ButtonReleased and ButtonCanceled.
//   - [SelectableArea] reports press, drag and release points inside a
//     rectangle on a primary (left) channel and an optional special channel.
//
// A Cursor must run before the Buttons and SelectableAreas that depend on
// its events:
//
//	p := input.NewPipeline(
//		input.NewCursor(),
//		input.NewButton(1, 40, 40, 20, 20),
//		input.NewSelectableArea(2, 100, 100, 200, 120,
//			&input.SpecialSelect{Button: input.MouseButtonRight}),
//	)
//	events := p.Process(src.Poll(), dt)
//
// Intermediate events of the final batch can be routed to callbacks with a
// [Dispatcher] or to an ECS world through an [EventStore].
//
// [Injector] and [TestRunner] feed scripted input through the same
// pipeline for automated tests.
package input
