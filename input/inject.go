package input

// Injector queues synthetic raw batches, one per frame. It implements Source
// so injected input can replace or be merged with a real device; each Poll
// consumes exactly one queued batch.
type Injector struct {
	queue [][]Event
}

// NewInjector returns an empty Injector.
func NewInjector() *Injector {
	return &Injector{}
}

func (j *Injector) push(events ...Event) {
	j.queue = append(j.queue, events)
}

// InjectMove queues a pointer move to (x, y). Held buttons stay held, so
// moves between InjectPress and InjectRelease simulate a drag.
func (j *Injector) InjectMove(x, y int) {
	j.push(MouseMoved(x, y))
}

// InjectPress queues a move to (x, y) followed by a press of button.
func (j *Injector) InjectPress(x, y int, button MouseButton) {
	j.push(MouseMoved(x, y), MouseInput(Pressed, button))
}

// InjectRelease queues a move to (x, y) followed by a release of button.
func (j *Injector) InjectRelease(x, y int, button MouseButton) {
	j.push(MouseMoved(x, y), MouseInput(Released, button))
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (j *Injector) InjectClick(x, y int, button MouseButton) {
	j.InjectPress(x, y, button)
	j.InjectRelease(x, y, button)
}

// InjectDrag queues a left-button drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes frames frames, at least two.
func (j *Injector) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	j.InjectPress(fromX, fromY, MouseButtonLeft)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := float64(fromX) + float64(toX-fromX)*t
		y := float64(fromY) + float64(toY-fromY)*t
		j.InjectMove(int(x), int(y))
	}
	j.InjectRelease(toX, toY, MouseButtonLeft)
}

// InjectTouch queues a single raw touch event.
func (j *Injector) InjectTouch(phase TouchPhase, x, y float64, id uint64) {
	j.push(TouchEvent(phase, x, y, id))
}

// InjectBatch queues an arbitrary batch as one frame.
func (j *Injector) InjectBatch(events ...Event) {
	j.push(append([]Event(nil), events...)...)
}

// Len returns the number of frames still queued.
func (j *Injector) Len() int {
	return len(j.queue)
}

// Poll implements Source. It returns nil when nothing is queued.
func (j *Injector) Poll() []Event {
	if len(j.queue) == 0 {
		return nil
	}
	batch := j.queue[0]
	copy(j.queue, j.queue[1:])
	j.queue[len(j.queue)-1] = nil
	j.queue = j.queue[:len(j.queue)-1]
	return batch
}
