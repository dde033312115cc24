package motion

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// Clock schedules callbacks for the next display refresh, in the manner of
// requestAnimationFrame. A zero FrameHandle is never returned.
type Clock interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// ManualClock is a Clock advanced explicitly by its owner. Each Advance runs
// the callbacks that were pending when it was called; callbacks requested
// during a frame run on the following Advance.
type ManualClock struct {
	next    FrameHandle
	pending map[FrameHandle]func()
	order   []FrameHandle
	frames  int
}

// NewManualClock creates a ManualClock with nothing scheduled.
func NewManualClock() *ManualClock {
	return &ManualClock{pending: make(map[FrameHandle]func())}
}

// RequestFrame schedules fn for the next Advance.
func (c *ManualClock) RequestFrame(fn func()) FrameHandle {
	c.next++
	c.pending[c.next] = fn
	c.order = append(c.order, c.next)
	return c.next
}

// CancelFrame removes a pending callback. Unknown handles are ignored.
func (c *ManualClock) CancelFrame(h FrameHandle) {
	delete(c.pending, h)
}

// Advance runs one display refresh and returns how many callbacks ran.
func (c *ManualClock) Advance() int {
	batch := c.order
	c.order = nil
	c.frames++

	ran := 0
	for _, h := range batch {
		fn, ok := c.pending[h]
		if !ok {
			continue
		}
		delete(c.pending, h)
		fn()
		ran++
	}
	return ran
}

// AdvanceN runs n refreshes and returns the total number of callbacks run.
func (c *ManualClock) AdvanceN(n int) int {
	total := 0
	for range n {
		total += c.Advance()
	}
	return total
}

// Pending returns the number of scheduled callbacks.
func (c *ManualClock) Pending() int {
	return len(c.pending)
}

// Frames returns the number of refreshes run so far.
func (c *ManualClock) Frames() int {
	return c.frames
}

// FrameLoop calls tick once per frame while started. At most one frame
// request is outstanding at any time.
type FrameLoop struct {
	clock  Clock
	tick   func()
	handle FrameHandle
	active bool
	ticks  int
}

// NewFrameLoop creates a stopped loop.
func NewFrameLoop(clock Clock, tick func()) *FrameLoop {
	return &FrameLoop{clock: clock, tick: tick}
}

// Start begins requesting frames. Starting a running loop is a no-op.
func (l *FrameLoop) Start() {
	l.active = true
	if l.handle == 0 {
		l.handle = l.clock.RequestFrame(l.frame)
	}
}

// Stop cancels the pending frame request.
func (l *FrameLoop) Stop() {
	l.active = false
	if l.handle != 0 {
		l.clock.CancelFrame(l.handle)
		l.handle = 0
	}
}

// Running reports whether the loop is requesting frames.
func (l *FrameLoop) Running() bool {
	return l.active
}

// Ticks returns how many frames have run.
func (l *FrameLoop) Ticks() int {
	return l.ticks
}

func (l *FrameLoop) frame() {
	l.handle = 0
	if !l.active {
		return
	}

	l.tick()
	l.ticks++

	if l.active && l.handle == 0 {
		l.handle = l.clock.RequestFrame(l.frame)
	}
}
