package motion

import "github.com/ericfisherdev/liquorlocker/internal/domain/model"

// RendererState is the lifecycle state of a mounted renderer.
type RendererState int

const (
	StateUninitialized RendererState = iota
	StateSized
	StateAnimating
	StatePaused
	StateTornDown
)

// String returns a human-readable name for the state.
func (s RendererState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSized:
		return "sized"
	case StateAnimating:
		return "animating"
	case StatePaused:
		return "paused"
	case StateTornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// ParticleRenderer drives a Field on a Host. The loop only runs while the
// host reports itself visible, so an off-screen instance schedules no frames.
type ParticleRenderer struct {
	mode    SurfaceMode
	field   *Field
	surface Surface
	loop    *FrameLoop
	draw    func(Surface, []model.Particle)

	sized   bool
	visible bool
	state   RendererState
	unsubs  []func()
}

// MountParticles attaches a particle renderer to host. draw is called after
// every step and may be nil. In SurfaceGlobal mode the field tracks
// host.Viewport, in SurfaceSection mode host.Bounds.
func MountParticles(host *Host, mode SurfaceMode, rng Rand, draw func(Surface, []model.Particle)) *ParticleRenderer {
	r := &ParticleRenderer{
		mode:  mode,
		field: NewField(rng, DefaultParticleCount),
		draw:  draw,
	}
	r.loop = NewFrameLoop(host.Clock, r.tick)

	sizeSource := host.Viewport
	if mode == SurfaceSection {
		sizeSource = host.Bounds
	}

	r.unsubs = append(r.unsubs,
		sizeSource.Subscribe(r.resize),
		host.Visibility.Subscribe(r.setVisible),
	)
	return r
}

// Unmount cancels the pending frame and releases every subscription.
func (r *ParticleRenderer) Unmount() {
	if r.state == StateTornDown {
		return
	}
	r.loop.Stop()
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
	r.state = StateTornDown
}

// State returns the renderer's lifecycle state.
func (r *ParticleRenderer) State() RendererState {
	return r.state
}

// Field returns the underlying particle field.
func (r *ParticleRenderer) Field() *Field {
	return r.field
}

// Surface returns the current drawing surface.
func (r *ParticleRenderer) Surface() Surface {
	return r.surface
}

// Mode returns what the surface is sized against.
func (r *ParticleRenderer) Mode() SurfaceMode {
	return r.mode
}

// Frames returns how many update steps have run.
func (r *ParticleRenderer) Frames() int {
	return r.loop.Ticks()
}

func (r *ParticleRenderer) resize(s Size) {
	if r.state == StateTornDown {
		return
	}
	r.surface = NewSurface(s)
	r.field.Resize(r.surface.Width, r.surface.Height)
	r.sized = true
	r.sync()
}

func (r *ParticleRenderer) setVisible(v bool) {
	if r.state == StateTornDown {
		return
	}
	r.visible = v
	r.sync()
}

// sync reconciles the frame loop with the sized and visible flags.
func (r *ParticleRenderer) sync() {
	switch {
	case !r.sized:
		r.state = StateUninitialized
	case r.visible:
		r.loop.Start()
		r.state = StateAnimating
	case r.loop.Running():
		r.loop.Stop()
		r.state = StatePaused
	case r.state == StateAnimating || r.state == StatePaused:
		r.state = StatePaused
	default:
		r.state = StateSized
	}
}

func (r *ParticleRenderer) tick() {
	r.field.Step()
	if r.draw != nil {
		r.draw(r.surface, r.field.Particles)
	}
}

// ParallaxRenderer re-projects hero layers every frame from pointer and
// scroll input.
type ParallaxRenderer struct {
	layers    []model.ParallaxLayer
	projector Projector
	viewport  Size
	loop      *FrameLoop
	draw      func([]model.Transform)
	last      []model.Transform
	torn      bool
	unsubs    []func()
}

// MountParallax attaches a parallax renderer for layers to host and starts
// its frame loop. draw receives the transforms of every frame and may be nil.
// The renderer owns layers from here on.
func MountParallax(host *Host, layers []model.ParallaxLayer, draw func([]model.Transform)) *ParallaxRenderer {
	r := &ParallaxRenderer{
		layers: layers,
		draw:   draw,
		last:   make([]model.Transform, len(layers)),
	}
	r.loop = NewFrameLoop(host.Clock, r.tick)

	r.unsubs = append(r.unsubs,
		host.Viewport.Subscribe(r.resize),
		host.Pointer.Subscribe(r.pointer),
		host.Scroll.Subscribe(r.scroll),
	)
	r.loop.Start()
	return r
}

// Unmount cancels the pending frame and releases every subscription.
func (r *ParallaxRenderer) Unmount() {
	if r.torn {
		return
	}
	r.loop.Stop()
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
	r.torn = true
}

// Layers returns the renderer's layers.
func (r *ParallaxRenderer) Layers() []model.ParallaxLayer {
	return r.layers
}

// Transforms returns the transforms computed on the most recent frame.
func (r *ParallaxRenderer) Transforms() []model.Transform {
	return r.last
}

// Running reports whether the renderer is still requesting frames.
func (r *ParallaxRenderer) Running() bool {
	return r.loop.Running()
}

func (r *ParallaxRenderer) resize(vp Size) {
	r.viewport = vp
	Rebase(r.layers, vp)
}

func (r *ParallaxRenderer) pointer(client model.Point) {
	r.projector.SetPointer(PointerOffset(client, r.viewport))
}

func (r *ParallaxRenderer) scroll(sectionTop float64) {
	r.projector.SetScroll(SectionScroll(sectionTop, r.viewport.Height))
}

func (r *ParallaxRenderer) tick() {
	r.projector.Advance()
	for i, l := range r.layers {
		r.last[i] = r.projector.Project(l)
	}
	if r.draw != nil {
		r.draw(r.last)
	}
}
