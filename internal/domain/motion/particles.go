package motion

import "github.com/ericfisherdev/liquorlocker/internal/domain/model"

// Particle field tuning.
const (
	// DefaultParticleCount is the number of particles spawned per field.
	DefaultParticleCount = 60
	// WrapMargin is how far past an edge a particle travels before it wraps.
	WrapMargin = 10.0

	particleMinSize  = 1.0
	particleMaxSize  = 4.0
	particleMinSpeed = 0.2
	particleMaxSpeed = 0.7
	particleMaxDrift = 0.1
	particleMinAlpha = 0.15
	particleMaxAlpha = 0.30
)

// Field is a set of particles drifting upward across a surface.
type Field struct {
	Width     float64
	Height    float64
	Particles []model.Particle

	rng   Rand
	count int
}

// NewField creates an unsized field that spawns count particles on Resize.
// A non-positive count selects DefaultParticleCount.
func NewField(rng Rand, count int) *Field {
	if count <= 0 {
		count = DefaultParticleCount
	}
	return &Field{rng: rng, count: count}
}

// Resize sets the field dimensions and regenerates every particle. No state
// carries over from before the resize.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height

	f.Particles = make([]model.Particle, f.count)
	for i := range f.Particles {
		f.Particles[i] = model.Particle{
			Position: model.Point{
				X: f.rng.Float64() * width,
				Y: f.rng.Float64() * height,
			},
			Size:   uniform(f.rng, particleMinSize, particleMaxSize),
			SpeedY: uniform(f.rng, particleMinSpeed, particleMaxSpeed),
			DriftX: uniform(f.rng, -particleMaxDrift, particleMaxDrift),
			Alpha:  uniform(f.rng, particleMinAlpha, particleMaxAlpha),
		}
	}
}

// Step advances every particle by one frame. A particle leaving through the
// top re-enters at the bottom at a new random x; one leaving a side re-enters
// on the opposite side. Positions stay within [-WrapMargin, dim+WrapMargin].
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Position.Y -= p.SpeedY
		p.Position.X += p.DriftX

		if p.Position.Y < -WrapMargin {
			p.Position.Y = f.Height + WrapMargin
			p.Position.X = f.rng.Float64() * f.Width
		}
		if p.Position.X < -WrapMargin {
			p.Position.X = f.Width + WrapMargin
		}
		if p.Position.X > f.Width+WrapMargin {
			p.Position.X = -WrapMargin
		}
	}
}

// InBounds reports whether every particle lies within the wrap margin.
func (f *Field) InBounds() bool {
	for _, p := range f.Particles {
		if p.Position.X < -WrapMargin || p.Position.X > f.Width+WrapMargin {
			return false
		}
		if p.Position.Y < -WrapMargin || p.Position.Y > f.Height+WrapMargin {
			return false
		}
	}
	return true
}
