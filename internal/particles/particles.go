// Package particles animates the dotted backdrop behind the hero section.
package particles

import (
	"math/rand"
	"strings"
	"time"
)

var glyphs = []rune{'·', '∙', '•', '°'}

// Particle is one floating dot in unit coordinates.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Glyph  rune
}

// Field holds a set of drifting particles.
type Field struct {
	rnd       *rand.Rand
	particles []Particle
}

// New returns a field of count particles seeded with the current time.
func New(count int) *Field {
	return NewSeeded(count, time.Now().UnixNano())
}

// NewSeeded returns a deterministic field.
func NewSeeded(count int, seed int64) *Field {
	f := &Field{rnd: rand.New(rand.NewSource(seed))}
	f.particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, f.spawn(f.rnd.Float64()))
	}
	return f
}

func (f *Field) spawn(y float64) Particle {
	return Particle{
		X:     f.rnd.Float64(),
		Y:     y,
		DX:    (f.rnd.Float64() - 0.5) * 0.004,
		DY:    -(0.002 + f.rnd.Float64()*0.006),
		Glyph: glyphs[f.rnd.Intn(len(glyphs))],
	}
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Step advances every particle by one frame. Particles leaving the top
// respawn at the bottom; horizontal drift wraps.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.DX
		p.Y += p.DY
		if p.X < 0 {
			p.X++
		}
		if p.X >= 1 {
			p.X--
		}
		if p.Y < 0 {
			*p = f.spawn(1 - f.rnd.Float64()*0.05)
		}
	}
}

// Render draws the field into a width x height grid of runes, blank where
// no particle sits.
func (f *Field) Render(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}
	for _, p := range f.particles {
		x := int(p.X * float64(width))
		y := int(p.Y * float64(height))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		grid[y][x] = p.Glyph
	}
	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}
