// Package patterns plans mouse wiggles: a small shape traced around a point
// with uneven pacing, ending where it started.
package patterns

import (
	"math"
	"time"

	"github.com/stigoleg/keep-busy/internal/random"
)

// Shape is the outline a wiggle follows.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeZigZag
	ShapeWalk
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeZigZag:
		return "zigzag"
	case ShapeWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// Wiggle size and pacing.
const (
	minSizePx = 5.0
	maxSizePx = 20.0
	minPoints = 4
	maxPoints = 11

	moveMinMs   = 5
	moveMaxMs   = 120
	returnMinMs = 10
	returnMaxMs = 50

	// Hops longer than longHopPx are taken a little slower.
	longHopPx       = 10.0
	longHopSlowdown = 1.2
	minSpeed        = 0.7
	maxSpeed        = 1.3

	hesitateChance = 0.12
	hesitateMinMs  = 150
	hesitateMaxMs  = 400

	// A detour point is sometimes dropped between two far-apart corners.
	detourChance = 0.35
	detourMinPx  = 8.0
	detourAt     = 0.4
	detourJitter = 1.5
)

// offset is a position relative to the wiggle origin.
type offset struct {
	dx, dy float64
}

func (o offset) distanceTo(p offset) float64 {
	return math.Hypot(p.dx-o.dx, p.dy-o.dy)
}

// Step is one absolute pointer position and the delay to wait after reaching it.
type Step struct {
	X, Y  int
	Delay time.Duration
}

// Generator plans wiggles from a shared random source.
type Generator struct {
	rnd *random.Rand
}

// NewGenerator returns a Generator drawing from rnd.
func NewGenerator(rnd *random.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Wiggle plans a random shape around (x, y).
func (g *Generator) Wiggle(x, y int) []Step {
	return g.Trace(Shape(g.rnd.Int(0, int(shapeCount)-1)), x, y)
}

// Trace plans shape around (x, y). The last step is always (x, y).
func (g *Generator) Trace(shape Shape, x, y int) []Step {
	size := minSizePx + g.float()*(maxSizePx-minSizePx)
	outline := g.outline(shape, g.rnd.Int(minPoints, maxPoints), size)

	at := func(o offset) (int, int) {
		return x + int(math.Round(o.dx)), y + int(math.Round(o.dy))
	}

	steps := make([]Step, 0, 2*len(outline)+1)
	for i, o := range outline {
		next := offset{}
		if i+1 < len(outline) {
			next = outline[i+1]
		}
		hop := o.distanceTo(next)

		delay := g.moveDelay(hop)
		if g.rnd.Chance(hesitateChance) {
			delay += g.rnd.Duration(hesitateMinMs, hesitateMaxMs)
		}
		sx, sy := at(o)
		steps = append(steps, Step{X: sx, Y: sy, Delay: delay})

		if i+1 < len(outline) && hop > detourMinPx && g.rnd.Chance(detourChance) {
			d := offset{
				dx: o.dx + (next.dx-o.dx)*detourAt + (g.float()-0.5)*detourJitter,
				dy: o.dy + (next.dy-o.dy)*detourAt + (g.float()-0.5)*detourJitter,
			}
			dx, dy := at(d)
			steps = append(steps, Step{X: dx, Y: dy, Delay: g.scale(delay, minSpeed-0.1, maxSpeed+0.1)})
		}
	}

	return append(steps, Step{X: x, Y: y, Delay: g.rnd.Duration(returnMinMs, returnMaxMs)})
}

func (g *Generator) outline(shape Shape, n int, size float64) []offset {
	switch shape {
	case ShapeCircle:
		return circle(n, size)
	case ShapeSquare:
		return square(n, size)
	case ShapeZigZag:
		return zigzag(n, size)
	default:
		return g.walk(n, size)
	}
}

func circle(n int, r float64) []offset {
	out := make([]offset, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = offset{dx: r * math.Cos(a), dy: r * math.Sin(a)}
	}
	return out
}

// square walks the perimeter clockwise from the top-left corner with
// roughly sqrt(n) points per side.
func square(n int, size float64) []offset {
	side := max(int(math.Sqrt(float64(n))), 2)
	pos := func(i int) float64 { return size * float64(i) / float64(side-1) }

	out := make([]offset, 0, 4*(side-1))
	for i := 0; i < side; i++ {
		out = append(out, offset{dx: pos(i)})
	}
	for i := 1; i < side; i++ {
		out = append(out, offset{dx: size, dy: pos(i)})
	}
	for i := side - 2; i >= 0; i-- {
		out = append(out, offset{dx: pos(i), dy: size})
	}
	for i := side - 2; i > 0; i-- {
		out = append(out, offset{dy: pos(i)})
	}
	return out
}

func zigzag(n int, size float64) []offset {
	out := make([]offset, n)
	for i := range out {
		dy := size / 2
		if i%2 == 0 {
			dy = -dy
		}
		out[i] = offset{dx: size * float64(i) / float64(n-1), dy: dy}
	}
	return out
}

func (g *Generator) walk(n int, size float64) []offset {
	out := make([]offset, n)
	stride := size / 3
	for i := 1; i < n; i++ {
		a := g.float() * 2 * math.Pi
		out[i] = offset{
			dx: out[i-1].dx + stride*math.Cos(a),
			dy: out[i-1].dy + stride*math.Sin(a),
		}
	}
	return out
}

// moveDelay paces a hop of dist pixels.
func (g *Generator) moveDelay(dist float64) time.Duration {
	lo, hi := minSpeed, maxSpeed
	if dist > longHopPx {
		lo, hi = lo*longHopSlowdown, hi*longHopSlowdown
	}
	return g.scale(g.rnd.Duration(moveMinMs, moveMaxMs), lo, hi)
}

func (g *Generator) scale(d time.Duration, lo, hi float64) time.Duration {
	return time.Duration(float64(d) * (lo + g.float()*(hi-lo)))
}

func (g *Generator) float() float64 {
	return g.rnd.Source().Float64()
}
