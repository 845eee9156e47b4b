// Package hex implements the hex-grid coordinate algebra used by the battlefield.
//
// Positions are axial coordinates (Q, R) on a pointy-top grid. Cube coordinates
// give exact integer distances and rounding; offset coordinates index the
// rectangular battlefield for bounds checks and cell scans.
package hex

import (
	"fmt"
	"math"
)

// Coord is an axial hex coordinate. Only integer coordinates denote tiles.
type Coord struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Q: c.Q - o.Q, R: c.R - o.R}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k}
}

// String returns "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Cube is the three-component form of a Coord.
//
// Invariant: X + Y + Z == 0.
type Cube struct {
	X, Y, Z int
}

// FractionalCube is a cube coordinate with real components, produced by
// interpolation or pixel conversion. It must be rounded before use as a tile.
type FractionalCube struct {
	X, Y, Z float64
}

// Offset is a rectangular "odd-r" grid position: odd rows are shifted half a
// hex to the right.
type Offset struct {
	Col int
	Row int
}

// ToCube converts an axial coordinate to cube form.
//
// Postcondition: result.X + result.Y + result.Z == 0.
func ToCube(c Coord) Cube {
	return Cube{X: c.Q, Y: -c.Q - c.R, Z: c.R}
}

// FromCube converts a cube coordinate back to axial form.
//
// Precondition: cu.X + cu.Y + cu.Z == 0.
func FromCube(cu Cube) Coord {
	return Coord{Q: cu.X, R: cu.Z}
}

// ToOffset converts an axial coordinate to odd-r offset form.
func ToOffset(c Coord) Offset {
	return Offset{Col: c.Q + (c.R-(c.R&1))/2, Row: c.R}
}

// FromOffset converts an odd-r offset position to axial form.
//
// Postcondition: ToOffset(FromOffset(o)) == o.
func FromOffset(o Offset) Coord {
	return Coord{Q: o.Col - (o.Row-(o.Row&1))/2, R: o.Row}
}

// Distance returns the number of steps between a and b.
//
// Postcondition: result >= 0; Distance(a, b) == Distance(b, a); result == 0 iff a == b.
func Distance(a, b Coord) int {
	ca, cb := ToCube(a), ToCube(b)
	return (abs(ca.X-cb.X) + abs(ca.Y-cb.Y) + abs(ca.Z-cb.Z)) / 2
}

// RoundCube snaps a fractional cube coordinate to the nearest valid hex.
//
// The axis with the largest rounding error is recomputed from the other two,
// so the result always satisfies X + Y + Z == 0.
func RoundCube(f FractionalCube) Cube {
	rx := math.Round(f.X)
	ry := math.Round(f.Y)
	rz := math.Round(f.Z)

	dx := math.Abs(rx - f.X)
	dy := math.Abs(ry - f.Y)
	dz := math.Abs(rz - f.Z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// Round snaps fractional axial components to the nearest tile.
func Round(q, r float64) Coord {
	return FromCube(RoundCube(FractionalCube{X: q, Y: -q - r, Z: r}))
}

// Lerp linearly interpolates between a and b in cube space.
//
// Postcondition: the result is unrounded; callers pass it through RoundCube.
func Lerp(a, b Coord, t float64) FractionalCube {
	ca, cb := ToCube(a), ToCube(b)
	return FractionalCube{
		X: float64(ca.X) + float64(cb.X-ca.X)*t,
		Y: float64(ca.Y) + float64(cb.Y-ca.Y)*t,
		Z: float64(ca.Z) + float64(cb.Z-ca.Z)*t,
	}
}

// Line returns the tiles on the straight line from a to b, both ends included.
//
// Postcondition: len(result) == Distance(a, b) + 1; consecutive tiles are adjacent.
func Line(a, b Coord) []Coord {
	n := Distance(a, b)
	out := make([]Coord, 0, n+1)
	if n == 0 {
		return append(out, a)
	}
	// Nudge off the exact edge between two hexes so ties round consistently.
	const eps = 1e-6
	for i := 0; i <= n; i++ {
		f := Lerp(a, b, float64(i)/float64(n))
		f.X += eps
		f.Y += eps
		f.Z -= 2 * eps
		out = append(out, FromCube(RoundCube(f)))
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
