package battle

import (
	"fmt"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Default battlefield dimensions in offset cells.
const (
	DefaultFieldWidth  = 14
	DefaultFieldHeight = 8
)

// Field is the rectangular battlefield, measured in odd-r offset cells.
type Field struct {
	Width  int
	Height int
}

// DefaultField returns the 14x8 battlefield.
func DefaultField() Field {
	return Field{Width: DefaultFieldWidth, Height: DefaultFieldHeight}
}

// Validate reports whether both dimensions are positive.
func (f Field) Validate() error {
	if f.Width < 1 || f.Height < 1 {
		return fmt.Errorf("battle: field must be at least 1x1, got %dx%d", f.Width, f.Height)
	}
	return nil
}

// Contains reports whether c lies on the battlefield.
func (f Field) Contains(c hex.Coord) bool {
	o := hex.ToOffset(c)
	return o.Col >= 0 && o.Col < f.Width && o.Row >= 0 && o.Row < f.Height
}

// Cells returns every tile of the battlefield in row-major offset order.
//
// Postcondition: len(result) == Width*Height; every result satisfies Contains.
func (f Field) Cells() []hex.Coord {
	out := make([]hex.Coord, 0, f.Width*f.Height)
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			out = append(out, hex.FromOffset(hex.Offset{Col: col, Row: row}))
		}
	}
	return out
}

// DeployPosition returns the starting tile of the stack in slot of an army with
// slots slots. Attackers line up on the left edge, defenders on the right edge,
// spread down the field by slot index.
//
// Precondition: 0 <= slot < slots <= f.Height.
func (f Field) DeployPosition(side army.Side, slot, slots int) hex.Coord {
	col := 0
	if side == army.Defender {
		col = f.Width - 1
	}
	return hex.FromOffset(hex.Offset{Col: col, Row: slot * f.Height / slots})
}
