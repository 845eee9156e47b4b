package hex

// Direction names one of the six hex sides, ordered clockwise from TopRight.
// The zero value is TopRight; Invalid marks "no direction".
type Direction int

const (
	TopRight Direction = iota
	CenterRight
	BottomRight
	BottomLeft
	CenterLeft
	TopLeft
	Invalid
)

// directionCount is the number of real directions.
const directionCount = 6

// steps holds the axial delta for each direction on a pointy-top grid.
var steps = [directionCount]Coord{
	TopRight:    {Q: 1, R: -1},
	CenterRight: {Q: 1, R: 0},
	BottomRight: {Q: 0, R: 1},
	BottomLeft:  {Q: -1, R: 1},
	CenterLeft:  {Q: -1, R: 0},
	TopLeft:     {Q: 0, R: -1},
}

// Directions returns the six real directions in clockwise order.
func Directions() [directionCount]Direction {
	return [directionCount]Direction{TopRight, CenterRight, BottomRight, BottomLeft, CenterLeft, TopLeft}
}

// Valid reports whether d is one of the six real directions.
func (d Direction) Valid() bool {
	return d >= TopRight && d < Invalid
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case TopRight:
		return "top-right"
	case CenterRight:
		return "center-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	case CenterLeft:
		return "center-left"
	case TopLeft:
		return "top-left"
	default:
		return "invalid"
	}
}

// RotateClockwise turns d by steps sixths of a full turn. Negative steps turn
// counter-clockwise.
//
// Postcondition: Invalid stays Invalid; otherwise the result is Valid.
func RotateClockwise(d Direction, steps int) Direction {
	if !d.Valid() {
		return Invalid
	}
	n := (int(d) + steps) % directionCount
	if n < 0 {
		n += directionCount
	}
	return Direction(n)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return RotateClockwise(d, 3)
}

// Step returns the axial delta of d, or the zero Coord for Invalid.
func (d Direction) Step() Coord {
	if !d.Valid() {
		return Coord{}
	}
	return steps[d]
}

// OneStep returns the neighbour of c in direction d. When mirrored is true the
// step is negated, which lands on the neighbour in d.Opposite().
//
// Postcondition: OneStep(OneStep(c, d, false), d, true) == c; Invalid returns c.
func OneStep(c Coord, d Direction, mirrored bool) Coord {
	delta := d.Step()
	if mirrored {
		delta = delta.Scale(-1)
	}
	return c.Add(delta)
}

// Neighbors returns the six tiles adjacent to c in clockwise direction order.
func Neighbors(c Coord) [directionCount]Coord {
	var out [directionCount]Coord
	for i, d := range Directions() {
		out[i] = OneStep(c, d, false)
	}
	return out
}

// DirectionTo returns the direction whose neighbour of from lies closest to to.
// Ties resolve to the earliest direction in clockwise order.
//
// Postcondition: returns Invalid iff from == to.
func DirectionTo(from, to Coord) Direction {
	if from == to {
		return Invalid
	}
	best, bestDist := Invalid, 0
	for _, d := range Directions() {
		dist := Distance(OneStep(from, d, false), to)
		if best == Invalid || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
