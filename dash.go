package curve

import (
	"gonum.org/v1/plot/vg"
)

// Dash ids with a special meaning. Id 0 is the "no dash" sentinel and is
// handled by the callers, it is not part of the registry. Id 1 is the solid
// line with an empty pattern.
const (
	NoDash        = 0
	SolidDash     = 1
	AxisBarDash   = 9
	LegendBoxDash = 10
	NumDashes     = 11
)

// dashTable holds the on/off lengths in points, indexed by dash id.
var dashTable = [NumDashes][]float64{
	nil,
	{},
	{8, 4},
	{4, 4},
	{2, 2},
	{8, 4, 2, 4},
	{12, 6},
	{12, 4, 4, 4},
	{16, 4, 4, 4, 4, 4},
	{2}, // AxisBarDash
	{6}, // LegendBoxDash
}

// PatternFor returns the dash segments registered for id and their count.
// Only ids 1 to NumDashes-1 are registered.
func PatternFor(id int) ([]float64, int, error) {
	if id <= NoDash || id >= NumDashes {
		return nil, 0, ErrInvalidDashId
	}
	seg := append([]float64(nil), dashTable[id]...)
	return seg, len(seg), nil
}

// Dashes converts dash id into a dash array usable in a draw.LineStyle.
// A single length pattern is drawn with equal on and off lengths.
// The sentinel, the solid pattern and unknown ids yield a solid line.
func Dashes(id int) []vg.Length {
	seg, n, err := PatternFor(id)
	if err != nil || n == 0 {
		return nil
	}
	if n == 1 {
		seg = append(seg, seg[0])
	}
	d := make([]vg.Length, len(seg))
	for i, s := range seg {
		d[i] = vg.Length(s)
	}
	return d
}
