package curve

import (
	"errors"
	"testing"
)

func TestPatternFor(t *testing.T) {
	for id := 1; id < NumDashes; id++ {
		seg, n, err := PatternFor(id)
		if err != nil {
			t.Errorf("PatternFor(%d): %v", id, err)
			continue
		}
		if n != len(seg) {
			t.Errorf("PatternFor(%d): count %d for %d segments", id, n, len(seg))
		}
		if (id == AxisBarDash || id == LegendBoxDash) != (n == 1) {
			t.Errorf("PatternFor(%d): %d segments", id, n)
		}
	}

	for _, id := range []int{NoDash, -1, NumDashes, 100} {
		_, _, err := PatternFor(id)
		if !errors.Is(err, ErrInvalidDashId) || !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("PatternFor(%d) = %v", id, err)
		}
	}
}

func TestPatternForCopies(t *testing.T) {
	seg, _, _ := PatternFor(2)
	seg[0] = 99
	if again, _, _ := PatternFor(2); again[0] == 99 {
		t.Error("PatternFor returned the registry itself")
	}
}

func TestDashes(t *testing.T) {
	if d := Dashes(NoDash); d != nil {
		t.Errorf("Dashes(NoDash) = %v", d)
	}
	if d := Dashes(SolidDash); d != nil {
		t.Errorf("Dashes(SolidDash) = %v", d)
	}
	if d := Dashes(AxisBarDash); len(d) != 2 || d[0] != d[1] {
		t.Errorf("Dashes(AxisBarDash) = %v", d)
	}
	if d := Dashes(5); len(d) != 4 {
		t.Errorf("Dashes(5) = %v", d)
	}
}
