package curve

import (
	"errors"
	"image"
	"testing"

	"github.com/vdobler/curve/data"
)

func TestRegistryCascade(t *testing.T) {
	r := NewRegistry()
	a, b, c := New(hostID, "a"), New(headID, "b"), New(tailID, "c")
	for _, cv := range []*Curve{a, b, c} {
		r.Add(cv, nil)
	}
	a.AddExtra(tailID, NewLayout(0), false)
	b.AddExtra(tailID, NewLayout(0), false)
	b.AddExtra(hostID, NewLayout(0), false)
	b.DrawID = 2

	touched := r.Remove(tailID)
	if !sameIDs(touched, []ID{hostID, headID}) {
		t.Errorf("touched %v", touched)
	}
	if a.HasExtra(tailID) || b.HasExtra(tailID) || b.Extras.Len() != 1 || b.DrawID != 1 {
		t.Errorf("cascade incomplete: a %v, b %v drawID %d", listIDs(a.Extras), listIDs(b.Extras), b.DrawID)
	}
	if _, err := r.Resolve(tailID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve removed: %v", err)
	}
	if _, err := r.Data(tailID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Data removed: %v", err)
	}
	if got := r.IDs(); !sameIDs(got, []ID{hostID, headID}) {
		t.Errorf("IDs() = %v", got)
	}
}

func TestRegistrySetData(t *testing.T) {
	r := NewRegistry()
	a, b := New(hostID, "a"), New(headID, "b")
	r.Add(a, nil)
	r.Add(b, nil)
	a.AddExtra(headID, NewLayout(0), false)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	a.SetCached(img)

	set, _ := data.NewSet([]float64{1}, []float64{2}, nil)
	if err := r.SetData(ID{Curve: 99}, set); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetData unknown: %v", err)
	}
	if err := r.SetData(headID, set); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Data(headID); got != set {
		t.Error("data not replaced")
	}
	if _, ok := a.Cached(); ok {
		t.Error("overlaying curve still cached")
	}
	if cv, err := r.Resolve(headID); err != nil || cv != b {
		t.Errorf("Resolve = %v, %v", cv, err)
	}
}
