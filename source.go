package curve

import (
	"sort"

	"github.com/vdobler/curve/data"
)

// A Source resolves curve identities. Renderers use it to dereference the
// overlays of a curve and to fetch the data of every series.
type Source interface {
	// Resolve returns the curve with the given identity or an
	// ErrNotFound error if the identity is stale.
	Resolve(id ID) (*Curve, error)

	// Data returns the data paired with the curve id.
	Data(id ID) (*data.Set, error)
}

// Registry is an in-memory Source.
type Registry struct {
	curves map[ID]*Curve
	data   map[ID]*data.Set
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		curves: make(map[ID]*Curve),
		data:   make(map[ID]*data.Set),
	}
}

// Add registers c together with its data, replacing a curve with the same
// identity.
func (r *Registry) Add(c *Curve, d *data.Set) {
	r.curves[c.ID] = c
	r.data[c.ID] = d
}

// SetData replaces the data of a registered curve and invalidates the
// raster of every curve drawing it.
func (r *Registry) SetData(id ID, d *data.Set) error {
	if _, ok := r.curves[id]; !ok {
		return NotFoundError("SetData", id)
	}
	r.data[id] = d
	for _, c := range r.curves {
		if c.ID == id || c.HasExtra(id) {
			c.MarkDirty()
		}
	}
	return nil
}

// Remove unregisters the curve id and drops it from the overlays of all
// other curves. It returns the curves which lost an overlay.
func (r *Registry) Remove(id ID) []ID {
	delete(r.curves, id)
	delete(r.data, id)
	var touched []ID
	for _, c := range r.curves {
		if c.RemoveExtra(id) {
			touched = append(touched, c.ID)
		}
	}
	sortIDs(touched)
	return touched
}

// Resolve implements Source.
func (r *Registry) Resolve(id ID) (*Curve, error) {
	c, ok := r.curves[id]
	if !ok {
		return nil, NotFoundError("Resolve", id)
	}
	return c, nil
}

// Data implements Source.
func (r *Registry) Data(id ID) (*data.Set, error) {
	if _, ok := r.curves[id]; !ok {
		return nil, NotFoundError("Data", id)
	}
	return r.data[id], nil
}

// IDs returns the identities of all registered curves in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.curves))
	for id := range r.curves {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		if a.Project != b.Project {
			return a.Project < b.Project
		}
		if a.Analysis != b.Analysis {
			return a.Analysis < b.Analysis
		}
		return a.Curve < b.Curve
	})
}
