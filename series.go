package curve

// ----------------------------------------------------------------------------
// Entry

// Entry references another curve which is drawn as an overlay on the host
// curve. It owns a private Layout.
type Entry struct {
	ID     ID
	Layout *Layout
}

// NewEntry returns an overlay entry for id styled by a private copy of l.
func NewEntry(id ID, l *Layout) *Entry {
	return &Entry{ID: id, Layout: l.Clone()}
}

// ----------------------------------------------------------------------------
// SeriesList

// SeriesList is the ordered list of overlay curves of a host curve.
// Traversal order runs from First to Last. Each curve is referenced at
// most once.
type SeriesList struct {
	entries []*Entry
	index   map[ID]int // position of each entry in entries
}

// NewSeriesList returns an empty list.
func NewSeriesList() *SeriesList {
	return &SeriesList{index: make(map[ID]int)}
}

// Len returns the number of overlays.
func (s *SeriesList) Len() int { return len(s.entries) }

// First returns the head of the list or nil if the list is empty.
func (s *SeriesList) First() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[0]
}

// Last returns the tail of the list or nil if the list is empty.
func (s *SeriesList) Last() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Entries returns the overlays in traversal order. The slice is a copy,
// the entries are not.
func (s *SeriesList) Entries() []*Entry {
	return append([]*Entry(nil), s.entries...)
}

// Each calls f for each entry in traversal order.
func (s *SeriesList) Each(f func(*Entry)) {
	for _, e := range s.entries {
		f(e)
	}
}

// Contains reports whether a curve with the given identity was already added.
func (s *SeriesList) Contains(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// Get returns the entry referencing id.
func (s *SeriesList) Get(id ID) (*Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entries[i], true
}

// Insert appends e to the list or prepends it if atFront is set.
// A curve already in the list is rejected.
func (s *SeriesList) Insert(e *Entry, atFront bool) error {
	if e == nil || e.Layout == nil {
		return invariantError("Insert", "entry without layout")
	}
	if s.Contains(e.ID) {
		return invariantError("Insert", "curve %s already in list", e.ID)
	}
	if s.index == nil {
		s.index = make(map[ID]int)
	}
	if atFront {
		s.entries = append([]*Entry{e}, s.entries...)
		s.reindex(0)
		return nil
	}
	s.entries = append(s.entries, e)
	s.index[e.ID] = len(s.entries) - 1
	return nil
}

// RemoveByID unlinks the entry referencing id. The order of the remaining
// entries is kept. It reports whether an entry was removed; removing an
// absent curve is a no-op.
func (s *SeriesList) RemoveByID(id ID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	delete(s.index, id)
	s.reindex(i)
	return true
}

// reindex updates the index of all entries starting at position from.
func (s *SeriesList) reindex(from int) {
	for i := from; i < len(s.entries); i++ {
		s.index[s.entries[i].ID] = i
	}
}

// Reorder rearranges the list to the total order given by order which must
// contain host exactly once and every overlay exactly once. After Reorder
// traversal yields the overlays in the order they appear in order. The
// position of host in order is returned.
//
// The entries themselves (and their layouts) are not touched. An order not
// matching the current set of overlays is a caller bug and reported as
// ErrInvariantViolation without modifying the list.
func (s *SeriesList) Reorder(order []ID, host ID) (int, error) {
	if len(order) != len(s.entries)+1 {
		return 0, invariantError("Reorder", "got %d identities for %d series",
			len(order), len(s.entries)+1)
	}

	hostPos := -1
	seen := make(map[ID]bool, len(order))
	perm := make([]*Entry, 0, len(s.entries))
	for pos, id := range order {
		if seen[id] {
			return 0, invariantError("Reorder", "curve %s listed twice", id)
		}
		seen[id] = true
		if id == host {
			hostPos = pos
			continue
		}
		i, ok := s.index[id]
		if !ok {
			return 0, invariantError("Reorder", "curve %s is not an overlay", id)
		}
		perm = append(perm, s.entries[i])
	}
	if hostPos < 0 {
		return 0, invariantError("Reorder", "host curve %s missing", host)
	}

	copy(s.entries, perm)
	s.reindex(0)
	return hostPos, nil
}
