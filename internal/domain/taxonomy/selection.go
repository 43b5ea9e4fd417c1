package taxonomy

// Selection is an explicit checked-node list keyed by category identity.
// The mapping screen keeps one of these for the internal tree and one for
// the vendor tree, and they only meet at submission time.
type Selection struct {
	items []Category
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle flips membership of the given category: if an entry with the same
// key is present it is removed, otherwise the category is appended.
func (s *Selection) Toggle(c Category) {
	key := c.Key()
	for i, existing := range s.items {
		if existing.Key() == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
	s.items = append(s.items, c)
}

// Contains reports whether a category with the given id is selected.
func (s *Selection) Contains(id string) bool {
	for _, c := range s.items {
		if c.Key() == id {
			return true
		}
	}
	return false
}

// Items returns the selected categories in insertion order.
func (s *Selection) Items() []Category {
	out := make([]Category, len(s.items))
	copy(out, s.items)
	return out
}

// IDs returns the deduplicated keys of the selection in insertion order.
func (s *Selection) IDs() []string {
	seen := make(map[string]struct{}, len(s.items))
	ids := make([]string, 0, len(s.items))
	for _, c := range s.items {
		key := c.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, key)
	}
	return ids
}

// Len returns the number of selected categories.
func (s *Selection) Len() int {
	return len(s.items)
}

// Reset clears the selection. Called after a successful submit.
func (s *Selection) Reset() {
	s.items = nil
}
