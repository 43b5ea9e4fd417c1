package taxonomy

// Category is an in-memory node of a category forest. It is the shape both
// the internal catalog tree and vendor-supplied trees are normalized into
// before any reconciliation logic runs. IDs are opaque strings: UUIDs for
// internal categories, vendor-assigned identifiers for vendor trees.
type Category struct {
	ID           string     `json:"id"`
	Code         string     `json:"code,omitempty"`
	Name         string     `json:"name"`
	ParentID     string     `json:"parent_id,omitempty"`
	ProductCount int        `json:"product_count,omitempty"`
	Children     []Category `json:"children,omitempty"`
}

// Forest is a sequence of independent category trees (multiple roots).
type Forest []Category

// Key returns the identity used for equality checks. Vendor feeds
// occasionally omit the id and carry only a code, so the code serves as the
// fallback identifier.
func (c Category) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Code
}

// IsLeaf reports whether the node has no children.
func (c Category) IsLeaf() bool {
	return len(c.Children) == 0
}

// Walk visits every node of the forest depth-first, parents before
// children. The visitor receives the node and its ancestor path from root
// to the node's parent. Returning false stops the walk early.
func (f Forest) Walk(visit func(node Category, path []Category) bool) {
	var walk func(nodes []Category, path []Category) bool
	walk = func(nodes []Category, path []Category) bool {
		for _, n := range nodes {
			if !visit(n, path) {
				return false
			}
			if len(n.Children) > 0 {
				childPath := make([]Category, len(path), len(path)+1)
				copy(childPath, path)
				childPath = append(childPath, n)
				if !walk(n.Children, childPath) {
					return false
				}
			}
		}
		return true
	}
	walk(f, nil)
}

// Find returns the first node in the forest whose key matches id, searching
// depth-first across all roots.
func (f Forest) Find(id string) (Category, bool) {
	var found Category
	ok := false
	f.Walk(func(node Category, _ []Category) bool {
		if node.Key() == id {
			found = node
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Size returns the total number of nodes in the forest.
func (f Forest) Size() int {
	n := 0
	f.Walk(func(Category, []Category) bool {
		n++
		return true
	})
	return n
}
