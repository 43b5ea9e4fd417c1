package taxonomy

// ResolveID finds the canonical id of a possibly-shallow category reference
// within the forest it should belong to. Collaborator responses are
// sometimes flat and sometimes nested, so resolution is three-tiered:
//
//  1. A candidate without a parent id is looked up among the roots.
//  2. Otherwise the parent is located among the roots and the candidate is
//     searched for within that parent's subtree.
//  3. If either step fails (unknown parent, candidate not under the
//     expected branch), an unrestricted depth-first search of the whole
//     forest is the fallback.
//
// The second result is false when the candidate exists nowhere in the
// forest.
func ResolveID(f Forest, candidate Category) (string, bool) {
	key := candidate.Key()
	if key == "" {
		return "", false
	}

	if candidate.ParentID == "" {
		for _, root := range f {
			if root.Key() == key {
				return root.Key(), true
			}
		}
	} else {
		for _, root := range f {
			if root.Key() != candidate.ParentID {
				continue
			}
			if node, ok := Forest(root.Children).Find(key); ok {
				return node.Key(), true
			}
			break
		}
	}

	// Fallback: the parent was not a root, or the candidate was not where
	// its parent id suggested. Search everywhere.
	if node, ok := f.Find(key); ok {
		return node.Key(), true
	}
	return "", false
}
