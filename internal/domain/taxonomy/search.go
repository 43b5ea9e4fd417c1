package taxonomy

import "strings"

// Match is a search hit: the matched node together with its ancestor chain
// from root down to (but excluding) the node itself.
type Match struct {
	Category
	ParentPath []Category `json:"parentPath"`
}

// Search returns every node at any depth whose name contains term
// case-insensitively. A non-matching parent with a matching descendant
// yields only the descendant; when both match, both are emitted
// independently. Nodes without a name never match.
//
// An empty term returns the forest unchanged: one match per root, subtree
// intact, with no parent path.
func Search(f Forest, term string) []Match {
	if term == "" {
		results := make([]Match, len(f))
		for i, root := range f {
			results[i] = Match{Category: root}
		}
		return results
	}

	needle := strings.ToLower(term)
	var results []Match
	f.Walk(func(node Category, path []Category) bool {
		if node.Name == "" {
			return true
		}
		if strings.Contains(strings.ToLower(node.Name), needle) {
			parentPath := make([]Category, len(path))
			copy(parentPath, path)
			results = append(results, Match{Category: node, ParentPath: parentPath})
		}
		return true
	})
	return results
}
