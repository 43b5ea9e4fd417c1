package mapping

import (
	"github.com/shopadmin/backend/internal/domain/mapping"
	"github.com/shopadmin/backend/internal/domain/taxonomy"
)

// CategoryNode represents one node of a category tree in API responses.
// The admin UI consumes camelCase field names for these payloads.
type CategoryNode struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ParentID     string         `json:"parentId,omitempty"`
	ProductCount int            `json:"productCount"`
	Children     []CategoryNode `json:"children,omitempty"`
}

// CategoryMatch is one search hit together with its ancestor chain
type CategoryMatch struct {
	Category   CategoryNode   `json:"category"`
	ParentPath []CategoryNode `json:"parentPath"`
}

// MappedCategoriesResponse is the paginated grouped-mapping listing
type MappedCategoriesResponse struct {
	Data       []mapping.Group `json:"data"`
	TotalPages int             `json:"totalPages"`
}

// MapCategoriesRequest asks to attach vendor categories to one of our
// categories. Validation happens in the service, which reports precise
// EMPTY_SELECTION and INVALID_VENDOR errors for missing fields.
type MapCategoriesRequest struct {
	VendorCode        string   `json:"vendor_code"`
	OurCategoryID     string   `json:"our_category_id"`
	VendorCategoryIDs []string `json:"vendor_category_id"`
}

// UnmapCategoryRequest asks to detach a single vendor category
type UnmapCategoryRequest struct {
	VendorCode       string `json:"vendor_code"`
	VendorCategoryID string `json:"vendor_category_id"`
}

// ToCategoryNode converts a taxonomy category, children included
func ToCategoryNode(c taxonomy.Category) CategoryNode {
	node := CategoryNode{
		ID:           c.Key(),
		Name:         c.Name,
		ParentID:     c.ParentID,
		ProductCount: c.ProductCount,
	}
	for _, child := range c.Children {
		node.Children = append(node.Children, ToCategoryNode(child))
	}
	return node
}

// ToCategoryNodes converts a whole forest
func ToCategoryNodes(f taxonomy.Forest) []CategoryNode {
	nodes := make([]CategoryNode, 0, len(f))
	for _, c := range f {
		nodes = append(nodes, ToCategoryNode(c))
	}
	return nodes
}

// toShallowNode converts a single category without descending into children
func toShallowNode(c taxonomy.Category) CategoryNode {
	return CategoryNode{
		ID:           c.Key(),
		Name:         c.Name,
		ParentID:     c.ParentID,
		ProductCount: c.ProductCount,
	}
}

// ToCategoryMatches converts search hits, keeping subtrees on the matched
// node but flattening the ancestor chain.
func ToCategoryMatches(matches []taxonomy.Match) []CategoryMatch {
	out := make([]CategoryMatch, 0, len(matches))
	for _, m := range matches {
		match := CategoryMatch{
			Category:   ToCategoryNode(m.Category),
			ParentPath: make([]CategoryNode, 0, len(m.ParentPath)),
		}
		for _, p := range m.ParentPath {
			match.ParentPath = append(match.ParentPath, toShallowNode(p))
		}
		out = append(out, match)
	}
	return out
}
