package mapping

import "strings"

// ---------------------------------------------------------------------------
// Group Aggregation
// ---------------------------------------------------------------------------

// VendorEntry is one vendor-side category inside a mapping group.
type VendorEntry struct {
	VendorCode         string `json:"vendorCode"`
	VendorCategoryID   string `json:"vendorCategoryId"`
	VendorCategoryName string `json:"vendorCategoryName"`
}

// Group collects every vendor category mapped to a single catalog category.
// The mapping store keeps one row per (our category, vendor category) pair,
// so the admin view has to fold rows back into one group per catalog category.
type Group struct {
	OurCategoryID   string        `json:"ourCategoryId"`
	OurCategoryName string        `json:"ourCategoryName"`
	OurParentName   string        `json:"ourParentName,omitempty"`
	Vendors         []VendorEntry `json:"vendors"`
}

// GroupRecords folds flat mapping rows into one Group per catalog category.
// Groups keep the order in which their category was first seen, and vendor
// entries keep row order within each group. Rows without an our-category id
// cannot be attributed to any group and are skipped.
func GroupRecords(records []CategoryMapping) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, rec := range records {
		if rec.OurCategoryID == "" {
			continue
		}

		i, ok := index[rec.OurCategoryID]
		if !ok {
			groups = append(groups, Group{
				OurCategoryID:   rec.OurCategoryID,
				OurCategoryName: rec.OurCategoryName,
				OurParentName:   rec.OurParentName,
				Vendors:         make([]VendorEntry, 0, 1),
			})
			i = len(groups) - 1
			index[rec.OurCategoryID] = i
		}

		groups[i].Vendors = append(groups[i].Vendors, VendorEntry{
			VendorCode:         rec.VendorCode,
			VendorCategoryID:   rec.VendorCategoryID,
			VendorCategoryName: rec.VendorCategoryName,
		})
	}

	return groups
}

// Matches reports whether the group is relevant to a search term. The term is
// compared case-insensitively against the catalog category name, its parent
// name, and every mapped vendor category name.
func (g Group) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(g.OurCategoryName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(g.OurParentName), term) {
		return true
	}
	for _, v := range g.Vendors {
		if strings.Contains(strings.ToLower(v.VendorCategoryName), term) {
			return true
		}
	}
	return false
}

// SearchGroups filters groups down to those matching the term, preserving
// group order. An empty term returns the input unchanged.
func SearchGroups(groups []Group, term string) []Group {
	if term == "" {
		return groups
	}

	matched := make([]Group, 0)
	for _, g := range groups {
		if g.Matches(term) {
			matched = append(matched, g)
		}
	}
	return matched
}
