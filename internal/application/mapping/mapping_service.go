package mapping

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/mapping"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/taxonomy"
	"github.com/shopadmin/backend/internal/domain/vendor"
)

// VendorTreeCache caches assembled vendor category trees between feed imports
type VendorTreeCache interface {
	// Get returns the cached forest for a vendor, if present
	Get(ctx context.Context, vendorCode string) (taxonomy.Forest, bool)

	// Set stores the forest for a vendor
	Set(ctx context.Context, vendorCode string, forest taxonomy.Forest)

	// Invalidate drops the cached forest for a vendor
	Invalidate(ctx context.Context, vendorCode string)
}

// Service orchestrates category mapping between our catalog and vendor feeds
type Service struct {
	categoryRepo catalog.CategoryRepository
	mappingRepo  mapping.CategoryMappingRepository
	feedRepo     vendor.FeedCategoryRepository
	vendorRepo   vendor.VendorRepository
	treeCache    VendorTreeCache
	allowed      map[string]struct{}
}

// NewService creates a new mapping Service. allowedVendors is the closed set
// of vendor codes the back office may work with; an empty list allows none.
// treeCache may be nil, in which case vendor trees are rebuilt per request.
func NewService(
	categoryRepo catalog.CategoryRepository,
	mappingRepo mapping.CategoryMappingRepository,
	feedRepo vendor.FeedCategoryRepository,
	vendorRepo vendor.VendorRepository,
	treeCache VendorTreeCache,
	allowedVendors []string,
) *Service {
	allowed := make(map[string]struct{}, len(allowedVendors))
	for _, code := range allowedVendors {
		allowed[strings.ToLower(code)] = struct{}{}
	}
	return &Service{
		categoryRepo: categoryRepo,
		mappingRepo:  mappingRepo,
		feedRepo:     feedRepo,
		vendorRepo:   vendorRepo,
		treeCache:    treeCache,
		allowed:      allowed,
	}
}

// OurCategories returns our full category tree
func (s *Service) OurCategories(ctx context.Context) ([]CategoryNode, error) {
	forest, err := s.ourForest(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryNodes(forest), nil
}

// SearchOurCategories returns the subtrees matching the term, each annotated
// with its ancestor chain. An empty term returns the whole tree.
func (s *Service) SearchOurCategories(ctx context.Context, term string) ([]CategoryMatch, error) {
	forest, err := s.ourForest(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryMatches(taxonomy.Search(forest, term)), nil
}

// VendorCategories returns the category tree a vendor's feed describes
func (s *Service) VendorCategories(ctx context.Context, vendorCode string) ([]CategoryNode, error) {
	if _, err := s.requireVendor(ctx, vendorCode); err != nil {
		return nil, err
	}

	forest, err := s.vendorForest(ctx, strings.ToLower(vendorCode))
	if err != nil {
		return nil, err
	}
	return ToCategoryNodes(forest), nil
}

// MappedCategories returns the grouped mapping listing for a vendor, filtered
// by an optional search term and paginated.
func (s *Service) MappedCategories(ctx context.Context, vendorCode string, page int, search string) (*MappedCategoriesResponse, error) {
	if _, err := s.requireVendor(ctx, vendorCode); err != nil {
		return nil, err
	}

	active := true
	rows, err := s.mappingRepo.FindAll(ctx, mapping.Filter{
		VendorCode: strings.ToLower(vendorCode),
		IsActive:   &active,
	})
	if err != nil {
		return nil, err
	}

	groups := mapping.SearchGroups(mapping.GroupRecords(rows), search)
	paged := taxonomy.Paginate(groups, page, taxonomy.DefaultPageSize)

	return &MappedCategoriesResponse{
		Data:       paged.Items,
		TotalPages: paged.TotalPages,
	}, nil
}

// MapCategories attaches the selected vendor categories to one of our
// categories. Vendor categories already mapped elsewhere are moved, so the
// latest submission wins.
func (s *Service) MapCategories(ctx context.Context, req MapCategoriesRequest) error {
	if req.OurCategoryID == "" {
		return shared.NewDomainError("EMPTY_SELECTION", "No catalog category selected")
	}
	vendorIDs := dedupe(req.VendorCategoryIDs)
	if len(vendorIDs) == 0 {
		return shared.NewDomainError("EMPTY_SELECTION", "No vendor categories selected")
	}

	if _, err := s.requireVendor(ctx, req.VendorCode); err != nil {
		return err
	}
	vendorCode := strings.ToLower(req.VendorCode)

	ourForest, err := s.ourForest(ctx)
	if err != nil {
		return err
	}
	ourID, ok := taxonomy.ResolveID(ourForest, taxonomy.Category{ID: req.OurCategoryID})
	if !ok {
		return shared.NewDomainError("OUR_CATEGORY_NOT_FOUND", "Catalog category not found: "+req.OurCategoryID)
	}
	ourNode, ourParentName := findWithParent(ourForest, ourID)

	vendorForest, err := s.vendorForest(ctx, vendorCode)
	if err != nil {
		return err
	}

	batch := make([]*mapping.CategoryMapping, 0, len(vendorIDs))
	for _, candidate := range vendorIDs {
		vendorID, ok := taxonomy.ResolveID(vendorForest, taxonomy.Category{ID: candidate})
		if !ok {
			return shared.NewDomainError("VENDOR_CATEGORY_NOT_FOUND", "Vendor category not found: "+candidate)
		}
		vendorNode, vendorNodeOK := vendorForest.Find(vendorID)

		row, err := s.mappingRepo.FindByVendorCategory(ctx, vendorCode, vendorID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if row == nil {
			row, err = mapping.NewCategoryMapping(ourID, vendorCode, vendorID)
			if err != nil {
				return err
			}
		} else {
			row.OurCategoryID = ourID
			row.Activate()
		}

		row.OurCategoryName = ourNode.Name
		row.OurParentName = ourParentName
		if vendorNodeOK {
			row.VendorCategoryName = vendorNode.Name
		}
		batch = append(batch, row)
	}

	return s.mappingRepo.SaveBatch(ctx, batch)
}

// UnmapCategory detaches a single vendor category
func (s *Service) UnmapCategory(ctx context.Context, req UnmapCategoryRequest) error {
	if req.VendorCategoryID == "" {
		return shared.NewDomainError("EMPTY_SELECTION", "No vendor category given")
	}
	if _, err := s.requireVendor(ctx, req.VendorCode); err != nil {
		return err
	}
	vendorCode := strings.ToLower(req.VendorCode)

	existing, err := s.mappingRepo.FindByVendorCategory(ctx, vendorCode, req.VendorCategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return mapping.ErrMappingNotFound
		}
		return err
	}
	if existing == nil {
		return mapping.ErrMappingNotFound
	}

	return s.mappingRepo.DeleteByVendorCategory(ctx, vendorCode, req.VendorCategoryID)
}

// requireVendor enforces the allow-list and that the vendor exists and is active
func (s *Service) requireVendor(ctx context.Context, code string) (*vendor.Vendor, error) {
	code = strings.ToLower(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor code is required")
	}
	if _, ok := s.allowed[code]; !ok {
		return nil, shared.ErrVendorNotAllowed
	}

	v, err := s.vendorRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !v.IsActive() {
		return nil, shared.NewDomainError("VENDOR_INACTIVE", "Vendor is not active")
	}
	return v, nil
}

func (s *Service) ourForest(ctx context.Context) (taxonomy.Forest, error) {
	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{
		OrderBy:  "sort_order",
		OrderDir: "asc",
	})
	if err != nil {
		return nil, err
	}
	return buildOurForest(categories), nil
}

func (s *Service) vendorForest(ctx context.Context, vendorCode string) (taxonomy.Forest, error) {
	if s.treeCache != nil {
		if forest, ok := s.treeCache.Get(ctx, vendorCode); ok {
			return forest, nil
		}
	}

	rows, err := s.feedRepo.FindByVendor(ctx, vendorCode)
	if err != nil {
		return nil, err
	}
	forest := vendor.BuildForest(rows)

	if s.treeCache != nil {
		s.treeCache.Set(ctx, vendorCode, forest)
	}
	return forest, nil
}

// buildOurForest assembles persisted catalog categories into a taxonomy tree
func buildOurForest(categories []catalog.Category) taxonomy.Forest {
	type node struct {
		category  taxonomy.Category
		sortOrder int
		children  []string
	}

	nodes := make(map[string]*node, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		id := c.ID.String()
		parentID := ""
		if c.ParentID != nil {
			parentID = c.ParentID.String()
		}
		nodes[id] = &node{
			category: taxonomy.Category{
				ID:           id,
				Code:         c.Code,
				Name:         c.Name,
				ParentID:     parentID,
				ProductCount: c.ProductCount,
			},
			sortOrder: c.SortOrder,
		}
		order = append(order, id)
	}

	rootKeys := make([]string, 0)
	for _, id := range order {
		parentID := nodes[id].category.ParentID
		if parentID == "" || nodes[parentID] == nil {
			rootKeys = append(rootKeys, id)
			continue
		}
		nodes[parentID].children = append(nodes[parentID].children, id)
	}

	bySortOrder := func(keys []string) {
		sort.SliceStable(keys, func(i, j int) bool {
			return nodes[keys[i]].sortOrder < nodes[keys[j]].sortOrder
		})
	}

	var build func(id string) taxonomy.Category
	build = func(id string) taxonomy.Category {
		n := nodes[id]
		bySortOrder(n.children)
		category := n.category
		for _, childID := range n.children {
			category.Children = append(category.Children, build(childID))
		}
		return category
	}

	bySortOrder(rootKeys)
	forest := make(taxonomy.Forest, 0, len(rootKeys))
	for _, id := range rootKeys {
		forest = append(forest, build(id))
	}
	return forest
}

// findWithParent locates a node by key and names its direct parent, if any
func findWithParent(f taxonomy.Forest, key string) (taxonomy.Category, string) {
	var found taxonomy.Category
	var parentName string

	f.Walk(func(c taxonomy.Category, path []taxonomy.Category) bool {
		if c.Key() != key {
			return true
		}
		found = c
		if len(path) > 0 {
			parentName = path[len(path)-1].Name
		}
		return false
	})
	return found, parentName
}

// dedupe drops duplicate and empty ids, keeping first occurrence order
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
