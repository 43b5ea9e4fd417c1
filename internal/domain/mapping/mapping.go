package mapping

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// ---------------------------------------------------------------------------
// CategoryMapping Entity
// ---------------------------------------------------------------------------

// CategoryMapping links one of our catalog categories to a category in a
// vendor feed. This is an Entity (not Aggregate Root): it has identity and is
// mutable, but its lifecycle is driven by the catalog category it belongs to.
type CategoryMapping struct {
	// ID is the unique identifier of this mapping
	ID uuid.UUID
	// OurCategoryID is the catalog category on our side
	OurCategoryID string
	// OurCategoryName is the catalog category name (for reference)
	OurCategoryName string
	// OurParentName is the name of the catalog category's parent, if any
	OurParentName string
	// VendorCode identifies which vendor this mapping is for
	VendorCode string
	// VendorCategoryID is the category ID in the vendor feed
	VendorCategoryID string
	// VendorCategoryName is the category name in the vendor feed (for reference)
	VendorCategoryName string
	// IsActive indicates if this mapping is currently in effect
	IsActive bool
	// CreatedAt is when this mapping was created
	CreatedAt time.Time
	// UpdatedAt is when this mapping was last updated
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (CategoryMapping) TableName() string {
	return "category_mappings"
}

// NewCategoryMapping creates a new category mapping
func NewCategoryMapping(ourCategoryID, vendorCode, vendorCategoryID string) (*CategoryMapping, error) {
	if ourCategoryID == "" {
		return nil, ErrInvalidOurCategoryID
	}
	if vendorCode == "" {
		return nil, ErrInvalidVendorCode
	}
	if vendorCategoryID == "" {
		return nil, ErrInvalidVendorCategoryID
	}

	now := time.Now()
	return &CategoryMapping{
		ID:               uuid.New(),
		OurCategoryID:    ourCategoryID,
		VendorCode:       vendorCode,
		VendorCategoryID: vendorCategoryID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Validate validates the category mapping
func (m *CategoryMapping) Validate() error {
	if m.OurCategoryID == "" {
		return ErrInvalidOurCategoryID
	}
	if m.VendorCode == "" {
		return ErrInvalidVendorCode
	}
	if m.VendorCategoryID == "" {
		return ErrInvalidVendorCategoryID
	}
	return nil
}

// Activate puts this mapping back in effect
func (m *CategoryMapping) Activate() {
	m.IsActive = true
	m.UpdatedAt = time.Now()
}

// Deactivate takes this mapping out of effect without deleting it
func (m *CategoryMapping) Deactivate() {
	m.IsActive = false
	m.UpdatedAt = time.Now()
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidOurCategoryID    = shared.NewDomainError("INVALID_OUR_CATEGORY", "our category id is required")
	ErrInvalidVendorCode       = shared.NewDomainError("INVALID_VENDOR_CODE", "vendor code is required")
	ErrInvalidVendorCategoryID = shared.NewDomainError("INVALID_VENDOR_CATEGORY", "vendor category id is required")
	ErrMappingNotFound         = shared.NewDomainError("MAPPING_NOT_FOUND", "category mapping not found")
)

// ---------------------------------------------------------------------------
// CategoryMappingRepository Interface
// ---------------------------------------------------------------------------

// CategoryMappingReader defines the interface for reading category mappings
type CategoryMappingReader interface {
	// FindByID finds a mapping by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryMapping, error)

	// FindByOurCategory finds all mappings attached to one of our categories
	FindByOurCategory(ctx context.Context, ourCategoryID string) ([]CategoryMapping, error)

	// FindByVendorCategory finds the mapping for a vendor category, if any
	FindByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) (*CategoryMapping, error)
}

// CategoryMappingFinder defines the interface for searching category mappings
type CategoryMappingFinder interface {
	// FindAll finds all mappings with optional filters
	FindAll(ctx context.Context, filter Filter) ([]CategoryMapping, error)

	// Count counts mappings matching the filter
	Count(ctx context.Context, filter Filter) (int64, error)

	// ExistsByVendorCategory checks whether a vendor category is already mapped
	ExistsByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) (bool, error)
}

// CategoryMappingWriter defines the interface for persisting category mappings
type CategoryMappingWriter interface {
	// Save creates or updates a mapping
	Save(ctx context.Context, mapping *CategoryMapping) error

	// SaveBatch creates or updates multiple mappings
	SaveBatch(ctx context.Context, mappings []*CategoryMapping) error

	// Delete deletes a mapping
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVendorCategory deletes the mapping for a vendor category
	DeleteByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) error
}

// CategoryMappingRepository defines the full interface for mapping persistence
type CategoryMappingRepository interface {
	CategoryMappingReader
	CategoryMappingFinder
	CategoryMappingWriter
}

// Filter defines filter criteria for category mappings
type Filter struct {
	// VendorCode filters by vendor (optional)
	VendorCode string
	// OurCategoryIDs filters by our category IDs (optional)
	OurCategoryIDs []string
	// IsActive filters by active status (optional)
	IsActive *bool
	// SearchKeyword searches in category names (optional)
	SearchKeyword string
	// Page number (1-indexed)
	Page int
	// Page size
	PageSize int
}
