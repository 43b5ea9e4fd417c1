package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// MaxCategoryDepth caps how deep the tree can grow. The admin UI renders
// five levels of indentation at most.
const MaxCategoryDepth = 5

type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Category is a node in the internal catalog tree. Path is the materialized
// ancestor chain ("rootID/childID/..."), which makes subtree queries a
// prefix match instead of a recursive walk.
type Category struct {
	shared.BaseAggregateRoot
	Code         string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Description  string         `gorm:"type:text"`
	ParentID     *uuid.UUID     `gorm:"type:uuid;index"`
	Path         string         `gorm:"type:varchar(500);not null;index"`
	Level        int            `gorm:"not null;default:0"`
	SortOrder    int            `gorm:"not null;default:0"`
	ProductCount int            `gorm:"not null;default:0"`
	Status       CategoryStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a root category. The path of a root is its own id.
func NewCategory(code, name string) (*Category, error) {
	if err := validateCategoryCode(code); err != nil {
		return nil, err
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	c := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            CategoryStatusActive,
	}
	c.Path = c.ID.String()
	return c, nil
}

// NewChildCategory creates a category under parent, inheriting its path and
// level. Depth is checked here so an overgrown tree can never be persisted.
func NewChildCategory(code, name string, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}
	if parent.Level >= MaxCategoryDepth-1 {
		return nil, shared.NewDomainError("MAX_DEPTH_EXCEEDED",
			fmt.Sprintf("Category depth cannot exceed %d levels", MaxCategoryDepth))
	}
	if err := validateCategoryCode(code); err != nil {
		return nil, err
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	c := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		ParentID:          &parent.ID,
		Level:             parent.Level + 1,
		Status:            CategoryStatusActive,
	}
	c.Path = parent.Path + "/" + c.ID.String()
	return c, nil
}

func (c *Category) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.Description = description
	c.touch()
	return nil
}

// UpdateCode changes the business code. Mappings reference categories by id
// so a code change does not orphan them, but feeds keyed on the old code
// will need re-importing.
func (c *Category) UpdateCode(code string) error {
	if err := validateCategoryCode(code); err != nil {
		return err
	}
	c.Code = strings.ToUpper(code)
	c.touch()
	return nil
}

func (c *Category) SetSortOrder(order int) {
	c.SortOrder = order
	c.touch()
}

// SetProductCount refreshes the denormalized product counter. Not a
// versioned change: the counter is derived data.
func (c *Category) SetProductCount(count int) {
	if count < 0 {
		count = 0
	}
	c.ProductCount = count
	c.UpdatedAt = time.Now()
}

func (c *Category) Activate() error {
	if c.Status == CategoryStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Category is already active")
	}
	c.Status = CategoryStatusActive
	c.touch()
	return nil
}

func (c *Category) Deactivate() error {
	if c.Status == CategoryStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Category is already inactive")
	}
	c.Status = CategoryStatusInactive
	c.touch()
	return nil
}

func (c *Category) IsActive() bool {
	return c.Status == CategoryStatusActive
}

func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// GetAncestorIDs parses the materialized path into ancestor ids, nearest
// root first. The final segment (this category) is excluded.
func (c *Category) GetAncestorIDs() []uuid.UUID {
	parts := strings.Split(c.Path, "/")
	if len(parts) <= 1 {
		return nil
	}

	ancestors := make([]uuid.UUID, 0, len(parts)-1)
	for _, part := range parts[:len(parts)-1] {
		if id, err := uuid.Parse(part); err == nil {
			ancestors = append(ancestors, id)
		}
	}
	return ancestors
}

func (c *Category) IsAncestorOf(other *Category) bool {
	if other == nil || other.Path == "" {
		return false
	}
	return strings.HasPrefix(other.Path, c.Path+"/")
}

func (c *Category) IsDescendantOf(other *Category) bool {
	return other != nil && other.IsAncestorOf(c)
}

func (c *Category) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func validateCategoryCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Category code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Category code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Category code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
