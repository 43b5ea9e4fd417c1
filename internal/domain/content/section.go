package content

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// SectionType identifies what kind of block a homepage section renders
type SectionType string

const (
	SectionTypeBanner      SectionType = "banner"
	SectionTypeCarousel    SectionType = "carousel"
	SectionTypeProductGrid SectionType = "product_grid"
)

// IsValid checks if the section type is known
func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeBanner, SectionTypeCarousel, SectionTypeProductGrid:
		return true
	}
	return false
}

// Section is one configurable block on the storefront homepage.
// The Payload is schemaless JSON whose shape depends on the section type.
type Section struct {
	shared.BaseAggregateRoot
	Type      SectionType `gorm:"type:varchar(30);not null"`
	Title     string      `gorm:"type:varchar(200);not null"`
	Payload   string      `gorm:"type:jsonb;not null;default:'{}'"`
	SortOrder int         `gorm:"not null;default:0"`
	Visible   bool        `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Section) TableName() string {
	return "homepage_sections"
}

// NewSection creates a new homepage section
func NewSection(sectionType SectionType, title string) (*Section, error) {
	if !sectionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown section type")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Section title cannot be empty")
	}

	return &Section{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              sectionType,
		Title:             title,
		Payload:           "{}",
		Visible:           true,
	}, nil
}

// UpdatePayload replaces the section's JSON payload
func (s *Section) UpdatePayload(payload string) {
	if payload == "" {
		payload = "{}"
	}
	s.Payload = payload
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetSortOrder sets the section's position on the page
func (s *Section) SetSortOrder(order int) {
	s.SortOrder = order
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Show makes the section visible on the storefront
func (s *Section) Show() {
	s.Visible = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Hide removes the section from the storefront without deleting it
func (s *Section) Hide() {
	s.Visible = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SectionRepository defines the interface for homepage section persistence
type SectionRepository interface {
	// FindByID finds a section by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)

	// FindAll finds all sections ordered by sort order
	FindAll(ctx context.Context) ([]Section, error)

	// FindVisible finds all visible sections ordered by sort order
	FindVisible(ctx context.Context) ([]Section, error)

	// Save creates or updates a section
	Save(ctx context.Context, section *Section) error

	// Delete deletes a section
	Delete(ctx context.Context, id uuid.UUID) error
}
