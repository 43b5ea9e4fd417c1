package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/content"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// GormSectionRepository implements SectionRepository using GORM
type GormSectionRepository struct {
	db *gorm.DB
}

// NewGormSectionRepository creates a new GormSectionRepository
func NewGormSectionRepository(db *gorm.DB) *GormSectionRepository {
	return &GormSectionRepository{db: db}
}

// FindByID finds a section by its ID
func (r *GormSectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Section, error) {
	var section content.Section
	if err := r.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindAll finds all sections ordered by sort order
func (r *GormSectionRepository) FindAll(ctx context.Context) ([]content.Section, error) {
	var sections []content.Section
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// FindVisible finds all visible sections ordered by sort order
func (r *GormSectionRepository) FindVisible(ctx context.Context) ([]content.Section, error) {
	var sections []content.Section
	if err := r.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Save creates or updates a section
func (r *GormSectionRepository) Save(ctx context.Context, section *content.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

// Delete deletes a section
func (r *GormSectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSectionRepository implements SectionRepository
var _ content.SectionRepository = (*GormSectionRepository)(nil)
