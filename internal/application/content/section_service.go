package content

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/content"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CreateSectionRequest represents a request to create a homepage section
type CreateSectionRequest struct {
	Type    string `json:"type" binding:"required,oneof=banner carousel product_grid"`
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Payload string `json:"payload"`
}

// UpdateSectionRequest represents a request to update a homepage section
type UpdateSectionRequest struct {
	Title   string  `json:"title" binding:"omitempty,min=1,max=200"`
	Payload *string `json:"payload"`
	Visible *bool   `json:"visible"`
}

// ReorderRequest carries the new section ordering, first id on top
type ReorderRequest struct {
	SectionIDs []uuid.UUID `json:"section_ids" binding:"required,min=1"`
}

// SectionResponse represents a homepage section in API responses
type SectionResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Payload   string    `json:"payload"`
	SortOrder int       `json:"sort_order"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSectionResponse converts a domain Section to SectionResponse
func ToSectionResponse(s *content.Section) *SectionResponse {
	return &SectionResponse{
		ID:        s.ID,
		Type:      string(s.Type),
		Title:     s.Title,
		Payload:   s.Payload,
		SortOrder: s.SortOrder,
		Visible:   s.Visible,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Service handles homepage content operations
type Service struct {
	sectionRepo content.SectionRepository
}

// NewService creates a new content Service
func NewService(sectionRepo content.SectionRepository) *Service {
	return &Service{sectionRepo: sectionRepo}
}

// Create creates a new homepage section, appended at the bottom
func (s *Service) Create(ctx context.Context, req CreateSectionRequest) (*SectionResponse, error) {
	section, err := content.NewSection(content.SectionType(req.Type), req.Title)
	if err != nil {
		return nil, err
	}
	if req.Payload != "" {
		section.UpdatePayload(req.Payload)
	}

	existing, err := s.sectionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	section.SetSortOrder(len(existing))

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	return ToSectionResponse(section), nil
}

// List returns all sections ordered by position
func (s *Service) List(ctx context.Context) ([]SectionResponse, error) {
	sections, err := s.sectionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SectionResponse, len(sections))
	for i := range sections {
		responses[i] = *ToSectionResponse(&sections[i])
	}
	return responses, nil
}

// Update updates a section's title, payload or visibility
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateSectionRequest) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		section.Title = req.Title
		section.UpdatedAt = time.Now()
		section.IncrementVersion()
	}
	if req.Payload != nil {
		section.UpdatePayload(*req.Payload)
	}
	if req.Visible != nil {
		if *req.Visible {
			section.Show()
		} else {
			section.Hide()
		}
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	return ToSectionResponse(section), nil
}

// Reorder rewrites sort orders to match the given id sequence. Every section
// must be present exactly once.
func (s *Service) Reorder(ctx context.Context, req ReorderRequest) error {
	sections, err := s.sectionRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(req.SectionIDs) != len(sections) {
		return shared.NewDomainError("INVALID_ORDERING", "Ordering must include every section exactly once")
	}

	byID := make(map[uuid.UUID]*content.Section, len(sections))
	for i := range sections {
		byID[sections[i].ID] = &sections[i]
	}

	for position, id := range req.SectionIDs {
		section, ok := byID[id]
		if !ok {
			return shared.NewDomainError("INVALID_ORDERING", "Unknown section in ordering: "+id.String())
		}
		section.SetSortOrder(position)
		if err := s.sectionRepo.Save(ctx, section); err != nil {
			return err
		}
		delete(byID, id)
	}
	return nil
}

// Delete deletes a section
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.sectionRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.sectionRepo.Delete(ctx, id)
}
