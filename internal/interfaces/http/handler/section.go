package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/shopadmin/backend/internal/application/content"
)

// SectionHandler handles homepage section API endpoints
type SectionHandler struct {
	BaseHandler
	sectionService *contentapp.Service
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(sectionService *contentapp.Service) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// Create creates a new homepage section at the bottom of the page
func (h *SectionHandler) Create(c *gin.Context) {
	var req contentapp.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	resp, err := h.sectionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all homepage sections in display order
func (h *SectionHandler) List(c *gin.Context) {
	items, err := h.sectionService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Update updates a homepage section
func (h *SectionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	var req contentapp.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	resp, err := h.sectionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reorder applies a new section ordering, first id on top
func (h *SectionHandler) Reorder(c *gin.Context) {
	var req contentapp.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	if err := h.sectionService.Reorder(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "sections reordered"})
}

// Delete removes a homepage section
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
