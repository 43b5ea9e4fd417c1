package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vendorapp "github.com/shopadmin/backend/internal/application/vendor"
)

// VendorHandler handles vendor management API endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *vendorapp.Service
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *vendorapp.Service) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create registers a new vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req vendorapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	resp, err := h.vendorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns the allow-listed active vendors
func (h *VendorHandler) List(c *gin.Context) {
	resp, err := h.vendorService.ListAllowed(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID returns a single vendor
func (h *VendorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.vendorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a vendor's details
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req vendorapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	resp, err := h.vendorService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Activate activates a vendor
func (h *VendorHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "vendor activated"})
}

// Deactivate deactivates a vendor
func (h *VendorHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "vendor deactivated"})
}

// ImportFeed ingests a raw vendor feed document, replacing the vendor's
// stored category rows.
func (h *VendorHandler) ImportFeed(c *gin.Context) {
	var req vendorapp.ImportFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	count, err := h.vendorService.ImportFeed(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"imported": count})
}
