package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	mappingapp "github.com/shopadmin/backend/internal/application/mapping"
	vendorapp "github.com/shopadmin/backend/internal/application/vendor"
)

// AdminMappingHandler serves the category mapping screens of the admin UI.
// Paths and payload shapes follow what that UI already calls, which is why
// they use verbs instead of REST resources.
type AdminMappingHandler struct {
	BaseHandler
	mappingService *mappingapp.Service
	vendorService  *vendorapp.Service
}

// NewAdminMappingHandler creates a new AdminMappingHandler
func NewAdminMappingHandler(mappingService *mappingapp.Service, vendorService *vendorapp.Service) *AdminMappingHandler {
	return &AdminMappingHandler{
		mappingService: mappingService,
		vendorService:  vendorService,
	}
}

// MapVendorCategoryRequest attaches vendor categories to one of our categories.
// The vendor can come from the body or from the vendorId query parameter.
type MapVendorCategoryRequest struct {
	VendorID          string   `json:"vendorId"`
	OurCategoryID     string   `json:"our_category_id" binding:"required"`
	VendorCategoryIDs []string `json:"vendor_category_id" binding:"required"`
}

// UnmapVendorCategoryRequest detaches a single vendor category
type UnmapVendorCategoryRequest struct {
	VendorID         string `json:"vendorId"`
	VendorCategoryID string `json:"vendor_category_id" binding:"required"`
}

// GetOurCategories returns our full category tree
func (h *AdminMappingHandler) GetOurCategories(c *gin.Context) {
	forest, err := h.mappingService.OurCategories(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, forest)
}

// SearchOurCategories returns the subtrees whose name matches the term,
// each annotated with its ancestor chain.
func (h *AdminMappingHandler) SearchOurCategories(c *gin.Context) {
	matches, err := h.mappingService.SearchOurCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, matches)
}

// GetCategoryForMappings returns the category tree a vendor's feed describes
func (h *AdminMappingHandler) GetCategoryForMappings(c *gin.Context) {
	forest, err := h.mappingService.VendorCategories(c.Request.Context(), c.Query("vendorId"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, forest)
}

// GetMappedCategories returns the grouped mapping listing for a vendor,
// filtered by an optional search term and paginated.
func (h *AdminMappingHandler) GetMappedCategories(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		h.BadRequest(c, "page must be a positive integer")
		return
	}

	resp, err := h.mappingService.MappedCategories(
		c.Request.Context(),
		c.Query("vendorId"),
		page,
		c.Query("search"),
	)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// MapVendorCategory attaches the selected vendor categories to one of our categories
func (h *AdminMappingHandler) MapVendorCategory(c *gin.Context) {
	var req MapVendorCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}
	vendorCode := req.VendorID
	if vendorCode == "" {
		vendorCode = c.Query("vendorId")
	}

	err := h.mappingService.MapCategories(c.Request.Context(), mappingapp.MapCategoriesRequest{
		VendorCode:        vendorCode,
		OurCategoryID:     req.OurCategoryID,
		VendorCategoryIDs: req.VendorCategoryIDs,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	// The UI re-renders the grouped listing immediately after a submit, so
	// hand the fresh first page back in the same round trip.
	refreshed, err := h.mappingService.MappedCategories(c.Request.Context(), vendorCode, 1, "")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, refreshed)
}

// UnmapVendorCategory detaches a single vendor category
func (h *AdminMappingHandler) UnmapVendorCategory(c *gin.Context) {
	var req UnmapVendorCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}
	vendorCode := req.VendorID
	if vendorCode == "" {
		vendorCode = c.Query("vendorId")
	}

	err := h.mappingService.UnmapCategory(c.Request.Context(), mappingapp.UnmapCategoryRequest{
		VendorCode:       vendorCode,
		VendorCategoryID: req.VendorCategoryID,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"removed": req.VendorCategoryID})
}

// GetVendorList returns the vendors the back office may work with
func (h *AdminMappingHandler) GetVendorList(c *gin.Context) {
	resp, err := h.vendorService.ListAllowed(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
