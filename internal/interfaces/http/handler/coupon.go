package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	promotionapp "github.com/shopadmin/backend/internal/application/promotion"
)

// CouponHandler handles coupon API endpoints
type CouponHandler struct {
	BaseHandler
	couponService *promotionapp.Service
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(couponService *promotionapp.Service) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Create creates a new coupon
func (h *CouponHandler) Create(c *gin.Context) {
	var req promotionapp.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	resp, err := h.couponService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns coupons matching the filter
func (h *CouponHandler) List(c *gin.Context) {
	var filter promotionapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	items, total, err := h.couponService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID returns a single coupon
func (h *CouponHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	resp, err := h.couponService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Enable enables a coupon
func (h *CouponHandler) Enable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.Enable(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "coupon enabled"})
}

// Disable disables a coupon
func (h *CouponHandler) Disable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.Disable(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "coupon disabled"})
}

// Delete removes a coupon
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid coupon ID")
		return
	}

	if err := h.couponService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
