package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/domain/promotion"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CreateOrderRequest represents a request to place a new order
type CreateOrderRequest struct {
	OrderNumber   string            `json:"order_number" binding:"required,min=1,max=50"`
	CustomerName  string            `json:"customer_name" binding:"required,min=1,max=100"`
	CustomerEmail string            `json:"customer_email" binding:"omitempty,email"`
	Items         []CreateItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateItemInput is one line item in a create request
type CreateItemInput struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ApplyCouponRequest asks to apply a coupon to a pending order
type ApplyCouponRequest struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

// CancelOrderRequest carries the cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}

// ItemResponse represents a line item in API responses
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	Items          []ItemResponse  `json:"items"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	PayableAmount  decimal.Decimal `json:"payable_amount"`
	CouponCode     string          `json:"coupon_code,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ListFilter represents filter options for the order list
type ListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]ItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return &OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		Items:          items,
		TotalAmount:    o.TotalAmount,
		DiscountAmount: o.DiscountAmount,
		PayableAmount:  o.PayableAmount,
		CouponCode:     o.CouponCode,
		Status:         o.Status.String(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// Service handles order-related business operations
type Service struct {
	orderRepo  order.Repository
	couponRepo promotion.CouponRepository
}

// NewService creates a new order Service
func NewService(orderRepo order.Repository, couponRepo promotion.CouponRepository) *Service {
	return &Service{
		orderRepo:  orderRepo,
		couponRepo: couponRepo,
	}
}

// Create places a new order
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.orderRepo.FindByOrderNumber(ctx, req.OrderNumber); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	o, err := order.NewOrder(req.OrderNumber, req.CustomerName)
	if err != nil {
		return nil, err
	}
	o.CustomerEmail = req.CustomerEmail

	for _, item := range req.Items {
		if err := o.AddItem(item.ProductID, item.ProductName, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// GetByID retrieves an order by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// List retrieves orders matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// ApplyCoupon validates a coupon and applies its discount to a pending order
func (s *Service) ApplyCoupon(ctx context.Context, id uuid.UUID, req ApplyCouponRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.FindByCode(ctx, req.CouponCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("COUPON_NOT_FOUND", "Coupon not found")
		}
		return nil, err
	}
	if !coupon.IsUsable(time.Now()) {
		return nil, shared.NewDomainError("COUPON_NOT_USABLE", "Coupon is expired, disabled or exhausted")
	}

	discount := coupon.Discount(o.TotalAmount)
	if discount.IsZero() {
		return nil, shared.NewDomainError("COUPON_NOT_APPLICABLE", "Order does not meet the coupon conditions")
	}

	if err := o.ApplyDiscount(coupon.Code, discount); err != nil {
		return nil, err
	}
	if err := coupon.MarkUsed(); err != nil {
		return nil, err
	}

	// The order is the customer-visible record, so it is written first. If
	// recording the redemption fails afterwards, the discount is rolled back
	// so the coupon is not consumed on an order that never kept it.
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	if err := s.couponRepo.Save(ctx, coupon); err != nil {
		if revertErr := o.RemoveDiscount(); revertErr == nil {
			if saveErr := s.orderRepo.Save(ctx, o); saveErr != nil {
				return nil, errors.Join(err, saveErr)
			}
		}
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// Confirm confirms a pending order
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*order.Order).Confirm)
}

// Ship marks a confirmed order as shipped
func (s *Service) Ship(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*order.Order).Ship)
}

// Deliver marks a shipped order as delivered
func (s *Service) Deliver(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*order.Order).Deliver)
}

// Cancel cancels an order with a reason
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req CancelOrderRequest) (*OrderResponse, error) {
	return s.transition(ctx, id, func(o *order.Order) error {
		return o.Cancel(req.Reason)
	})
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, op func(*order.Order) error) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(o); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}
