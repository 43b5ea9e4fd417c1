package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Status represents the status of a customer order
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// Item represents a line item in a customer order
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates a new order line item
func NewItem(orderID, productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Item{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order represents a customer order aggregate root.
// It manages the order lifecycle from placement to delivery.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName   string          `gorm:"type:varchar(100);not null"`
	CustomerEmail  string          `gorm:"type:varchar(200)"`
	Items          []Item          `gorm:"foreignKey:OrderID"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PayableAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CouponCode     string          `gorm:"type:varchar(50)"`
	Status         Status          `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Remark         string          `gorm:"type:text"`
	ConfirmedAt    *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
	CancelReason   string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order
func NewOrder(orderNumber, customerName string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerName:      customerName,
		Items:             make([]Item, 0),
		TotalAmount:       decimal.Zero,
		DiscountAmount:    decimal.Zero,
		PayableAmount:     decimal.Zero,
		Status:            StatusPending,
	}, nil
}

// AddItem adds a line item to a pending order
func (o *Order) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Items can only be added to pending orders")
	}

	item, err := NewItem(o.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.Items = append(o.Items, *item)
	o.recalculate()
	return nil
}

// RemoveItem removes a line item from a pending order
func (o *Order) RemoveItem(itemID uuid.UUID) error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Items can only be removed from pending orders")
	}

	for i, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.recalculate()
			return nil
		}
	}
	return shared.ErrNotFound
}

// ApplyDiscount applies an order-level discount from a coupon
func (o *Order) ApplyDiscount(couponCode string, amount decimal.Decimal) error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Discounts can only be applied to pending orders")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if amount.GreaterThan(o.TotalAmount) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed order total")
	}

	o.CouponCode = couponCode
	o.DiscountAmount = amount
	o.recalculate()
	return nil
}

// RemoveDiscount clears a previously applied coupon discount
func (o *Order) RemoveDiscount() error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Discounts can only be removed from pending orders")
	}

	o.CouponCode = ""
	o.DiscountAmount = decimal.Zero
	o.recalculate()
	return nil
}

// Confirm confirms a pending order
func (o *Order) Confirm() error {
	if !o.Status.CanTransitionTo(StatusConfirmed) {
		return shared.NewDomainError("INVALID_TRANSITION", "Order cannot be confirmed in status "+o.Status.String())
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Order must have at least one item")
	}

	now := time.Now()
	o.Status = StatusConfirmed
	o.ConfirmedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()
	return nil
}

// Ship marks a confirmed order as shipped
func (o *Order) Ship() error {
	if !o.Status.CanTransitionTo(StatusShipped) {
		return shared.NewDomainError("INVALID_TRANSITION", "Order cannot be shipped in status "+o.Status.String())
	}

	now := time.Now()
	o.Status = StatusShipped
	o.ShippedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()
	return nil
}

// Deliver marks a shipped order as delivered
func (o *Order) Deliver() error {
	if !o.Status.CanTransitionTo(StatusDelivered) {
		return shared.NewDomainError("INVALID_TRANSITION", "Order cannot be delivered in status "+o.Status.String())
	}

	now := time.Now()
	o.Status = StatusDelivered
	o.DeliveredAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()
	return nil
}

// Cancel cancels an order that has not shipped yet
func (o *Order) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return shared.NewDomainError("INVALID_TRANSITION", "Order cannot be cancelled in status "+o.Status.String())
	}

	now := time.Now()
	o.Status = StatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()
	return nil
}

func (o *Order) recalculate() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
	if o.DiscountAmount.GreaterThan(total) {
		o.DiscountAmount = total
	}
	o.PayableAmount = total.Sub(o.DiscountAmount)
	o.UpdatedAt = time.Now()
}

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindAll finds all orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order and its items
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
