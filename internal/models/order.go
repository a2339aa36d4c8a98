package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout is the calendar date format used for order and delivery dates.
// Production planning relies on it sorting lexicographically.
const DateLayout = "2006-01-02"

// OrderItem snapshots the unit price at order time; it is never refreshed
// from the current product price.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   string          `gorm:"size:32;index;not null" json:"-"`
	ProductID string          `gorm:"size:32;not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

// LineTotal is quantity × unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID            string          `gorm:"primaryKey;size:32" json:"id"`
	CustomerName  string          `gorm:"size:150;not null" json:"customer_name"`
	CustomerPhone string          `gorm:"size:30;not null" json:"customer_phone"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	Status        OrderStatus     `gorm:"size:20;not null;default:'pending'" json:"status"`
	OrderDate     string          `gorm:"size:10;index" json:"order_date"`
	DeliveryDate  string          `gorm:"size:10;index" json:"delivery_date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (o Order) EntityID() string { return o.ID }

// ComputeTotal sums quantity × unit price over the items.
func (o Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// BeforeSave keeps the denormalized total in step with the items on every
// create and replace.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.TotalAmount = o.ComputeTotal()
	return nil
}

// ParsedOrderDate returns the order date, or ok=false when it is not a
// valid yyyy-MM-dd string.
func (o Order) ParsedOrderDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, o.OrderDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
