package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ingredient struct {
	ID          string          `gorm:"primaryKey;size:32" json:"id"`
	Name        string          `gorm:"size:150;not null" json:"name"`
	Unit        string          `gorm:"size:30;not null" json:"unit"`
	CostPerUnit decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"cost_per_unit"`
	Stock       decimal.Decimal `gorm:"type:decimal(12,4);default:0" json:"stock"`
	SupplierID  *string         `gorm:"size:32;index" json:"supplier_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (i Ingredient) EntityID() string { return i.ID }
