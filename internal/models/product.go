package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductComponent associates a named role ("Filling", "Base") with one
// recipe. It carries no quantity of its own.
type ProductComponent struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID string `gorm:"size:32;index;not null" json:"-"`
	RecipeID  string `gorm:"size:32;not null" json:"recipe_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
}

type Product struct {
	ID          string             `gorm:"primaryKey;size:32" json:"id"`
	Name        string             `gorm:"size:150;not null" json:"name"`
	Description string             `gorm:"type:text" json:"description"`
	Components  []ProductComponent `gorm:"foreignKey:ProductID" json:"components"`
	Price       decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string             `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (p Product) EntityID() string { return p.ID }
