package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredient only exists nested inside a Recipe. Quantity is expressed
// in the referenced ingredient's unit.
type RecipeIngredient struct {
	ID           uint            `gorm:"primaryKey" json:"-"`
	RecipeID     string          `gorm:"size:32;index;not null" json:"-"`
	IngredientID string          `gorm:"size:32;not null" json:"ingredient_id"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"quantity"`
}

type Recipe struct {
	ID           string             `gorm:"primaryKey;size:32" json:"id"`
	Name         string             `gorm:"size:150;not null" json:"name"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Yield        int                `gorm:"not null;default:1" json:"yield"`
	LaborCost    decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"labor_cost"`
	OverheadCost decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"overhead_cost"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (r Recipe) EntityID() string { return r.ID }
