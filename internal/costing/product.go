package costing

import (
	"chokokon/internal/models"

	"github.com/shopspring/decimal"
)

type ComponentCost struct {
	Name       string          `json:"name"`
	RecipeID   string          `json:"recipe_id"`
	RecipeName string          `json:"recipe_name"`
	Missing    bool            `json:"missing,omitempty"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// Breakdown is each cost bucket as a percentage of the total, rounded to
// two places.
type Breakdown struct {
	IngredientPct decimal.Decimal `json:"ingredient_pct"`
	LaborPct      decimal.Decimal `json:"labor_pct"`
	OverheadPct   decimal.Decimal `json:"overhead_pct"`
}

type ProductCost struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Components     []ComponentCost `json:"components"`
	IngredientCost decimal.Decimal `json:"ingredient_cost"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	OverheadCost   decimal.Decimal `json:"overhead_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Breakdown      *Breakdown      `json:"breakdown"`
}

// ForProduct sums the full batch cost of every component recipe. Components
// are not scaled: each one contributes its recipe's whole batch. A component
// whose recipe is gone contributes zero and is flagged as missing.
func ForProduct(p models.Product, recipes []models.Recipe, ingredients []models.Ingredient) ProductCost {
	idx := models.IndexByID(ingredients)
	out := ProductCost{
		ProductID:      p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Components:     make([]ComponentCost, 0, len(p.Components)),
		IngredientCost: decimal.Zero,
		LaborCost:      decimal.Zero,
		OverheadCost:   decimal.Zero,
		TotalCost:      decimal.Zero,
	}

	for _, comp := range p.Components {
		r, ok := models.FindByID(recipes, comp.RecipeID)
		if !ok {
			out.Components = append(out.Components, ComponentCost{
				Name:       comp.Name,
				RecipeID:   comp.RecipeID,
				RecipeName: models.UnknownRecipeLabel,
				Missing:    true,
				TotalCost:  decimal.Zero,
			})
			continue
		}

		// batch cost does not depend on yield
		ingredientCost := IngredientCost(r, idx)
		total := ingredientCost.Add(r.LaborCost).Add(r.OverheadCost)

		out.IngredientCost = out.IngredientCost.Add(ingredientCost)
		out.LaborCost = out.LaborCost.Add(r.LaborCost)
		out.OverheadCost = out.OverheadCost.Add(r.OverheadCost)
		out.TotalCost = out.TotalCost.Add(total)
		out.Components = append(out.Components, ComponentCost{
			Name:       comp.Name,
			RecipeID:   r.ID,
			RecipeName: r.Name,
			TotalCost:  total,
		})
	}

	out.Breakdown = NewBreakdown(out.IngredientCost, out.LaborCost, out.OverheadCost)
	return out
}

// NewBreakdown returns nil when the total is zero.
func NewBreakdown(ingredient, labor, overhead decimal.Decimal) *Breakdown {
	total := ingredient.Add(labor).Add(overhead)
	if total.IsZero() {
		return nil
	}
	pct := func(v decimal.Decimal) decimal.Decimal {
		return v.Mul(hundred).DivRound(total, 2)
	}
	return &Breakdown{
		IngredientPct: pct(ingredient),
		LaborPct:      pct(labor),
		OverheadPct:   pct(overhead),
	}
}
