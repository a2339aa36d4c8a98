// Package costing rolls ingredient prices up into recipe and product costs.
package costing

import (
	"errors"
	"fmt"

	"chokokon/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidYield = errors.New("recipe yield must be at least 1")

// Markup is the fixed 30% margin applied to the unit cost.
var Markup = decimal.RequireFromString("1.3")

var hundred = decimal.NewFromInt(100)

type RecipeCost struct {
	RecipeID       string          `json:"recipe_id"`
	Name           string          `json:"name"`
	Yield          int             `json:"yield"`
	IngredientCost decimal.Decimal `json:"ingredient_cost"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	OverheadCost   decimal.Decimal `json:"overhead_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
}

// IngredientCost sums cost per unit × quantity over the recipe lines.
// Lines whose ingredient no longer exists add nothing.
func IngredientCost(r models.Recipe, ingredients map[string]models.Ingredient) decimal.Decimal {
	total := decimal.Zero
	for _, line := range r.Ingredients {
		ing, ok := ingredients[line.IngredientID]
		if !ok {
			continue
		}
		total = total.Add(ing.CostPerUnit.Mul(line.Quantity))
	}
	return total
}

// ForRecipe computes the batch and unit cost of one recipe.
func ForRecipe(r models.Recipe, ingredients []models.Ingredient) (RecipeCost, error) {
	return forRecipe(r, models.IndexByID(ingredients))
}

func forRecipe(r models.Recipe, idx map[string]models.Ingredient) (RecipeCost, error) {
	if r.Yield < 1 {
		return RecipeCost{}, fmt.Errorf("%w: recipe %s has yield %d", ErrInvalidYield, r.ID, r.Yield)
	}

	ingredientCost := IngredientCost(r, idx)
	total := ingredientCost.Add(r.LaborCost).Add(r.OverheadCost)
	unit := total.DivRound(decimal.NewFromInt(int64(r.Yield)), 8)

	return RecipeCost{
		RecipeID:       r.ID,
		Name:           r.Name,
		Yield:          r.Yield,
		IngredientCost: ingredientCost,
		LaborCost:      r.LaborCost,
		OverheadCost:   r.OverheadCost,
		TotalCost:      total,
		UnitCost:       unit,
		SuggestedPrice: unit.Mul(Markup),
	}, nil
}

// AllRecipes computes the cost table for every recipe in collection order.
func AllRecipes(recipes []models.Recipe, ingredients []models.Ingredient) ([]RecipeCost, error) {
	idx := models.IndexByID(ingredients)
	out := make([]RecipeCost, 0, len(recipes))
	for _, r := range recipes {
		c, err := forRecipe(r, idx)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
