package store

import (
	"context"

	"chokokon/internal/models"
	"chokokon/internal/utils"

	"github.com/shopspring/decimal"
)

func (s *Store) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return list[models.Ingredient](ctx, s.db)
}

func (s *Store) IngredientPage(ctx context.Context, n int) (Page[models.Ingredient], error) {
	return page[models.Ingredient](ctx, s.db, n)
}

func (s *Store) GetIngredient(ctx context.Context, id string) (models.Ingredient, error) {
	return get[models.Ingredient](ctx, s.db, id)
}

func (s *Store) CreateIngredient(ctx context.Context, ing models.Ingredient) (models.Ingredient, error) {
	ing.ID = utils.NextID()
	if err := s.db.WithContext(ctx).Create(&ing).Error; err != nil {
		return models.Ingredient{}, err
	}
	return s.GetIngredient(ctx, ing.ID)
}

func (s *Store) UpdateIngredient(ctx context.Context, id string, ing models.Ingredient) (models.Ingredient, error) {
	ing.ID = id
	if err := replace(s.db.WithContext(ctx), id, &ing); err != nil {
		return models.Ingredient{}, err
	}
	return s.GetIngredient(ctx, id)
}

// DeleteIngredient leaves recipe lines that reference it in place; they then
// contribute zero cost.
func (s *Store) DeleteIngredient(ctx context.Context, id string) error {
	return remove[models.Ingredient](ctx, s.db, id, nil, "")
}

// LowStockIngredients lists ingredients whose stock is at or below threshold.
func (s *Store) LowStockIngredients(ctx context.Context, threshold int) ([]models.Ingredient, error) {
	all, err := s.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}
	limit := decimal.NewFromInt(int64(threshold))
	out := []models.Ingredient{}
	for _, ing := range all {
		if ing.Stock.LessThanOrEqual(limit) {
			out = append(out, ing)
		}
	}
	return out, nil
}
