package store

import (
	"context"

	"chokokon/internal/models"
	"chokokon/internal/utils"

	"gorm.io/gorm"
)

func (s *Store) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return list[models.Recipe](ctx, s.db, withRecipeIngredients)
}

func (s *Store) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	return get[models.Recipe](ctx, s.db, id, withRecipeIngredients)
}

func (s *Store) CreateRecipe(ctx context.Context, r models.Recipe) (models.Recipe, error) {
	r.ID = utils.NextID()
	for i := range r.Ingredients {
		r.Ingredients[i].ID = 0
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return models.Recipe{}, err
	}
	return s.GetRecipe(ctx, r.ID)
}

// UpdateRecipe replaces the recipe and its whole ingredient list.
func (s *Store) UpdateRecipe(ctx context.Context, id string, r models.Recipe) (models.Recipe, error) {
	r.ID = id
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replace(tx, id, &r); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(r.Ingredients) == 0 {
			return nil
		}
		for i := range r.Ingredients {
			r.Ingredients[i].ID = 0
			r.Ingredients[i].RecipeID = id
		}
		return tx.Create(&r.Ingredients).Error
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe keeps product components that reference the recipe.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	return remove[models.Recipe](ctx, s.db, id, &models.RecipeIngredient{}, "recipe_id")
}
