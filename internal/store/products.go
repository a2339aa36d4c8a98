package store

import (
	"context"

	"chokokon/internal/models"
	"chokokon/internal/utils"

	"gorm.io/gorm"
)

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	return list[models.Product](ctx, s.db, withComponents)
}

func (s *Store) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return get[models.Product](ctx, s.db, id, withComponents)
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = utils.NextID()
	for i := range p.Components {
		p.Components[i].ID = 0
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Product{}, err
	}
	return s.GetProduct(ctx, p.ID)
}

// UpdateProduct replaces the product and its component list. Existing order
// items keep the unit price they were placed with.
func (s *Store) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	p.ID = id
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replace(tx, id, &p); err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductComponent{}).Error; err != nil {
			return err
		}
		if len(p.Components) == 0 {
			return nil
		}
		for i := range p.Components {
			p.Components[i].ID = 0
			p.Components[i].ProductID = id
		}
		return tx.Create(&p.Components).Error
	})
	if err != nil {
		return models.Product{}, err
	}
	return s.GetProduct(ctx, id)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return remove[models.Product](ctx, s.db, id, &models.ProductComponent{}, "product_id")
}
