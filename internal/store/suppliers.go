package store

import (
	"context"

	"chokokon/internal/models"
	"chokokon/internal/utils"
)

func (s *Store) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return list[models.Supplier](ctx, s.db)
}

func (s *Store) SupplierPage(ctx context.Context, n int) (Page[models.Supplier], error) {
	return page[models.Supplier](ctx, s.db, n)
}

func (s *Store) GetSupplier(ctx context.Context, id string) (models.Supplier, error) {
	return get[models.Supplier](ctx, s.db, id)
}

func (s *Store) CreateSupplier(ctx context.Context, sup models.Supplier) (models.Supplier, error) {
	sup.ID = utils.NextID()
	if err := s.db.WithContext(ctx).Create(&sup).Error; err != nil {
		return models.Supplier{}, err
	}
	return s.GetSupplier(ctx, sup.ID)
}

func (s *Store) UpdateSupplier(ctx context.Context, id string, sup models.Supplier) (models.Supplier, error) {
	sup.ID = id
	if err := replace(s.db.WithContext(ctx), id, &sup); err != nil {
		return models.Supplier{}, err
	}
	return s.GetSupplier(ctx, id)
}

// DeleteSupplier leaves ingredients that point at the supplier untouched.
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	return remove[models.Supplier](ctx, s.db, id, nil, "")
}
