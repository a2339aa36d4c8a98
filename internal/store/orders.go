package store

import (
	"context"
	"errors"
	"fmt"

	"chokokon/internal/models"
	"chokokon/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOrders returns every order, or only those in status when it is set.
func (s *Store) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	if status == "" {
		return list[models.Order](ctx, s.db, withItems)
	}
	return list[models.Order](ctx, s.db, withItems, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

func (s *Store) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return get[models.Order](ctx, s.db, id, withItems)
}

// CreateOrder stores a new order. The total is derived from the items.
func (s *Store) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = utils.NextID()
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	for i := range o.Items {
		o.Items[i].ID = 0
	}
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(ctx, o.ID)
}

// UpdateOrder replaces the order and its items.
func (s *Store) UpdateOrder(ctx context.Context, id string, o models.Order) (models.Order, error) {
	o.ID = id
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replace(tx, id, &o); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		for i := range o.Items {
			o.Items[i].ID = 0
			o.Items[i].OrderID = id
		}
		return tx.Create(&o.Items).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(ctx, id)
}

// SetOrderStatus changes only the status of an order. With strict set the
// move must follow the transition table.
func (s *Store) SetOrderStatus(ctx context.Context, id string, status models.OrderStatus, strict bool) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, status)
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		err := withItems(tx).Where("id = ?", id).Take(&o).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		if strict {
			if err := models.CheckTransition(o.Status, status); err != nil {
				return err
			}
		}
		o.Status = status
		return tx.Omit(clause.Associations).Save(&o).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return s.GetOrder(ctx, id)
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	return remove[models.Order](ctx, s.db, id, &models.OrderItem{}, "order_id")
}
