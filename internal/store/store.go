// Package store holds the five dashboard collections. Records are appended
// on create, replaced whole on update and filtered out on delete; nothing
// enforces references between collections.
package store

import (
	"context"
	"errors"
	"fmt"

	"chokokon/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// PageSize is the fixed page length of the paginated list views.
const PageSize = 5

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Page is one slice of a paginated collection.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Snapshot is a full copy of every collection, in collection order.
type Snapshot struct {
	Suppliers   []models.Supplier
	Ingredients []models.Ingredient
	Recipes     []models.Recipe
	Products    []models.Product
	Orders      []models.Order
}

type scope func(*gorm.DB) *gorm.DB

func preload(assoc string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(assoc, func(tx *gorm.DB) *gorm.DB { return tx.Order("id") })
	}
}

var (
	withRecipeIngredients = preload("Ingredients")
	withComponents        = preload("Components")
	withItems             = preload("Items")
)

func list[T any](ctx context.Context, db *gorm.DB, scopes ...scope) ([]T, error) {
	out := []T{}
	q := db.WithContext(ctx)
	for _, s := range scopes {
		q = s(q)
	}
	if err := q.Order("rowid").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func page[T any](ctx context.Context, db *gorm.DB, n int, scopes ...scope) (Page[T], error) {
	if n < 1 {
		n = 1
	}
	var model T
	var total int64
	if err := db.WithContext(ctx).Model(&model).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	out := []T{}
	q := db.WithContext(ctx)
	for _, s := range scopes {
		q = s(q)
	}
	if err := q.Order("rowid").Limit(PageSize).Offset((n - 1) * PageSize).Find(&out).Error; err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Data:       out,
		Total:      total,
		Page:       n,
		Limit:      PageSize,
		TotalPages: int((total + PageSize - 1) / PageSize),
	}, nil
}

func get[T any](ctx context.Context, db *gorm.DB, id string, scopes ...scope) (T, error) {
	var out T
	q := db.WithContext(ctx)
	for _, s := range scopes {
		q = s(q)
	}
	err := q.Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return out, err
}

func exists[T any](tx *gorm.DB, id string) error {
	var model T
	var n int64
	if err := tx.Model(&model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// replace overwrites every column of an existing parent row. Nested
// sequences are handled by the caller.
func replace[T any](tx *gorm.DB, id string, rec *T) error {
	if err := exists[T](tx, id); err != nil {
		return err
	}
	return tx.Omit(clause.Associations, "CreatedAt").Save(rec).Error
}

// remove deletes the parent row and, when childModel is set, its nested rows.
// Deleting an unknown id changes nothing and is not an error.
func remove[T any](ctx context.Context, db *gorm.DB, id string, childModel interface{}, fk string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if childModel != nil {
			if err := tx.Where(fk+" = ?", id).Delete(childModel).Error; err != nil {
				return err
			}
		}
		var model T
		return tx.Where("id = ?", id).Delete(&model).Error
	})
}

// Snapshot loads every collection for the aggregators.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Suppliers, err = s.ListSuppliers(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Ingredients, err = s.ListIngredients(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Recipes, err = s.ListRecipes(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Products, err = s.ListProducts(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Orders, err = s.ListOrders(ctx, ""); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Counts returns the number of records per collection.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	tables := map[string]interface{}{
		"suppliers":   &models.Supplier{},
		"ingredients": &models.Ingredient{},
		"recipes":     &models.Recipe{},
		"products":    &models.Product{},
		"orders":      &models.Order{},
	}
	out := make(map[string]int64, len(tables))
	for name, model := range tables {
		var n int64
		if err := s.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}
