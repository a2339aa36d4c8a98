package store

import (
	"context"
	"errors"
	"testing"

	"chokokon/config"
	"chokokon/internal/models"
	"chokokon/pkg/database"

	"github.com/shopspring/decimal"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(config.DatabaseConfig{DSN: database.MemoryDSN(t.Name()), LogLevel: "silent"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := database.Seed(db, database.FixtureData()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	orders, err := s.ListOrders(ctx, "")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	ids := ""
	for _, o := range orders {
		ids += o.ID
	}
	if ids != "12345" {
		t.Fatalf("expected orders in insertion order, got %s", ids)
	}
	if len(orders[1].Items) != 2 || orders[1].Items[0].ProductID != "2" || orders[1].Items[1].ProductID != "3" {
		t.Fatalf("order items out of order: %+v", orders[1].Items)
	}

	created, err := s.CreateSupplier(ctx, models.Supplier{ID: "client-chosen", Name: "Novo"})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	if created.ID == "client-chosen" || created.ID == "" {
		t.Fatalf("expected a generated id, got %q", created.ID)
	}
	suppliers, _ := s.ListSuppliers(ctx)
	if last := suppliers[len(suppliers)-1]; last.ID != created.ID {
		t.Fatalf("new supplier should be last, got %s", last.ID)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	updated, err := s.UpdateRecipe(ctx, "2", models.Recipe{
		Name:  "Cone Base v2",
		Yield: 10,
		Ingredients: []models.RecipeIngredient{
			{IngredientID: "3", Quantity: decimal.RequireFromString("0.5")},
		},
	})
	if err != nil {
		t.Fatalf("update recipe: %v", err)
	}
	if updated.Name != "Cone Base v2" || updated.Yield != 10 {
		t.Fatalf("unexpected recipe %+v", updated)
	}
	if len(updated.Ingredients) != 1 || updated.Ingredients[0].IngredientID != "3" {
		t.Fatalf("ingredients not replaced: %+v", updated.Ingredients)
	}
	if !updated.LaborCost.IsZero() {
		t.Fatalf("omitted labor cost should be zero after replace, got %s", updated.LaborCost)
	}

	recipes, _ := s.ListRecipes(ctx)
	if recipes[1].ID != "2" {
		t.Fatalf("replace moved the record: position 1 holds %s", recipes[1].ID)
	}

	if _, err := s.UpdateRecipe(ctx, "missing", models.Recipe{Name: "x", Yield: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateOrderRecomputesTotal(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	o, err := s.GetOrder(ctx, "4")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	o.Items = append(o.Items, models.OrderItem{ProductID: "3", Quantity: 2, UnitPrice: decimal.RequireFromString("5.99")})
	o.TotalAmount = decimal.NewFromInt(1)

	got, err := s.UpdateOrder(ctx, "4", o)
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if want := decimal.RequireFromString("119.86"); !got.TotalAmount.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got.TotalAmount)
	}
}

func TestDeleteIsIdempotentAndLeavesReferences(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	if err := s.DeleteSupplier(ctx, "1"); err != nil {
		t.Fatalf("delete supplier: %v", err)
	}
	if err := s.DeleteSupplier(ctx, "1"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}

	suppliers, _ := s.ListSuppliers(ctx)
	if len(suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(suppliers))
	}
	flour, err := s.GetIngredient(ctx, "1")
	if err != nil {
		t.Fatalf("ingredient should survive supplier delete: %v", err)
	}
	if got := models.SupplierName(suppliers, flour.SupplierID); got != models.UnspecifiedLabel {
		t.Fatalf("expected %q, got %q", models.UnspecifiedLabel, got)
	}

	if err := s.DeleteOrder(ctx, "2"); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := s.GetOrder(ctx, "2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPagination(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := s.CreateIngredient(ctx, models.Ingredient{Name: "Extra", Unit: "g"}); err != nil {
			t.Fatalf("create ingredient: %v", err)
		}
	}

	first, err := s.IngredientPage(ctx, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if first.Page != 1 || len(first.Data) != PageSize || first.Total != 9 || first.TotalPages != 2 {
		t.Fatalf("unexpected first page %+v", first)
	}
	second, _ := s.IngredientPage(ctx, 2)
	if len(second.Data) != 4 || second.Data[0].Name != "Extra" {
		t.Fatalf("unexpected second page %+v", second)
	}
	beyond, _ := s.IngredientPage(ctx, 7)
	if len(beyond.Data) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(beyond.Data))
	}
}

func TestSetOrderStatus(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	o, err := s.SetOrderStatus(ctx, "2", models.StatusProcessing, true)
	if err != nil {
		t.Fatalf("pending -> processing: %v", err)
	}
	if o.Status != models.StatusProcessing || len(o.Items) != 2 || o.TotalAmount.String() != "214.85" {
		t.Fatalf("status change touched more than the status: %+v", o)
	}

	if _, err := s.SetOrderStatus(ctx, "1", models.StatusPending, true); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if _, err := s.SetOrderStatus(ctx, "1", models.StatusPending, false); err != nil {
		t.Fatalf("permissive mode should allow any status: %v", err)
	}
	if _, err := s.SetOrderStatus(ctx, "nope", models.StatusCompleted, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.SetOrderStatus(ctx, "1", "shipped", false); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected unknown status to be rejected, got %v", err)
	}

	pending, _ := s.ListOrders(ctx, models.StatusPending)
	if len(pending) != 1 || pending[0].ID != "1" {
		t.Fatalf("unexpected pending filter result %+v", pending)
	}
}

func TestLowStockAndCounts(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	low, err := s.LowStockIngredients(ctx, 5)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(low) != 2 || low[0].ID != "3" || low[1].ID != "4" {
		t.Fatalf("unexpected low stock list %+v", low)
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["orders"] != 5 || counts["products"] != 4 {
		t.Fatalf("unexpected counts %v", counts)
	}
}
