package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderComputeTotal(t *testing.T) {
	order := Order{Items: []OrderItem{
		{ProductID: "1", Quantity: 2, UnitPrice: decimal.RequireFromString("15.99")},
		{ProductID: "4", Quantity: 6, UnitPrice: decimal.RequireFromString("8.99")},
	}}
	want := decimal.RequireFromString("85.92")
	if got := order.ComputeTotal(); !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}

	order.TotalAmount = decimal.NewFromInt(1)
	if err := order.BeforeSave(nil); err != nil {
		t.Fatalf("before save: %v", err)
	}
	if !order.TotalAmount.Equal(want) {
		t.Fatalf("BeforeSave should overwrite stale total, got %s", order.TotalAmount)
	}
}

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusProcessing, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusPending, StatusPending, true},
		{StatusPending, StatusCompleted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusProcessing, false},
		{StatusPending, OrderStatus("shipped"), false},
	}
	for _, tc := range cases {
		err := CheckTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestOpenStatuses(t *testing.T) {
	if !StatusPending.Open() || !StatusProcessing.Open() {
		t.Fatalf("pending and processing are open")
	}
	if StatusCompleted.Open() || StatusCancelled.Open() {
		t.Fatalf("completed and cancelled are not open")
	}
}

func TestLookupFallbacks(t *testing.T) {
	suppliers := []Supplier{{ID: "1", Name: "Distribuidora ABC"}}
	known, missing := "1", "9"

	if got := SupplierName(suppliers, &known); got != "Distribuidora ABC" {
		t.Fatalf("expected supplier name, got %q", got)
	}
	if got := SupplierName(suppliers, &missing); got != UnspecifiedLabel {
		t.Fatalf("expected fallback for dangling supplier, got %q", got)
	}
	if got := SupplierName(suppliers, nil); got != UnspecifiedLabel {
		t.Fatalf("expected fallback for nil supplier, got %q", got)
	}
	if got := ProductName(nil, "3"); got != UnknownProductLabel {
		t.Fatalf("expected product fallback, got %q", got)
	}
	recipes := []Recipe{{ID: "1", Name: "Cone Base"}}
	if got := RecipeName(recipes, "1"); got != "Cone Base" {
		t.Fatalf("expected recipe name, got %q", got)
	}
	if got := RecipeName(recipes, "9"); got != UnknownRecipeLabel {
		t.Fatalf("expected recipe fallback, got %q", got)
	}
	ingredients := []Ingredient{{ID: "1", Name: "Farinha"}}
	if got := IngredientName(ingredients, "1"); got != "Farinha" {
		t.Fatalf("expected ingredient name, got %q", got)
	}
	if got := IngredientName(ingredients, "gone"); got != UnknownLabel {
		t.Fatalf("expected ingredient fallback, got %q", got)
	}
	if _, ok := FindByID([]Recipe{{ID: "1"}}, "2"); ok {
		t.Fatalf("FindByID should report absence")
	}
}
