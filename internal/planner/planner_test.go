package planner

import (
	"testing"

	"chokokon/internal/models"

	"github.com/shopspring/decimal"
)

func openOrder(id, delivery string, status models.OrderStatus, items ...models.OrderItem) models.Order {
	return models.Order{ID: id, DeliveryDate: delivery, Status: status, Items: items}
}

func item(product string, qty int) models.OrderItem {
	return models.OrderItem{ProductID: product, Quantity: qty, UnitPrice: decimal.NewFromInt(1)}
}

var products = []models.Product{
	{ID: "2", Name: "Truffled Cone"},
	{ID: "3", Name: "Coxinha"},
}

func TestBuildSumsPerDateAndTotal(t *testing.T) {
	orders := []models.Order{
		openOrder("a", "2023-05-18", models.StatusPending, item("3", 5)),
		openOrder("b", "2023-05-18", models.StatusProcessing, item("3", 3), item("2", 4)),
		openOrder("c", "2023-05-20", models.StatusPending, item("3", 10)),
	}

	plan := Build(orders, products)
	if len(plan.Days) != 2 {
		t.Fatalf("expected 2 delivery days, got %d", len(plan.Days))
	}

	day := plan.Days[0]
	if day.Date != "2023-05-18" || day.TotalOrders != 2 || len(day.Orders) != 2 {
		t.Fatalf("unexpected first day %+v", day)
	}
	if got := day.Quantity("3"); got != 8 {
		t.Fatalf("expected 8 of product 3 on 2023-05-18, got %d", got)
	}
	if day.Products[0].ProductID != "3" || day.Products[1].Name != "Truffled Cone" {
		t.Fatalf("unexpected product order %+v", day.Products)
	}
	if got := plan.Total("3"); got != 18 {
		t.Fatalf("expected grand total 18 for product 3, got %d", got)
	}
	if got := plan.Total("2"); got != 4 {
		t.Fatalf("expected grand total 4 for product 2, got %d", got)
	}
}

func TestBuildSkipsClosedOrders(t *testing.T) {
	orders := []models.Order{
		openOrder("a", "2023-05-12", models.StatusCompleted, item("3", 50)),
		openOrder("b", "2023-05-12", models.StatusCancelled, item("3", 50)),
		openOrder("c", "2023-05-25", models.StatusPending, item("ghost", 2)),
		openOrder("d", "2023-05-01", models.StatusProcessing, item("2", 1)),
	}

	plan := Build(orders, products)
	if len(plan.Days) != 2 || plan.Days[0].Date != "2023-05-01" || plan.Days[1].Date != "2023-05-25" {
		t.Fatalf("unexpected days %+v", plan.Days)
	}
	if plan.Total("3") != 0 {
		t.Fatalf("closed orders must not be planned")
	}
	if name := plan.Days[1].Products[0].Name; name != models.UnknownProductLabel {
		t.Fatalf("expected fallback name, got %q", name)
	}
}

func TestBuildEmpty(t *testing.T) {
	plan := Build(nil, nil)
	if len(plan.Days) != 0 || len(plan.Totals) != 0 {
		t.Fatalf("expected an empty plan, got %+v", plan)
	}
}
