package database

import (
	"testing"

	"chokokon/config"
	"chokokon/internal/models"
)

func TestConnectAndSeed(t *testing.T) {
	db, err := Connect(config.DatabaseConfig{DSN: MemoryDSN(t.Name()), LogLevel: "silent"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Seed(db, FixtureData()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	counts := map[string]struct {
		model interface{}
		want  int64
	}{
		"suppliers":   {&models.Supplier{}, 3},
		"ingredients": {&models.Ingredient{}, 5},
		"recipes":     {&models.Recipe{}, 5},
		"products":    {&models.Product{}, 4},
		"orders":      {&models.Order{}, 5},
		"order_items": {&models.OrderItem{}, 8},
	}
	for name, tc := range counts {
		var got int64
		if err := db.Model(tc.model).Count(&got).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected %d rows, got %d", name, tc.want, got)
		}
	}

	var order models.Order
	if err := db.First(&order, "id = ?", "2").Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.TotalAmount.String() != "214.85" {
		t.Fatalf("expected seeded total 214.85, got %s", order.TotalAmount)
	}

	// seeding twice is a no-op
	if err := Seed(db, FixtureData()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var suppliers int64
	db.Model(&models.Supplier{}).Count(&suppliers)
	if suppliers != 3 {
		t.Fatalf("reseed duplicated suppliers: %d", suppliers)
	}
}
