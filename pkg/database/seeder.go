package database

import (
	"fmt"
	"log"

	"chokokon/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixtures is the demo data the dashboard starts with.
type Fixtures struct {
	Suppliers   []models.Supplier
	Ingredients []models.Ingredient
	Recipes     []models.Recipe
	Products    []models.Product
	Orders      []models.Order
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ref(s string) *string { return &s }

func FixtureData() Fixtures {
	return Fixtures{
		Suppliers: []models.Supplier{
			{ID: "1", Name: "Distribuidora ABC", ContactName: "João Silva", Phone: "(11) 98765-4321", Email: "contato@abc.com", Address: "Rua Exemplo, 123"},
			{ID: "2", Name: "Atacadista XYZ", ContactName: "Maria Oliveira", Phone: "(11) 91234-5678", Email: "vendas@xyz.com", Address: "Av. Exemplo, 456"},
			{ID: "3", Name: "Importadora Global", ContactName: "Carlos Santos", Phone: "(11) 99876-5432", Email: "global@email.com", Address: "Rua Comercial, 789"},
		},
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Farinha", Unit: "kg", CostPerUnit: d("2.5"), Stock: d("10"), SupplierID: ref("1")},
			{ID: "2", Name: "Açúcar", Unit: "kg", CostPerUnit: d("3.0"), Stock: d("8"), SupplierID: ref("1")},
			{ID: "3", Name: "Chocolate", Unit: "kg", CostPerUnit: d("15.0"), Stock: d("5"), SupplierID: ref("2")},
			{ID: "4", Name: "Manteiga", Unit: "kg", CostPerUnit: d("12.0"), Stock: d("4"), SupplierID: ref("3")},
			{ID: "5", Name: "Ovos", Unit: "unidade", CostPerUnit: d("0.5"), Stock: d("60"), SupplierID: ref("3")},
		},
		Recipes: []models.Recipe{
			{ID: "1", Name: "Mini Cake Base", Yield: 4, LaborCost: d("10"), OverheadCost: d("5"), Ingredients: []models.RecipeIngredient{
				{IngredientID: "1", Quantity: d("0.25")},
				{IngredientID: "2", Quantity: d("0.2")},
				{IngredientID: "3", Quantity: d("0.1")},
				{IngredientID: "4", Quantity: d("0.15")},
				{IngredientID: "5", Quantity: d("3")},
			}},
			{ID: "2", Name: "Cone Base", Yield: 8, LaborCost: d("3"), OverheadCost: d("1"), Ingredients: []models.RecipeIngredient{
				{IngredientID: "1", Quantity: d("0.1")},
				{IngredientID: "2", Quantity: d("0.05")},
			}},
			{ID: "3", Name: "Chocolate Stuffing", Yield: 8, LaborCost: d("5"), OverheadCost: d("2"), Ingredients: []models.RecipeIngredient{
				{IngredientID: "3", Quantity: d("0.15")},
				{IngredientID: "4", Quantity: d("0.05")},
			}},
			{ID: "4", Name: "Coxinha Dough", Yield: 10, LaborCost: d("15"), OverheadCost: d("5"), Ingredients: []models.RecipeIngredient{
				{IngredientID: "1", Quantity: d("0.3")},
				{IngredientID: "4", Quantity: d("0.1")},
				{IngredientID: "5", Quantity: d("2")},
			}},
			{ID: "5", Name: "Brownie Base", Yield: 12, LaborCost: d("12"), OverheadCost: d("6"), Ingredients: []models.RecipeIngredient{
				{IngredientID: "1", Quantity: d("0.2")},
				{IngredientID: "2", Quantity: d("0.25")},
				{IngredientID: "3", Quantity: d("0.3")},
				{IngredientID: "4", Quantity: d("0.2")},
				{IngredientID: "5", Quantity: d("4")},
			}},
		},
		Products: []models.Product{
			{ID: "1", Name: "Mini Cake", Description: "Delicious mini chocolate cake with rich flavor", Price: d("15.99"),
				Components: []models.ProductComponent{{RecipeID: "1", Name: "Cake Base"}}},
			{ID: "2", Name: "Truffled Cone", Description: "Crispy cone filled with chocolate truffle", Price: d("12.5"),
				Components: []models.ProductComponent{{RecipeID: "2", Name: "Cone Base"}, {RecipeID: "3", Name: "Chocolate Stuffing"}}},
			{ID: "3", Name: "Coxinha", Description: "Traditional Brazilian snack with a crispy exterior", Price: d("5.99"),
				Components: []models.ProductComponent{{RecipeID: "4", Name: "Dough"}}},
			{ID: "4", Name: "Brownie", Description: "Rich chocolate brownie with a fudgy center", Price: d("8.99"),
				Components: []models.ProductComponent{{RecipeID: "5", Name: "Brownie Base"}}},
		},
		Orders: []models.Order{
			{ID: "1", CustomerName: "Maria Silva", CustomerPhone: "(11) 98765-4321", Status: models.StatusCompleted,
				OrderDate: "2023-05-10", DeliveryDate: "2023-05-12", Notes: "Birthday celebration",
				Items: []models.OrderItem{{ProductID: "1", Quantity: 2, UnitPrice: d("15.99")}, {ProductID: "4", Quantity: 6, UnitPrice: d("8.99")}}},
			{ID: "2", CustomerName: "João Oliveira", CustomerPhone: "(11) 91234-5678", Status: models.StatusPending,
				OrderDate: "2023-05-15", DeliveryDate: "2023-05-18", Notes: "Corporate event",
				Items: []models.OrderItem{{ProductID: "2", Quantity: 10, UnitPrice: d("12.5")}, {ProductID: "3", Quantity: 15, UnitPrice: d("5.99")}}},
			{ID: "3", CustomerName: "Ana Pereira", CustomerPhone: "(11) 99876-5432", Status: models.StatusCompleted,
				OrderDate: "2023-05-01", DeliveryDate: "2023-05-03", Notes: "Family gathering",
				Items: []models.OrderItem{{ProductID: "1", Quantity: 5, UnitPrice: d("15.99")}, {ProductID: "2", Quantity: 8, UnitPrice: d("12.5")}}},
			{ID: "4", CustomerName: "Carlos Santos", CustomerPhone: "(11) 98765-1234", Status: models.StatusCompleted,
				OrderDate: "2023-05-05", DeliveryDate: "2023-05-07", Notes: "Office party",
				Items: []models.OrderItem{{ProductID: "4", Quantity: 12, UnitPrice: d("8.99")}}},
			{ID: "5", CustomerName: "Fernanda Lima", CustomerPhone: "(11) 91234-9876", Status: models.StatusProcessing,
				OrderDate: "2023-05-18", DeliveryDate: "2023-05-20", Notes: "School event",
				Items: []models.OrderItem{{ProductID: "3", Quantity: 20, UnitPrice: d("5.99")}}},
		},
	}
}

// Seed loads the fixtures into an empty database. A database that already
// holds suppliers is left alone.
func Seed(db *gorm.DB, f Fixtures) error {
	var count int64
	if err := db.Model(&models.Supplier{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count suppliers: %w", err)
	}
	if count > 0 {
		log.Println("Fixtures already present, skipping seed.")
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(f.Suppliers) > 0 {
			if err := tx.Create(&f.Suppliers).Error; err != nil {
				return fmt.Errorf("seed suppliers: %w", err)
			}
		}
		if len(f.Ingredients) > 0 {
			if err := tx.Create(&f.Ingredients).Error; err != nil {
				return fmt.Errorf("seed ingredients: %w", err)
			}
		}
		// one record at a time keeps nested sequences in submission order
		for i := range f.Recipes {
			if err := tx.Create(&f.Recipes[i]).Error; err != nil {
				return fmt.Errorf("seed recipe %s: %w", f.Recipes[i].ID, err)
			}
		}
		for i := range f.Products {
			if err := tx.Create(&f.Products[i]).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", f.Products[i].ID, err)
			}
		}
		for i := range f.Orders {
			if err := tx.Create(&f.Orders[i]).Error; err != nil {
				return fmt.Errorf("seed order %s: %w", f.Orders[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Println("Fixtures seeded successfully.")
	return nil
}
