package sales

import (
	"chokokon/internal/models"

	"github.com/shopspring/decimal"
)

type Overview struct {
	Month          string          `json:"month"`
	MonthlySales   decimal.Decimal `json:"monthly_sales"`
	PreviousSales  decimal.Decimal `json:"previous_sales"`
	Growth         decimal.Decimal `json:"growth"`
	TotalOrders    int             `json:"total_orders"`
	PendingOrders  int             `json:"pending_orders"`
	TotalCustomers int             `json:"total_customers"`
	BestSeller     *ProductSales   `json:"best_seller"`
}

// NewOverview builds the headline figures for month m.
func NewOverview(orders []models.Order, products []models.Product, m Month) Overview {
	current := MonthlySales(orders, m)
	previous := MonthlySales(orders, m.Previous())

	pending := 0
	for _, o := range orders {
		if o.Status == models.StatusPending {
			pending++
		}
	}

	ov := Overview{
		Month:          m.String(),
		MonthlySales:   current,
		PreviousSales:  previous,
		Growth:         Growth(current, previous),
		TotalOrders:    len(orders),
		PendingOrders:  pending,
		TotalCustomers: TotalCustomers(orders),
	}
	// the top ranked product is shown even when nothing sold
	if ranked := PopularProducts(orders, products); len(ranked) > 0 {
		best := ranked[0]
		ov.BestSeller = &best
	}
	return ov
}
