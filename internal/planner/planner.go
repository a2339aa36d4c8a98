// Package planner groups open orders by delivery date into production
// requirements.
package planner

import (
	"sort"

	"chokokon/internal/models"
)

type ProductQuantity struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type DayPlan struct {
	Date        string            `json:"date"`
	Products    []ProductQuantity `json:"products"`
	TotalOrders int               `json:"total_orders"`
	Orders      []models.Order    `json:"orders"`
}

type Plan struct {
	Days   []DayPlan         `json:"days"`
	Totals []ProductQuantity `json:"totals"`
}

// Quantity returns the planned quantity of a product on the day, or zero.
func (d DayPlan) Quantity(productID string) int {
	for _, pq := range d.Products {
		if pq.ProductID == productID {
			return pq.Quantity
		}
	}
	return 0
}

// Total returns the quantity of a product across every day, or zero.
func (p Plan) Total(productID string) int {
	for _, pq := range p.Totals {
		if pq.ProductID == productID {
			return pq.Quantity
		}
	}
	return 0
}

// Build keeps pending and processing orders, groups them by exact delivery
// date and sums item quantities per product. Days are sorted by date
// string; products keep the order they are first seen in.
func Build(orders []models.Order, products []models.Product) Plan {
	days := map[string]*tally{}
	grand := newTally()
	for _, o := range orders {
		if !o.Status.Open() {
			continue
		}
		day, ok := days[o.DeliveryDate]
		if !ok {
			day = newTally()
			days[o.DeliveryDate] = day
		}
		day.orders = append(day.orders, o)
		for _, it := range o.Items {
			day.add(it.ProductID, it.Quantity)
		}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	plan := Plan{Days: make([]DayPlan, 0, len(dates))}
	for _, date := range dates {
		day := days[date]
		plan.Days = append(plan.Days, DayPlan{
			Date:        date,
			Products:    day.quantities(products),
			TotalOrders: len(day.orders),
			Orders:      day.orders,
		})
		for _, id := range day.ids {
			grand.add(id, day.qty[id])
		}
	}
	plan.Totals = grand.quantities(products)
	return plan
}

type tally struct {
	ids    []string
	qty    map[string]int
	orders []models.Order
}

func newTally() *tally {
	return &tally{qty: map[string]int{}}
}

func (t *tally) add(id string, n int) {
	if _, ok := t.qty[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.qty[id] += n
}

func (t *tally) quantities(products []models.Product) []ProductQuantity {
	out := make([]ProductQuantity, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, ProductQuantity{ProductID: id, Name: models.ProductName(products, id), Quantity: t.qty[id]})
	}
	return out
}
