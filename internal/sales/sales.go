// Package sales derives revenue figures and rankings from the order
// collection. Every function recomputes from scratch.
package sales

import (
	"sort"
	"time"

	"chokokon/internal/models"

	"github.com/shopspring/decimal"
)

// RecentLimit is how many orders the recent sales list keeps.
const RecentLimit = 5

var hundred = decimal.NewFromInt(100)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Previous returns the calendar month before m.
func (m Month) Previous() Month {
	return m.Add(-1)
}

func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return MonthOf(t)
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// ParseMonth reads a yyyy-MM month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// MonthlySales sums the totals of orders placed in m. Orders with an
// unreadable date are left out.
func MonthlySales(orders []models.Order, m Month) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if t, ok := o.ParsedOrderDate(); ok && m.Contains(t) {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}

// Growth is the percentage change from previous to current. A previous
// value of zero yields 100.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return hundred
	}
	return current.Sub(previous).Mul(hundred).DivRound(previous, 2)
}

type RecentSale struct {
	OrderID      string             `json:"order_id"`
	CustomerName string             `json:"customer_name"`
	OrderDate    string             `json:"order_date"`
	Status       models.OrderStatus `json:"status"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Products     []string           `json:"products"`
}

// RecentSales returns the newest orders by order date, ties kept in
// collection order. Orders with an unreadable date sort last.
func RecentSales(orders []models.Order, products []models.Product) []RecentSale {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sorted[i].ParsedOrderDate()
		tj, okj := sorted[j].ParsedOrderDate()
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	if len(sorted) > RecentLimit {
		sorted = sorted[:RecentLimit]
	}

	out := make([]RecentSale, 0, len(sorted))
	for _, o := range sorted {
		names := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			names = append(names, models.ProductName(products, item.ProductID))
		}
		out = append(out, RecentSale{
			OrderID:      o.ID,
			CustomerName: o.CustomerName,
			OrderDate:    o.OrderDate,
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
			Products:     names,
		})
	}
	return out
}

type ProductSales struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// PopularProducts ranks every product by units sold across all orders.
// Revenue uses the unit price captured on each item.
func PopularProducts(orders []models.Order, products []models.Product) []ProductSales {
	out := make([]ProductSales, 0, len(products))
	for _, p := range products {
		ps := ProductSales{ProductID: p.ID, Name: p.Name, TotalRevenue: decimal.Zero}
		for _, o := range orders {
			for _, item := range o.Items {
				if item.ProductID != p.ID {
					continue
				}
				ps.TotalSold += item.Quantity
				ps.TotalRevenue = ps.TotalRevenue.Add(item.LineTotal())
			}
		}
		out = append(out, ps)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSold > out[j].TotalSold
	})
	return out
}

// TotalCustomers counts distinct customer names, compared exactly.
func TotalCustomers(orders []models.Order) int {
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		seen[o.CustomerName] = struct{}{}
	}
	return len(seen)
}

type StatusCount struct {
	Status     models.OrderStatus `json:"status"`
	Count      int                `json:"count"`
	Percentage decimal.Decimal    `json:"percentage"`
}

// StatusBreakdown counts orders per status, listing all four statuses.
func StatusBreakdown(orders []models.Order) []StatusCount {
	counts := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}
	total := decimal.NewFromInt(int64(len(orders)))

	out := make([]StatusCount, 0, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		sc := StatusCount{Status: s, Count: counts[s], Percentage: decimal.Zero}
		if len(orders) > 0 {
			sc.Percentage = decimal.NewFromInt(int64(sc.Count)).Mul(hundred).DivRound(total, 2)
		}
		out = append(out, sc)
	}
	return out
}
