package sales

import (
	"chokokon/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultSeriesMonths is the length of the sales chart.
const DefaultSeriesMonths = 6

type ProductSeries struct {
	ProductID string            `json:"product_id"`
	Name      string            `json:"name"`
	Sales     []decimal.Decimal `json:"sales"`
}

// Series holds monthly revenue, oldest month first.
type Series struct {
	Months   []string          `json:"months"`
	Labels   []string          `json:"labels"`
	Totals   []decimal.Decimal `json:"totals"`
	Products []ProductSeries   `json:"products"`
}

// MonthlySeries covers the n months ending at ref. Products appear in the
// order they are first seen among the order items.
func MonthlySeries(orders []models.Order, products []models.Product, ref Month, n int) Series {
	if n < 1 {
		n = DefaultSeriesMonths
	}
	months := make([]Month, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, ref.Add(-i))
	}

	s := Series{
		Months: make([]string, 0, n),
		Labels: make([]string, 0, n),
		Totals: make([]decimal.Decimal, 0, n),
	}
	for _, m := range months {
		s.Months = append(s.Months, m.String())
		s.Labels = append(s.Labels, m.Month.String()[:3])
		s.Totals = append(s.Totals, MonthlySales(orders, m))
	}

	var ids []string
	seen := map[string]bool{}
	for _, o := range orders {
		for _, item := range o.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}

	s.Products = make([]ProductSeries, 0, len(ids))
	for _, id := range ids {
		ps := ProductSeries{ProductID: id, Name: models.ProductName(products, id), Sales: make([]decimal.Decimal, len(months))}
		for i, m := range months {
			total := decimal.Zero
			for _, o := range orders {
				t, ok := o.ParsedOrderDate()
				if !ok || !m.Contains(t) {
					continue
				}
				for _, item := range o.Items {
					if item.ProductID == id {
						total = total.Add(item.LineTotal())
					}
				}
			}
			ps.Sales[i] = total
		}
		s.Products = append(s.Products, ps)
	}
	return s
}
