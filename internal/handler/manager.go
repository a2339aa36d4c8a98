package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"chokokon/internal/costing"
	"chokokon/internal/middleware"
	"chokokon/internal/planner"
	"chokokon/internal/sales"
	"chokokon/internal/store"

	"github.com/gin-gonic/gin"
)

// ManagerHandler serves the derived views: sales reports, production plan
// and the dashboard tabs.
type ManagerHandler struct {
	Store             *store.Store
	LowStockThreshold int
	Now               func() time.Time
}

func (h *ManagerHandler) month(c *gin.Context) (sales.Month, bool) {
	raw := c.Query("month")
	if raw == "" {
		now := time.Now
		if h.Now != nil {
			now = h.Now
		}
		return sales.MonthOf(now()), true
	}
	m, err := sales.ParseMonth(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be formatted as YYYY-MM"})
		return sales.Month{}, false
	}
	return m, true
}

func (h *ManagerHandler) snapshot(c *gin.Context) (store.Snapshot, bool) {
	snap, err := h.Store.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load collections")
		return store.Snapshot{}, false
	}
	return snap, true
}

func (h *ManagerHandler) GetOverview(c *gin.Context) {
	m, ok := h.month(c)
	if !ok {
		return
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sales.NewOverview(snap.Orders, snap.Products, m))
}

func (h *ManagerHandler) GetSalesReport(c *gin.Context) {
	m, ok := h.month(c)
	if !ok {
		return
	}
	months := sales.DefaultSeriesMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 24 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and 24"})
			return
		}
		months = n
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	current := sales.MonthlySales(snap.Orders, m)
	previous := sales.MonthlySales(snap.Orders, m.Previous())
	c.JSON(http.StatusOK, gin.H{
		"month":          m.String(),
		"monthly_sales":  current,
		"previous_sales": previous,
		"growth":         sales.Growth(current, previous),
		"series":         sales.MonthlySeries(snap.Orders, snap.Products, m, months),
	})
}

func (h *ManagerHandler) GetPopularProducts(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sales.PopularProducts(snap.Orders, snap.Products))
}

func (h *ManagerHandler) GetRecentSales(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sales.RecentSales(snap.Orders, snap.Products))
}

func (h *ManagerHandler) GetOrderStatus(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_orders": len(snap.Orders),
		"statuses":     sales.StatusBreakdown(snap.Orders),
	})
}

func (h *ManagerHandler) GetProductionPlan(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, planner.Build(snap.Orders, snap.Products))
}

// DashboardTabs lists the tabs of the dashboard page.
var DashboardTabs = []string{"overview", "ingredients", "recipes", "products", "orders", "suppliers", "production", "costs", "sales"}

// Dashboard renders one tab of the dashboard as JSON. The tab comes from
// the path (/dashboard/orders) or ?tab=, defaulting to the overview.
func (h *ManagerHandler) Dashboard(c *gin.Context) {
	tab := strings.Trim(c.Param("tab"), "/")
	if tab == "" {
		tab = c.DefaultQuery("tab", "overview")
	}
	m, ok := h.month(c)
	if !ok {
		return
	}
	page, err := pageParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var data interface{}
	switch tab {
	case "overview":
		data = gin.H{
			"overview":         sales.NewOverview(snap.Orders, snap.Products, m),
			"series":           sales.MonthlySeries(snap.Orders, snap.Products, m, sales.DefaultSeriesMonths),
			"recent_sales":     sales.RecentSales(snap.Orders, snap.Products),
			"popular_products": sales.PopularProducts(snap.Orders, snap.Products),
		}
	case "ingredients":
		result, err := h.Store.IngredientPage(ctx, page)
		if err != nil {
			respondError(c, err, "Failed to fetch ingredients")
			return
		}
		low, err := h.Store.LowStockIngredients(ctx, h.LowStockThreshold)
		if err != nil {
			respondError(c, err, "Failed to fetch alerts")
			return
		}
		data = gin.H{
			"ingredients": store.Page[IngredientView]{
				Data:       ingredientViews(result.Data, snap.Suppliers),
				Total:      result.Total,
				Page:       result.Page,
				Limit:      result.Limit,
				TotalPages: result.TotalPages,
			},
			"low_stock": ingredientViews(low, snap.Suppliers),
		}
	case "suppliers":
		result, err := h.Store.SupplierPage(ctx, page)
		if err != nil {
			respondError(c, err, "Failed to fetch suppliers")
			return
		}
		data = result
	case "recipes":
		data = recipeViews(snap.Recipes, snap.Ingredients)
	case "products":
		costs := make([]costing.ProductCost, 0, len(snap.Products))
		for _, p := range snap.Products {
			costs = append(costs, costing.ForProduct(p, snap.Recipes, snap.Ingredients))
		}
		data = gin.H{"products": snap.Products, "costs": costs}
	case "orders":
		data = orderViews(snap.Orders, snap.Products)
	case "production":
		data = planner.Build(snap.Orders, snap.Products)
	case "costs":
		costs, err := costing.AllRecipes(snap.Recipes, snap.Ingredients)
		if err != nil {
			respondError(c, err, "Failed to compute recipe costs")
			return
		}
		data = costs
	case "sales":
		data = gin.H{
			"series":           sales.MonthlySeries(snap.Orders, snap.Products, m, sales.DefaultSeriesMonths),
			"popular_products": sales.PopularProducts(snap.Orders, snap.Products),
			"statuses":         sales.StatusBreakdown(snap.Orders),
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tab", "tabs": DashboardTabs})
		return
	}

	user := ""
	if s, ok := middleware.CurrentSession(c); ok {
		user = s.Username
	}
	c.JSON(http.StatusOK, gin.H{
		"tab":  tab,
		"user": user,
		"data": data,
	})
}
