package handler

import (
	"fmt"
	"net/http"
	"time"

	"chokokon/internal/models"
	"chokokon/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	Store *store.Store
	// StrictTransitions enforces the status transition table on status
	// changes.
	StrictTransitions bool
	Now               func() time.Time
}

type OrderItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Status        models.OrderStatus `json:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	OrderDate     string             `json:"order_date" binding:"omitempty,datetime=2006-01-02"`
	DeliveryDate  string             `json:"delivery_date" binding:"required,datetime=2006-01-02"`
	Notes         string             `json:"notes"`
}

func (r OrderRequest) validate() error {
	for i, item := range r.Items {
		if err := positive(fmt.Sprintf("items[%d].unit_price", i), item.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

// model ignores any client supplied total; it is derived from the items.
func (r OrderRequest) model(today string) models.Order {
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	o := models.Order{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Items:         items,
		Status:        r.Status,
		OrderDate:     r.OrderDate,
		DeliveryDate:  r.DeliveryDate,
		Notes:         r.Notes,
	}
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if o.OrderDate == "" {
		o.OrderDate = today
	}
	return o
}

type OrderItemView struct {
	models.OrderItem
	ProductName string          `json:"product_name"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderView adds product names and line totals to an order.
type OrderView struct {
	models.Order
	Items []OrderItemView `json:"items"`
}

func orderViews(orders []models.Order, products []models.Product) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{Order: o, Items: make([]OrderItemView, 0, len(o.Items))}
		for _, item := range o.Items {
			view.Items = append(view.Items, OrderItemView{
				OrderItem:   item,
				ProductName: models.ProductName(products, item.ProductID),
				LineTotal:   item.LineTotal(),
			})
		}
		out = append(out, view)
	}
	return out
}

func (h *OrderHandler) today() string {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return now().Format(models.DateLayout)
}

func (h *OrderHandler) bind(c *gin.Context) (models.Order, bool) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Order{}, false
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Order{}, false
	}
	return req.model(h.today()), true
}

func (h *OrderHandler) respond(c *gin.Context, status int, order models.Order) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(status, orderViews([]models.Order{order}, products)[0])
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", status)})
		return
	}
	ctx := c.Request.Context()
	orders, err := h.Store.ListOrders(ctx, status)
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}
	products, err := h.Store.ListProducts(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, orderViews(orders, products))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Store.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch order")
		return
	}
	h.respond(c, http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	order, ok := h.bind(c)
	if !ok {
		return
	}
	created, err := h.Store.CreateOrder(c.Request.Context(), order)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}
	h.respond(c, http.StatusCreated, created)
}

// UpdateOrder replaces the order. The status is taken as given; only the
// dedicated status endpoint applies the transition table. The order date
// is fixed at creation and survives every edit.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	order, ok := h.bind(c)
	if !ok {
		return
	}
	existing, err := h.Store.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}
	order.OrderDate = existing.OrderDate
	updated, err := h.Store.UpdateOrder(c.Request.Context(), c.Param("id"), order)
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}
	h.respond(c, http.StatusOK, updated)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required,oneof=pending processing completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Store.SetOrderStatus(c.Request.Context(), c.Param("id"), req.Status, h.StrictTransitions)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}
	h.respond(c, http.StatusOK, updated)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.Store.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
