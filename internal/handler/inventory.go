package handler

import (
	"net/http"

	"chokokon/internal/models"
	"chokokon/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	Store             *store.Store
	LowStockThreshold int
}

type SupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

func (r SupplierRequest) model() models.Supplier {
	return models.Supplier{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Store.SupplierPage(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Failed to fetch suppliers")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *InventoryHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.Store.GetSupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch supplier")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier, err := h.Store.CreateSupplier(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier, err := h.Store.UpdateSupplier(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	if err := h.Store.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete supplier")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}

// IngredientView adds the resolved supplier name to an ingredient.
type IngredientView struct {
	models.Ingredient
	SupplierName string `json:"supplier_name"`
}

func ingredientViews(ingredients []models.Ingredient, suppliers []models.Supplier) []IngredientView {
	out := make([]IngredientView, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, IngredientView{Ingredient: ing, SupplierName: models.SupplierName(suppliers, ing.SupplierID)})
	}
	return out
}

type IngredientRequest struct {
	Name        string          `json:"name" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Stock       decimal.Decimal `json:"stock"`
	SupplierID  *string         `json:"supplier_id"`
}

func (r IngredientRequest) validate() error {
	return firstError(
		nonNegative("cost_per_unit", r.CostPerUnit),
		nonNegative("stock", r.Stock),
	)
}

func (r IngredientRequest) model() models.Ingredient {
	supplierID := r.SupplierID
	if supplierID != nil && *supplierID == "" {
		supplierID = nil
	}
	return models.Ingredient{
		Name:        r.Name,
		Unit:        r.Unit,
		CostPerUnit: r.CostPerUnit,
		Stock:       r.Stock,
		SupplierID:  supplierID,
	}
}

func (h *InventoryHandler) ListIngredients(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	result, err := h.Store.IngredientPage(ctx, page)
	if err != nil {
		respondError(c, err, "Failed to fetch ingredients")
		return
	}
	suppliers, err := h.Store.ListSuppliers(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch suppliers")
		return
	}
	c.JSON(http.StatusOK, store.Page[IngredientView]{
		Data:       ingredientViews(result.Data, suppliers),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

func (h *InventoryHandler) respondIngredient(c *gin.Context, status int, ing models.Ingredient) {
	suppliers, err := h.Store.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch suppliers")
		return
	}
	c.JSON(status, ingredientViews([]models.Ingredient{ing}, suppliers)[0])
}

func (h *InventoryHandler) GetIngredient(c *gin.Context) {
	ing, err := h.Store.GetIngredient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch ingredient")
		return
	}
	h.respondIngredient(c, http.StatusOK, ing)
}

func (h *InventoryHandler) CreateIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := h.Store.CreateIngredient(c.Request.Context(), req.model())
	if err != nil {
		respondError(c, err, "Failed to create ingredient")
		return
	}
	h.respondIngredient(c, http.StatusCreated, ing)
}

func (h *InventoryHandler) UpdateIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := h.Store.UpdateIngredient(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		respondError(c, err, "Failed to update ingredient")
		return
	}
	h.respondIngredient(c, http.StatusOK, ing)
}

func (h *InventoryHandler) DeleteIngredient(c *gin.Context) {
	if err := h.Store.DeleteIngredient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete ingredient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted"})
}

func (h *InventoryHandler) GetLowStockAlerts(c *gin.Context) {
	ctx := c.Request.Context()
	ingredients, err := h.Store.LowStockIngredients(ctx, h.LowStockThreshold)
	if err != nil {
		respondError(c, err, "Failed to fetch alerts")
		return
	}
	suppliers, err := h.Store.ListSuppliers(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch suppliers")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"threshold":   h.LowStockThreshold,
		"ingredients": ingredientViews(ingredients, suppliers),
	})
}
