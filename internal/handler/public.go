package handler

import (
	"net/http"

	"chokokon/internal/models"
	"chokokon/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PublicHandler struct {
	Store *store.Store
	Site  models.SiteInfo
}

func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.Site)
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
}

// ListPublicProducts is the storefront menu. Recipes and costs stay private.
func (h *PublicHandler) ListPublicProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	menu := make([]MenuItem, 0, len(products))
	for _, p := range products {
		menu = append(menu, MenuItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"currency": h.Site.Currency,
		"products": menu,
	})
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
