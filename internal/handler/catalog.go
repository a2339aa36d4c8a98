package handler

import (
	"fmt"
	"net/http"

	"chokokon/internal/costing"
	"chokokon/internal/models"
	"chokokon/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogHandler serves recipes, products and their cost rollups.
type CatalogHandler struct {
	Store *store.Store
}

type RecipeIngredientRequest struct {
	IngredientID string          `json:"ingredient_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type RecipeRequest struct {
	Name         string                    `json:"name" binding:"required"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" binding:"dive"`
	Yield        int                       `json:"yield" binding:"min=1"`
	LaborCost    decimal.Decimal           `json:"labor_cost"`
	OverheadCost decimal.Decimal           `json:"overhead_cost"`
}

func (r RecipeRequest) validate() error {
	if err := firstError(
		nonNegative("labor_cost", r.LaborCost),
		nonNegative("overhead_cost", r.OverheadCost),
	); err != nil {
		return err
	}
	for i, line := range r.Ingredients {
		if err := positive(fmt.Sprintf("ingredients[%d].quantity", i), line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r RecipeRequest) model() models.Recipe {
	lines := make([]models.RecipeIngredient, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		lines = append(lines, models.RecipeIngredient{IngredientID: line.IngredientID, Quantity: line.Quantity})
	}
	return models.Recipe{
		Name:         r.Name,
		Ingredients:  lines,
		Yield:        r.Yield,
		LaborCost:    r.LaborCost,
		OverheadCost: r.OverheadCost,
	}
}

type RecipeIngredientView struct {
	models.RecipeIngredient
	IngredientName string `json:"ingredient_name"`
}

// RecipeView resolves each ingredient line to its ingredient name.
type RecipeView struct {
	models.Recipe
	Ingredients []RecipeIngredientView `json:"ingredients"`
}

func recipeViews(recipes []models.Recipe, ingredients []models.Ingredient) []RecipeView {
	out := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		view := RecipeView{Recipe: r, Ingredients: make([]RecipeIngredientView, 0, len(r.Ingredients))}
		for _, line := range r.Ingredients {
			view.Ingredients = append(view.Ingredients, RecipeIngredientView{
				RecipeIngredient: line,
				IngredientName:   models.IngredientName(ingredients, line.IngredientID),
			})
		}
		out = append(out, view)
	}
	return out
}

func (h *CatalogHandler) respondRecipes(c *gin.Context, status int, recipes []models.Recipe, single bool) {
	ingredients, err := h.Store.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch ingredients")
		return
	}
	views := recipeViews(recipes, ingredients)
	if single {
		c.JSON(status, views[0])
		return
	}
	c.JSON(status, views)
}

func (h *CatalogHandler) bindRecipe(c *gin.Context) (models.Recipe, bool) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Recipe{}, false
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Recipe{}, false
	}
	return req.model(), true
}

func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.Store.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}
	h.respondRecipes(c, http.StatusOK, recipes, false)
}

func (h *CatalogHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.Store.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch recipe")
		return
	}
	h.respondRecipes(c, http.StatusOK, []models.Recipe{recipe}, true)
}

func (h *CatalogHandler) CreateRecipe(c *gin.Context) {
	recipe, ok := h.bindRecipe(c)
	if !ok {
		return
	}
	created, err := h.Store.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		respondError(c, err, "Failed to create recipe")
		return
	}
	h.respondRecipes(c, http.StatusCreated, []models.Recipe{created}, true)
}

func (h *CatalogHandler) UpdateRecipe(c *gin.Context) {
	recipe, ok := h.bindRecipe(c)
	if !ok {
		return
	}
	updated, err := h.Store.UpdateRecipe(c.Request.Context(), c.Param("id"), recipe)
	if err != nil {
		respondError(c, err, "Failed to update recipe")
		return
	}
	h.respondRecipes(c, http.StatusOK, []models.Recipe{updated}, true)
}

func (h *CatalogHandler) DeleteRecipe(c *gin.Context) {
	if err := h.Store.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete recipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

// RecipeCosts returns the cost table for every recipe.
func (h *CatalogHandler) RecipeCosts(c *gin.Context) {
	ctx := c.Request.Context()
	recipes, err := h.Store.ListRecipes(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}
	ingredients, err := h.Store.ListIngredients(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch ingredients")
		return
	}
	costs, err := costing.AllRecipes(recipes, ingredients)
	if err != nil {
		respondError(c, err, "Failed to compute recipe costs")
		return
	}
	c.JSON(http.StatusOK, costs)
}

func (h *CatalogHandler) RecipeCost(c *gin.Context) {
	ctx := c.Request.Context()
	recipe, err := h.Store.GetRecipe(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch recipe")
		return
	}
	ingredients, err := h.Store.ListIngredients(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch ingredients")
		return
	}
	cost, err := costing.ForRecipe(recipe, ingredients)
	if err != nil {
		respondError(c, err, "Failed to compute recipe cost")
		return
	}
	c.JSON(http.StatusOK, cost)
}

type ComponentRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type ProductRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Components  []ComponentRequest `json:"components" binding:"dive"`
	Price       decimal.Decimal    `json:"price"`
	Image       string             `json:"image"`
}

func (r ProductRequest) model() models.Product {
	comps := make([]models.ProductComponent, 0, len(r.Components))
	for _, comp := range r.Components {
		comps = append(comps, models.ProductComponent{RecipeID: comp.RecipeID, Name: comp.Name})
	}
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		Components:  comps,
		Price:       r.Price,
		Image:       r.Image,
	}
}

type ComponentView struct {
	models.ProductComponent
	RecipeName string `json:"recipe_name"`
}

// ProductView resolves each component to its recipe name.
type ProductView struct {
	models.Product
	Components []ComponentView `json:"components"`
}

func productViews(products []models.Product, recipes []models.Recipe) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		view := ProductView{Product: p, Components: make([]ComponentView, 0, len(p.Components))}
		for _, comp := range p.Components {
			view.Components = append(view.Components, ComponentView{
				ProductComponent: comp,
				RecipeName:       models.RecipeName(recipes, comp.RecipeID),
			})
		}
		out = append(out, view)
	}
	return out
}

func (h *CatalogHandler) respondProducts(c *gin.Context, status int, products []models.Product, single bool) {
	recipes, err := h.Store.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}
	views := productViews(products, recipes)
	if single {
		c.JSON(status, views[0])
		return
	}
	c.JSON(status, views)
}

func (h *CatalogHandler) bindProduct(c *gin.Context) (models.Product, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Product{}, false
	}
	if err := nonNegative("price", req.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Product{}, false
	}
	return req.model(), true
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	h.respondProducts(c, http.StatusOK, products, false)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}
	h.respondProducts(c, http.StatusOK, []models.Product{product}, true)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}
	created, err := h.Store.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	h.respondProducts(c, http.StatusCreated, []models.Product{created}, true)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}
	updated, err := h.Store.UpdateProduct(c.Request.Context(), c.Param("id"), product)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	h.respondProducts(c, http.StatusOK, []models.Product{updated}, true)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.Store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *CatalogHandler) ProductCost(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.Store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}
	snap, err := h.Store.Snapshot(ctx)
	if err != nil {
		respondError(c, err, "Failed to load collections")
		return
	}
	c.JSON(http.StatusOK, costing.ForProduct(product, snap.Recipes, snap.Ingredients))
}
