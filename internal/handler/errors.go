package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"chokokon/internal/costing"
	"chokokon/internal/models"
	"chokokon/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// respondError maps domain errors to status codes. Anything unexpected is
// logged and answered with msg.
func respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, costing.ErrInvalidYield):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", msg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

func positive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%s must be greater than zero", field)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// pageParam reads ?page=, defaulting to 1. Values below 1 clamp to 1.
func pageParam(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("page must be a number")
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}
