package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/seed"
)

const defaultListLimit = 50

// ProductRepository is the repository surface the handlers depend on.
type ProductRepository interface {
	Create(ctx context.Context, product models.ProductIn) (string, error)
	List(ctx context.Context, category string, limit int64) ([]models.ProductOut, error)
	FindByID(ctx context.Context, id string) (*models.ProductOut, error)
	CountAll(ctx context.Context) (int64, error)
}

type ProductHandler struct {
	repo ProductRepository
}

// NewProductHandler builds the handler set. repo may be nil when no
// database connection could be established; every endpoint then answers
// with the fixed configuration error.
func NewProductHandler(repo ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// ListProducts lists products, optionally filtered by exact category.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
		return
	}

	limit := int64(defaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": map[string]string{"limit": "must be an integer"}})
			return
		}
		// 0 means no limit, matching the driver's semantics.
		limit = parsed
	}
	category := c.Query("category")

	products, err := h.repo.List(c.Request.Context(), category, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct validates the input and inserts a new product, answering
// with the generated id.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
		return
	}

	var product models.ProductIn
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, validationDetail(err))
		return
	}

	id, err := h.repo.Create(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, id)
}

// GetProductByID fetches a single product by its id.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
		return
	}

	product, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// SeedProducts inserts the demo dataset when the collection is empty and
// answers with the number of records written.
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
		return
	}

	inserted, err := seed.Run(c.Request.Context(), h.repo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed products"})
		return
	}

	c.JSON(http.StatusOK, inserted)
}

// validationDetail renders a binding error with per-field messages when
// the underlying failure is a validator error.
func validationDetail(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"error": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "gte":
			fields[name] = fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		default:
			fields[name] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return gin.H{"error": "validation failed", "fields": fields}
}
