package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/internal/config"
)

const maxDiagnosticCollections = 10

// CollectionLister is the store surface the diagnostic endpoint needs.
type CollectionLister interface {
	CollectionNames(ctx context.Context) ([]string, error)
}

type HealthHandler struct {
	store CollectionLister
	cfg   *config.Config
}

// NewHealthHandler builds the health and diagnostic handlers. store may
// be nil when no database connection could be established.
func NewHealthHandler(store CollectionLister, cfg *config.Config) *HealthHandler {
	return &HealthHandler{store: store, cfg: cfg}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "E-Commerce Backend is running"})
}

func (h *HealthHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// TestDatabase reports the state of the database connection. It never
// fails: every error ends up as text in the report instead.
func (h *HealthHandler) TestDatabase(c *gin.Context) {
	report := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus(h.cfg.DatabaseURL),
		"database_name":     envStatus(h.cfg.DatabaseName),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		report["connection_status"] = "Connected"
		names, err := h.store.CollectionNames(c.Request.Context())
		if err != nil {
			report["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxDiagnosticCollections {
				names = names[:maxDiagnosticCollections]
			}
			report["collections"] = names
			report["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, report)
}

func envStatus(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts on rune boundaries so multibyte text stays valid UTF-8.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
