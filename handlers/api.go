package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formbridge/formbridge/internal/catalog"
	"github.com/formbridge/formbridge/internal/submission/service"
	"github.com/formbridge/formbridge/pkg/metrics"
	"github.com/formbridge/formbridge/pkg/middleware"
)

// APIHandler serves the catalog endpoint and the admin submissions listing.
type APIHandler struct {
	catalog *catalog.Reader
	subs    service.Service
}

func NewAPIHandler(cat *catalog.Reader, subs service.Service) *APIHandler {
	return &APIHandler{catalog: cat, subs: subs}
}

// Register wires the API routes. The submissions listing is only exposed
// when a verifier is provided.
func (h *APIHandler) Register(r *gin.Engine, ver middleware.Verifier) {
	r.GET("/api", h.ListCatalog)
	if ver != nil {
		r.GET("/api/submissions", middleware.AuthMiddleware(ver), h.ListSubmissions)
	}
}

// ListCatalog re-reads the catalog file on every call and returns it as a
// JSON array. A missing file is an empty catalog; a file that is not a JSON
// array is a server error.
func (h *APIHandler) ListCatalog(c *gin.Context) {
	entries, err := h.catalog.Load()
	if err != nil {
		if errors.Is(err, catalog.ErrNotList) || errors.Is(err, catalog.ErrInvalidJSON) {
			metrics.CatalogReads.WithLabelValues("malformed").Inc()
		} else {
			metrics.CatalogReads.WithLabelValues("error").Inc()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.CatalogReads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, entries)
}

// ListSubmissions returns every stored submission. Requires a bearer token
// carrying the admin role.
func (h *APIHandler) ListSubmissions(c *gin.Context) {
	if !hasAdminRole(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	subs, err := h.subs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func hasAdminRole(c *gin.Context) bool {
	v, ok := c.Get("claims")
	if !ok {
		return false
	}
	claims, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
