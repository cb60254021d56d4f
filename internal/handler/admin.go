package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Resetter clears all entity tables and reseeds the baseline theaters.
type Resetter interface {
	Reset(ctx context.Context) error
}

// AdminHandler serves maintenance endpoints used for test isolation.
type AdminHandler struct {
	Admin Resetter
	Cache ListingCache
}

// NewAdminHandler constructs an AdminHandler. cache may be nil.
func NewAdminHandler(admin Resetter, cache ListingCache) *AdminHandler {
	return &AdminHandler{Admin: admin, Cache: cache}
}

// Reset handles POST /reset. Repeated resets converge on the same
// baseline regardless of what state the previous run left behind.
func (h *AdminHandler) Reset(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Admin.Reset(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	if h.Cache != nil {
		h.Cache.InvalidatePerformances(ctx)
	}
	return c.String(http.StatusOK, "ok")
}
