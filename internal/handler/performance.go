package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
)

// ScreeningStore is the slice of the screening repository the handler
// needs. RemainingSeats is the capacity tracker's authoritative read.
type ScreeningStore interface {
	Create(ctx context.Context, imdbKey, theaterName, startDate, startTime string) (uint64, error)
	List(ctx context.Context) ([]model.ScreeningDetail, error)
	RemainingSeats(ctx context.Context, id uint64) (uint32, error)
}

// ListingCache caches the joined performance listing. A nil
// implementation is allowed; the handler then always hits the store.
type ListingCache interface {
	GetPerformances(ctx context.Context) ([]model.ScreeningDetail, bool)
	SetPerformances(ctx context.Context, details []model.ScreeningDetail)
	InvalidatePerformances(ctx context.Context)
}

// PerformanceHandler serves the screening ("performance") endpoints.
type PerformanceHandler struct {
	Screenings ScreeningStore
	Cache      ListingCache
}

// NewPerformanceHandler constructs a PerformanceHandler. cache may be nil.
func NewPerformanceHandler(screenings ScreeningStore, cache ListingCache) *PerformanceHandler {
	return &PerformanceHandler{Screenings: screenings, Cache: cache}
}

type performanceReq struct {
	ImdbKey string `json:"imdbKey"`
	Theater string `json:"theater"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// CreatePerformance handles POST /performances. The referenced movie
// and theater must exist; the new screening starts with the theater's
// full capacity.
func (h *PerformanceHandler) CreatePerformance(c echo.Context) error {
	var req performanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ImdbKey = strings.TrimSpace(req.ImdbKey)
	req.Theater = strings.TrimSpace(req.Theater)
	if req.ImdbKey == "" || req.Theater == "" || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "imdbKey/theater/date/time required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Screenings.Create(ctx, req.ImdbKey, req.Theater, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) || errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no such movie or theater"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create performance failed"})
	}
	if h.Cache != nil {
		h.Cache.InvalidatePerformances(ctx)
	}
	return c.String(http.StatusCreated, fmt.Sprintf("/performances/%d", id))
}

// GetRemainingSeats handles GET /performances/:id/seats. It returns
// the authoritative remaining seat count for one screening, read
// straight from the store so it is never stale like the cached
// listing can be.
func (h *PerformanceHandler) GetRemainingSeats(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid performance id"})
	}
	remaining, err := h.Screenings.RemainingSeats(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrScreeningNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no such performance"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"performanceId": id, "remainingSeats": remaining})
}

// ListPerformances handles GET /performances. The joined listing is
// served from the cache when fresh; remaining seat counts move on
// every booking, so the TTL is short and bookings invalidate the key.
func (h *PerformanceHandler) ListPerformances(c echo.Context) error {
	ctx := c.Request().Context()
	if h.Cache != nil {
		if details, ok := h.Cache.GetPerformances(ctx); ok {
			return c.JSON(http.StatusOK, echo.Map{"data": details})
		}
	}
	details, err := h.Screenings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if h.Cache != nil {
		h.Cache.SetPerformances(ctx, details)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": details})
}
