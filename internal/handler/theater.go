package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
)

// TheaterStore is the slice of the theater repository the handler needs.
type TheaterStore interface {
	Create(ctx context.Context, name string, capacity uint32) error
	List(ctx context.Context) ([]model.Theater, error)
}

// TheaterHandler serves the theater registry endpoints.
type TheaterHandler struct {
	Theaters TheaterStore
}

// NewTheaterHandler constructs a TheaterHandler.
func NewTheaterHandler(theaters TheaterStore) *TheaterHandler {
	return &TheaterHandler{Theaters: theaters}
}

type theaterReq struct {
	Name     string `json:"name"`
	Capacity uint32 `json:"capacity"`
}

// CreateTheater handles POST /theaters. Theaters are immutable after
// creation, so the only validations are a non-empty unique name and a
// positive capacity.
func (h *TheaterHandler) CreateTheater(c echo.Context) error {
	var req theaterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive capacity required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Theaters.Create(ctx, req.Name, req.Capacity); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "theater already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create theater failed"})
	}
	return c.String(http.StatusCreated, "/theaters/"+req.Name)
}

// ListTheaters handles GET /theaters.
func (h *TheaterHandler) ListTheaters(c echo.Context) error {
	theaters, err := h.Theaters.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	data := make([]echo.Map, 0, len(theaters))
	for _, t := range theaters {
		data = append(data, echo.Map{"name": t.Name, "capacity": t.Capacity})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": data})
}
