package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
)

// MovieStore is the slice of the movie repository the handler needs.
type MovieStore interface {
	Create(ctx context.Context, m model.Movie) error
	GetByKey(ctx context.Context, imdbKey string) (model.Movie, error)
	List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error)
}

// MovieHandler serves the movie registry endpoints.
type MovieHandler struct {
	Movies MovieStore
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(movies MovieStore) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

type movieReq struct {
	ImdbKey string `json:"imdbKey"`
	Title   string `json:"title"`
	Year    uint32 `json:"year"`
}

// CreateMovie handles POST /movies. Duplicate imdb keys yield 409.
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ImdbKey = strings.TrimSpace(req.ImdbKey)
	if req.ImdbKey == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "imdbKey/title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.Movie{ImdbKey: req.ImdbKey, Title: req.Title, ProductionYear: req.Year}
	if err := h.Movies.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "imdb key already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create movie failed"})
	}
	return c.String(http.StatusCreated, "/movies/"+req.ImdbKey)
}

// ListMovies handles GET /movies. The optional ?title= and ?year=
// query parameters narrow the listing: exact title match and minimum
// production year.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	var f model.MovieFilter
	f.Title = c.QueryParam("title")
	if y := c.QueryParam("year"); y != "" {
		n, err := strconv.ParseUint(y, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
		}
		f.MinYear = uint32(n)
	}

	movies, err := h.Movies.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": movies})
}

// GetMovie handles GET /movies/:imdbKey. As in the listing endpoints,
// the payload is wrapped in a "data" array; an unknown key yields an
// empty array rather than an error.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	movie, err := h.Movies.GetByKey(c.Request().Context(), c.Param("imdbKey"))
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"data": []model.Movie{}})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": []model.Movie{movie}})
}
