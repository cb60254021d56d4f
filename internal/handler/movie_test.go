package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
)

type MockMovieStore struct {
	mock.Mock
}

func (m *MockMovieStore) Create(ctx context.Context, movie model.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieStore) GetByKey(ctx context.Context, imdbKey string) (model.Movie, error) {
	args := m.Called(ctx, imdbKey)
	return args.Get(0).(model.Movie), args.Error(1)
}

func (m *MockMovieStore) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Movie), args.Error(1)
}

func TestCreateMovie_Success(t *testing.T) {
	movies := &MockMovieStore{}
	h := NewMovieHandler(movies)
	movies.On("Create", mock.Anything, model.Movie{ImdbKey: "tt0078748", Title: "Alien", ProductionYear: 1979}).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/movies",
		strings.NewReader(`{"imdbKey":"tt0078748","title":"Alien","year":1979}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, h.CreateMovie(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/movies/tt0078748", rec.Body.String())
}

func TestCreateMovie_Duplicate(t *testing.T) {
	movies := &MockMovieStore{}
	h := NewMovieHandler(movies)
	movies.On("Create", mock.Anything, mock.Anything).Return(repository.ErrConflict)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/movies",
		strings.NewReader(`{"imdbKey":"tt0078748","title":"Alien","year":1979}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, h.CreateMovie(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListMovies_Filter(t *testing.T) {
	movies := &MockMovieStore{}
	h := NewMovieHandler(movies)
	movies.On("List", mock.Anything, model.MovieFilter{Title: "Alien", MinYear: 1975}).
		Return([]model.Movie{{ImdbKey: "tt0078748", Title: "Alien", ProductionYear: 1979}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movies?title=Alien&year=1975", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, h.ListMovies(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imdbKey":"tt0078748"`)
	movies.AssertExpectations(t)
}

func TestGetMovie_UnknownKeyYieldsEmptyData(t *testing.T) {
	movies := &MockMovieStore{}
	h := NewMovieHandler(movies)
	movies.On("GetByKey", mock.Anything, "tt9999999").
		Return(model.Movie{}, repository.ErrMovieNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movies/tt9999999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("imdbKey")
	c.SetParamValues("tt9999999")

	assert.NoError(t, h.GetMovie(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
