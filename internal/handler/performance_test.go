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

type MockScreeningStore struct {
	mock.Mock
}

func (m *MockScreeningStore) Create(ctx context.Context, imdbKey, theaterName, startDate, startTime string) (uint64, error) {
	args := m.Called(ctx, imdbKey, theaterName, startDate, startTime)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockScreeningStore) List(ctx context.Context) ([]model.ScreeningDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.ScreeningDetail), args.Error(1)
}

func (m *MockScreeningStore) RemainingSeats(ctx context.Context, id uint64) (uint32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint32), args.Error(1)
}

// memoryListingCache is an in-process ListingCache for handler tests.
type memoryListingCache struct {
	details []model.ScreeningDetail
	valid   bool
	sets    int
}

func (m *memoryListingCache) GetPerformances(ctx context.Context) ([]model.ScreeningDetail, bool) {
	return m.details, m.valid
}

func (m *memoryListingCache) SetPerformances(ctx context.Context, details []model.ScreeningDetail) {
	m.details = details
	m.valid = true
	m.sets++
}

func (m *memoryListingCache) InvalidatePerformances(ctx context.Context) {
	m.details = nil
	m.valid = false
}

func TestCreatePerformance_Success(t *testing.T) {
	screenings := &MockScreeningStore{}
	cache := &memoryListingCache{valid: true}
	h := NewPerformanceHandler(screenings, cache)
	screenings.On("Create", mock.Anything, "tt0078748", "Regal", "2026-02-01", "19:00").
		Return(uint64(9), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/performances",
		strings.NewReader(`{"imdbKey":"tt0078748","theater":"Regal","date":"2026-02-01","time":"19:00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, h.CreatePerformance(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/performances/9", rec.Body.String())
	assert.False(t, cache.valid, "creating a performance must invalidate the listing cache")
}

func TestCreatePerformance_UnknownTheater(t *testing.T) {
	screenings := &MockScreeningStore{}
	h := NewPerformanceHandler(screenings, nil)
	screenings.On("Create", mock.Anything, "tt0078748", "Palace", "2026-02-01", "19:00").
		Return(uint64(0), repository.ErrTheaterNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/performances",
		strings.NewReader(`{"imdbKey":"tt0078748","theater":"Palace","date":"2026-02-01","time":"19:00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	assert.NoError(t, h.CreatePerformance(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such movie or theater")
}

func TestGetRemainingSeats(t *testing.T) {
	screenings := &MockScreeningStore{}
	h := NewPerformanceHandler(screenings, nil)
	screenings.On("RemainingSeats", mock.Anything, uint64(9)).Return(uint32(5), nil)
	screenings.On("RemainingSeats", mock.Anything, uint64(99)).Return(uint32(0), repository.ErrScreeningNotFound)

	e := echo.New()
	for _, tc := range []struct {
		id   string
		code int
		body string
	}{
		{"9", http.StatusOK, `"remainingSeats":5`},
		{"99", http.StatusNotFound, "no such performance"},
		{"abc", http.StatusBadRequest, "invalid performance id"},
	} {
		req := httptest.NewRequest(http.MethodGet, "/performances/"+tc.id+"/seats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(tc.id)

		assert.NoError(t, h.GetRemainingSeats(c))
		assert.Equal(t, tc.code, rec.Code)
		assert.Contains(t, rec.Body.String(), tc.body)
	}
}

func TestListPerformances_CacheMissThenHit(t *testing.T) {
	screenings := &MockScreeningStore{}
	cache := &memoryListingCache{}
	h := NewPerformanceHandler(screenings, cache)
	listing := []model.ScreeningDetail{
		{ID: 9, Title: "Alien", TheaterName: "Regal", RemainingSeats: 16},
	}
	screenings.On("List", mock.Anything).Return(listing, nil).Once()

	e := echo.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/performances", nil)
		rec := httptest.NewRecorder()
		assert.NoError(t, h.ListPerformances(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"remainingSeats":16`)
	}
	// Second request was served from the cache; the store saw one List.
	screenings.AssertNumberOfCalls(t, "List", 1)
	assert.Equal(t, 1, cache.sets)
}
