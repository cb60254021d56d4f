package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/movie-ticket-sales/internal/booking"
	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

type MockBooker struct {
	mock.Mock
}

func (m *MockBooker) Book(ctx context.Context, userName, password string, screeningID uint64) (uint64, error) {
	args := m.Called(ctx, userName, password, screeningID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockBooker) TicketsForUser(ctx context.Context, userName string) ([]model.TicketSummary, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TicketSummary), args.Error(1)
}

func newTicketContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateTicket_Success(t *testing.T) {
	booker := &MockBooker{}
	h := NewTicketHandler(booker)
	booker.On("Book", mock.Anything, "alice", "pw", uint64(3)).Return(uint64(55), nil)

	c, rec := newTicketContext(`{"username":"alice","pwd":"pw","performanceId":3}`)
	assert.NoError(t, h.CreateTicket(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/tickets/55", rec.Body.String())
	booker.AssertExpectations(t)
}

func TestCreateTicket_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unauthorized", booking.ErrUnauthorized, http.StatusUnauthorized},
		{"not found", booking.ErrScreeningNotFound, http.StatusNotFound},
		{"sold out", booking.ErrSoldOut, http.StatusBadRequest},
		{"busy", booking.ErrBusy, http.StatusServiceUnavailable},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booker := &MockBooker{}
			h := NewTicketHandler(booker)
			booker.On("Book", mock.Anything, "alice", "pw", uint64(3)).Return(uint64(0), tc.err)

			c, rec := newTicketContext(`{"username":"alice","pwd":"pw","performanceId":3}`)
			assert.NoError(t, h.CreateTicket(c))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCreateTicket_MissingFields(t *testing.T) {
	booker := &MockBooker{}
	h := NewTicketHandler(booker)

	c, rec := newTicketContext(`{"pwd":"pw"}`)
	assert.NoError(t, h.CreateTicket(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	booker.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListUserTickets_OwnHistory(t *testing.T) {
	booker := &MockBooker{}
	h := NewTicketHandler(booker)
	booker.On("TicketsForUser", mock.Anything, "alice").Return([]model.TicketSummary{
		{ScreeningID: 1, TheaterName: "Regal", Title: "Alien", TicketCount: 2},
	}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/alice/tickets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")
	c.Set("user_name", "alice")

	assert.NoError(t, h.ListUserTickets(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nbrOfTickets":2`)
}

func TestListUserTickets_OtherUserForbidden(t *testing.T) {
	booker := &MockBooker{}
	h := NewTicketHandler(booker)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/bob/tickets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("bob")
	c.Set("user_name", "alice")

	assert.NoError(t, h.ListUserTickets(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	booker.AssertNotCalled(t, "TicketsForUser", mock.Anything, mock.Anything)
}
