package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-sales/internal/booking"
	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

// Booker is the booking engine surface the ticket endpoints consume:
// one state-changing operation and one query.
type Booker interface {
	Book(ctx context.Context, userName, password string, screeningID uint64) (uint64, error)
	TicketsForUser(ctx context.Context, userName string) ([]model.TicketSummary, error)
}

// TicketHandler serves ticket booking and the per-user history.
type TicketHandler struct {
	Bookings Booker
}

// NewTicketHandler constructs a TicketHandler.
func NewTicketHandler(bookings Booker) *TicketHandler {
	if bookings == nil {
		panic("nil booking service passed to NewTicketHandler")
	}
	return &TicketHandler{Bookings: bookings}
}

type ticketReq struct {
	UserName    string `json:"username"`
	Password    string `json:"pwd"`
	ScreeningID uint64 `json:"performanceId"`
}

// CreateTicket handles POST /tickets. The booking engine's outcomes
// map onto the HTTP surface: bad credentials 401, unknown performance
// 404, sold out 400 with a distinguishable message, contended lock
// 503, everything else 500.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserName == "" || req.ScreeningID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/performanceId required"})
	}

	ticketID, err := h.Bookings.Book(c.Request().Context(), req.UserName, req.Password, req.ScreeningID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "wrong user credentials"})
		case errors.Is(err, booking.ErrScreeningNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no such performance"})
		case errors.Is(err, booking.ErrSoldOut):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no tickets left"})
		case errors.Is(err, booking.ErrBusy):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "busy, retry"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}
	return c.String(http.StatusCreated, fmt.Sprintf("/tickets/%d", ticketID))
}

// ListUserTickets handles GET /users/:username/tickets. The JWT
// middleware has already validated the bearer token; the handler only
// checks that the token subject matches the requested user so one
// customer cannot read another's history.
func (h *TicketHandler) ListUserTickets(c echo.Context) error {
	subject, _ := c.Get("user_name").(string)
	userName := c.Param("username")
	if subject == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if subject != userName {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	summaries, err := h.Bookings.TicketsForUser(c.Request().Context(), userName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": summaries})
}
