package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-sales/internal/config"
	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/repository"
	"github.com/iliyamo/movie-ticket-sales/internal/utils"
)

// CustomerStore is the slice of the customer repository the auth
// handler needs. Declared here so tests can substitute a mock.
type CustomerStore interface {
	Create(ctx context.Context, userName, fullName, password string, cost int) error
	GetByUserName(ctx context.Context, userName string) (model.Customer, error)
}

// AuthHandler bundles dependencies for customer registration and login.
type AuthHandler struct {
	Cfg       config.Config
	Customers CustomerStore
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, customers CustomerStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: customers}
}

// ----- DTOs -----

type registerReq struct {
	UserName string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"pwd"`
}
type loginReq struct {
	UserName string `json:"username"`
	Password string `json:"pwd"`
}
type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type loginResp struct {
	UserName string    `json:"username"`
	Access   tokenPart `json:"access"`
}

// Register handles POST /users. It creates a customer and returns the
// resource path of the new user. Duplicate user names yield 409.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/pwd required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Customers.Create(ctx, req.UserName, req.FullName, req.Password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "user name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.String(http.StatusCreated, "/users/"+req.UserName)
}

// Login handles POST /users/login. It verifies the password and issues
// an access token that authorizes reading the user's ticket history.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/pwd required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	customer, err := h.Customers.GetByUserName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "wrong user credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !utils.VerifyPassword(customer.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "wrong user credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, customer.UserName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		UserName: customer.UserName,
		Access:   tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
