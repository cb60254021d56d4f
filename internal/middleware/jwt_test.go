package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/movie-ticket-sales/internal/utils"
)

const testSecret = "test-secret"

func runWithAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/alice/tickets", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var subject string
	next := func(c echo.Context) error {
		subject, _ = c.Get("user_name").(string)
		return c.NoContent(http.StatusOK)
	}
	assert.NoError(t, JWTAuth(testSecret)(next)(c))
	return rec, subject
}

func TestJWTAuth_ValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, "alice", 15)
	assert.NoError(t, err)

	rec, subject := runWithAuth(t, "Bearer "+access.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", subject)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec, _ := runWithAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	access, err := utils.NewAccessToken("another-secret", "alice", 15)
	assert.NoError(t, err)

	rec, _ := runWithAuth(t, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
