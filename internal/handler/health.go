package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Ping is a simple health‑check endpoint used by load balancers and test
// harnesses to verify that the service is running. It returns a plain
// text "pong" message with an HTTP 200 status code.
func Ping(c echo.Context) error {
    return c.String(http.StatusOK, "pong")
}
