package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports that the process is able to serve requests
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /health [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
