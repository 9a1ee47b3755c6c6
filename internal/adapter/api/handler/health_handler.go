package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusnotes/internal/infrastructure/database"
	"campusnotes/pkg/logger"
)

type HealthHandler struct {
	db *database.DB
}

var healthHandler *HealthHandler

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

func SetupHealthHandler(db *database.DB) {
	healthHandler = NewHealthHandler(db)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) CheckDatabaseHealth(c echo.Context) error {
	if err := h.db.HealthCheck(c.Request().Context()); err != nil {
		logger.Error("Metadata store health check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
