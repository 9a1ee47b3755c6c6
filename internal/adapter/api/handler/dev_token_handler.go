package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusnotes/internal/domain/entity"
	"campusnotes/internal/domain/repository"
	"campusnotes/internal/infrastructure/firebase"
	"campusnotes/pkg/errors"
	"campusnotes/pkg/logger"
)

type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	roleRepo     repository.RoleRepository
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, roleRepo repository.RoleRepository) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		roleRepo:     roleRepo,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, roleRepo repository.RoleRepository) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth, roleRepo)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

// GenerateAdminToken mints a custom token for the first admin in the
// role store, for exercising the non-approved download path locally.
func (h *DevTokenHandler) GenerateAdminToken(c echo.Context) error {
	adminID, err := h.roleRepo.FirstUserIDWithRole(c.Request().Context(), entity.RoleAdmin)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No admin user found"})
		}
		logger.Error("Failed to look up admin user: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	token, err := h.firebaseAuth.GenerateToken(c.Request().Context(), adminID)
	if err != nil {
		logger.Error("Failed to generate dev token: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]string{
			"id":   adminID,
			"role": entity.RoleAdmin,
		},
	})
}
