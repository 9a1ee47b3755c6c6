package response

import (
	"errors"
	"net/http"

	apperrors "campusnotes/pkg/errors"

	"github.com/labstack/echo/v4"
)

// The web client consumes the gateway's exact wire shape:
// {"signedUrl": "..."} on success and {"error": "..."} on failure.

func SignedURL(c echo.Context, url string) error {
	return c.JSON(http.StatusOK, map[string]string{"signedUrl": url})
}

// Error converts any error into the gateway's error shape. Unknown
// errors collapse to a generic 500; no internal detail is echoed.
func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, map[string]string{"error": appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
