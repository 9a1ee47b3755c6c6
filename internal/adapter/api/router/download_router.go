package router

import (
	"campusnotes/internal/adapter/api/handler"
	"campusnotes/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDownloadRouter(e *echo.Echo) {
	downloadHandler := handler.GetDownloadHandler()

	downloads := e.Group("/v1/downloads")
	downloads.Use(middleware.DownloadRateLimit())

	// Authorization is decided inside the use case; the endpoint itself
	// is open so approved uploads stay downloadable anonymously.
	downloads.POST("/signed-url", downloadHandler.IssueSignedURL)
}
