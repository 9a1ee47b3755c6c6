package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"campusnotes/internal/usecase"
	"campusnotes/pkg/errors"
	"campusnotes/pkg/logger"
	"campusnotes/pkg/response"
)

type DownloadHandler struct {
	downloadUseCase *usecase.DownloadUseCase
}

func NewDownloadHandler(downloadUseCase *usecase.DownloadUseCase) *DownloadHandler {
	return &DownloadHandler{
		downloadUseCase: downloadUseCase,
	}
}

type signedURLRequest struct {
	FilePath string `json:"filePath" validate:"required"`
}

func (h *DownloadHandler) IssueSignedURL(c echo.Context) error {
	var req signedURLRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("filePath is required", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.BadRequest("filePath is required", err))
	}

	cred := credentialFromHeader(c.Request().Header.Get("Authorization"))

	signedURL, err := h.downloadUseCase.IssueDownloadURL(c.Request().Context(), req.FilePath, cred)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Debug("Issued signed URL for %s", req.FilePath)
	return response.SignedURL(c, signedURL)
}

// credentialFromHeader treats a missing header as anonymous and a
// malformed one as an invalid credential the verifier will reject.
func credentialFromHeader(header string) usecase.Credential {
	if header == "" {
		return usecase.NoCredential()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return usecase.BearerCredential(parts[1])
	}

	return usecase.BearerCredential(header)
}
