package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "campusnotes/pkg/errors"
)

type devRoleRepo struct {
	adminID string
	err     error
}

func (r *devRoleRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	return false, nil
}

func (r *devRoleRepo) FirstUserIDWithRole(ctx context.Context, role string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.adminID, nil
}

func performDevTokenRequest(t *testing.T, h *DevTokenHandler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/_dev/token/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.GenerateAdminToken(c))
	return rec
}

func TestGenerateAdminTokenWithoutAdminUser(t *testing.T) {
	h := NewDevTokenHandler(nil, &devRoleRepo{err: apperrors.NotFound("Role holder", nil)})

	rec := performDevTokenRequest(t, h)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No admin user found"}`, rec.Body.String())
}

func TestGenerateAdminTokenRoleStoreFailure(t *testing.T) {
	h := NewDevTokenHandler(nil, &devRoleRepo{err: errors.New("connection refused")})

	rec := performDevTokenRequest(t, h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to generate token"}`, rec.Body.String())
}
