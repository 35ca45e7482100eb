package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/pkg/apperror"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFromError_TaxonomyKind(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, apperror.ErrPendingApproval, false)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Pending Approval", body["message"])
	require.Equal(t, "PendingApprovalError", body["error"])
}

func TestFromError_ValidationCarriesFieldMap(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, apperror.Validation(map[string]string{"email": "Email is required"}), false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	require.Equal(t, map[string]interface{}{"email": "Email is required"}, body["errors"])
}

func TestFromError_InternalDetailOnlyInDevMode(t *testing.T) {
	cause := errors.New("mongo: server selection timeout")

	rec := httptest.NewRecorder()
	FromError(rec, cause, false)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "server selection")

	rec = httptest.NewRecorder()
	FromError(rec, cause, true)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "server selection")
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Registration successful", map[string]string{"id": "1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Registration successful", body["message"])
}
