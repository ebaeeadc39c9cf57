package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tribune/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "username", toSnakeCase("Username"))
	assert.Equal(t, "first_name", toSnakeCase("FirstName"))
	assert.Equal(t, "is_pinned", toSnakeCase("IsPinned"))
	assert.Equal(t, "bio", toSnakeCase("Bio"))
}

func TestBindingErrorFieldMap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("POST", "/register/", strings.NewReader(`{"email":"pas-un-email"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req RegisterRequest
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)

	appErr := BindingError(err)
	assert.Equal(t, apperrors.Validation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "username")
	assert.Contains(t, appErr.Fields, "password")
	assert.Contains(t, appErr.Fields, "email")
	assert.Equal(t, []string{"Ce champ est obligatoire."}, appErr.Fields["username"])
	assert.Equal(t, []string{"Saisissez une adresse e-mail valide."}, appErr.Fields["email"])
}

func TestBindingErrorMalformedBody(t *testing.T) {
	appErr := BindingError(errors.New("unexpected EOF"))
	assert.Equal(t, apperrors.Validation, appErr.Kind)
	assert.Nil(t, appErr.Fields)
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden maps to 403 with error envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("DELETE", "/topics/1/", nil)

		AbortWithError(c, apperrors.NewForbidden("Vous ne pouvez supprimer que vos propres topics"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Vous ne pouvez supprimer que vos propres topics", body["error"])
	})

	t.Run("validation renders field map", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("POST", "/register/", nil)

		AbortWithError(c, apperrors.NewValidation(map[string][]string{
			"username": {"Un utilisateur avec ce nom existe déjà."},
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Un utilisateur avec ce nom existe déjà."}, body["username"])
	})

	t.Run("unknown errors are masked as 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/topics/", nil)

		AbortWithError(c, errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}
