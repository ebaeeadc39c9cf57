package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NewBadRequest("champ manquant"), http.StatusBadRequest},
		{NewValidation(map[string][]string{"username": {"obligatoire"}}), http.StatusBadRequest},
		{NewAuthentication("identifiants incorrects"), http.StatusUnauthorized},
		{NewForbidden("pas le propriétaire"), http.StatusForbidden},
		{NewNotFound("introuvable"), http.StatusNotFound},
		{NewInternal("boom", errors.New("db down")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.StatusCode(), tc.err.Message)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("db unreachable", cause)

	assert.Equal(t, "db unreachable: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	var appErr *Error
	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, Internal, appErr.Kind)
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewForbidden("accès refusé")
	assert.Equal(t, "accès refusé", err.Error())
	assert.Nil(t, err.Unwrap())
}
