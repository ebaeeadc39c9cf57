package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"tribune/internal/apperrors"
	"tribune/internal/middleware"
	"tribune/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// CurrentUser returns the authenticated caller set by the LoadUser middleware.
// Only valid behind AuthRequired.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// AbortWithError writes the JSON body and status for an application error.
// Validation errors with field messages render as a field-keyed map, everything
// else as {"error": message}. Unexpected errors are logged and masked.
func AbortWithError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternal("Une erreur interne est survenue", err)
	}

	if appErr.Kind == apperrors.Internal {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(appErr).Error("Unhandled internal error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Une erreur interne est survenue"})
		return
	}

	if appErr.Fields != nil {
		c.AbortWithStatusJSON(appErr.StatusCode(), appErr.Fields)
		return
	}
	c.AbortWithStatusJSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
}

// BindingError converts gin binding failures into a serializer-style
// field-keyed validation error.
func BindingError(err error) *apperrors.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewBadRequest("Corps de requête invalide")
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := toSnakeCase(fe.Field())
		fields[name] = append(fields[name], validationMessage(fe))
	}
	return apperrors.NewValidation(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est obligatoire."
	case "email":
		return "Saisissez une adresse e-mail valide."
	case "max":
		return "Ce champ est trop long."
	default:
		return "Valeur invalide."
	}
}

func toSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
