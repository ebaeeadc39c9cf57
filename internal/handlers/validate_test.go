package handlers

import (
	"testing"

	"tribune/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Fields
}

func TestTopicUpdateValidate(t *testing.T) {
	// Omitted fields pass.
	assert.NoError(t, (&TopicUpdateRequest{}).validate())
	assert.NoError(t, (&TopicUpdateRequest{Title: strPtr("Nouveau titre")}).validate())

	// Explicit blanks are rejected field by field, whitespace included.
	err := (&TopicUpdateRequest{Title: strPtr(""), Content: strPtr("   ")}).validate()
	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "content")

	err = (&TopicUpdateRequest{Category: strPtr("inexistante")}).validate()
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "category")
}

func TestUserUpdateValidate(t *testing.T) {
	assert.NoError(t, (&UserUpdateRequest{}).validate())
	// Bio stays clearable.
	assert.NoError(t, (&UserUpdateRequest{Bio: strPtr("")}).validate())

	err := (&UserUpdateRequest{
		Username: strPtr(""),
		Email:    strPtr(" "),
		Password: strPtr(""),
	}).validate()
	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestReplyUpdateValidate(t *testing.T) {
	assert.NoError(t, (&ReplyUpdateRequest{}).validate())
	assert.NoError(t, (&ReplyUpdateRequest{Content: strPtr("Bonne question")}).validate())

	err := (&ReplyUpdateRequest{Content: strPtr("  ")}).validate()
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "content")
}
