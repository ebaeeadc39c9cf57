package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("General"))
	assert.False(t, ValidCategory("offtopic"))
}
