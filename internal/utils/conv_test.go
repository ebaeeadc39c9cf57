package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToUint(t *testing.T) {
	assert.Equal(t, uint(42), StringToUint("42"))
	assert.Equal(t, uint(0), StringToUint("abc"))
	assert.Equal(t, uint(0), StringToUint(""))
	assert.Equal(t, uint(0), StringToUint("-1"))
}
