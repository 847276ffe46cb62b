package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsObject(t *testing.T) {
	assert.True(t, IsObject(Document{}))
	assert.True(t, IsObject(map[string]interface{}{"a": 1}))
	assert.False(t, IsObject([]any{Document{}}))
	assert.False(t, IsObject(map[string]string{"a": "b"}))
	assert.False(t, IsObject("map"))
	assert.False(t, IsObject(nil))
}
