package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasses(t *testing.T) {
	assert.Equal(t, "rounded px-4", Classes("px-2 rounded", "px-4"))
	assert.Equal(t, "border p-4 bg-red-50", Classes("border p-4 bg-white", "bg-red-50"))
}
