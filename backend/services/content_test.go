package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercentage(t *testing.T) {
	// No courses means no division fault, just 0.
	assert.Equal(t, 0.0, progressPercentage(0, 0))
	assert.Equal(t, 0.0, progressPercentage(0, 3))
	assert.InDelta(t, 33.333333, progressPercentage(1, 3), 1e-4)
	assert.Equal(t, 50.0, progressPercentage(1, 2))
	assert.Equal(t, 100.0, progressPercentage(3, 3))
}
