package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCapacity(t *testing.T) {
	assert.Equal(t, CapacityTierSmall, ClassifyCapacity(5000))
	assert.Equal(t, CapacityTierLarge, ClassifyCapacity(5001))
	assert.Equal(t, CapacityTierLarge, ClassifyCapacity(10000))
	assert.Equal(t, CapacityTierMega, ClassifyCapacity(10001))
}

func TestIsLargeCapacity(t *testing.T) {
	// The filter rule is binary: mega stores count as large too.
	assert.False(t, IsLargeCapacity(5000))
	assert.True(t, IsLargeCapacity(5001))
	assert.True(t, IsLargeCapacity(20000))
}
