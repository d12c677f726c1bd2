package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMargin(t *testing.T) {
	got, err := ComputeMargin(500, 250, 50)
	require.NoError(t, err)

	assert.InDelta(t, 25000.0, got.Revenue, 1e-9)
	assert.InDelta(t, 12500.0, got.TotalCost, 1e-9)
	assert.InDelta(t, 12500.0, got.GrossMargin, 1e-9)
	assert.InDelta(t, 50.0, got.MarginRate, 1e-9)
	assert.Equal(t, MarginExcellent, got.Performance)
}

func TestComputeMargin_RejectsCostAtOrAbovePrice(t *testing.T) {
	_, err := ComputeMargin(100, 100, 10)
	require.ErrorIs(t, err, ErrCostExceedsPrice)

	_, err = ComputeMargin(100, 150, 10)
	require.ErrorIs(t, err, ErrCostExceedsPrice)
}

func TestComputeMargin_RejectsNonPositiveUnits(t *testing.T) {
	_, err := ComputeMargin(100, 50, 0)
	require.ErrorIs(t, err, ErrInvalidUnits)

	_, err = ComputeMargin(100, 50, -3)
	require.ErrorIs(t, err, ErrInvalidUnits)
}

func TestClassifyMargin(t *testing.T) {
	assert.Equal(t, MarginExcellent, ClassifyMargin(50))
	assert.Equal(t, MarginGood, ClassifyMargin(30))
	assert.Equal(t, MarginGood, ClassifyMargin(49.9))
	assert.Equal(t, MarginAttention, ClassifyMargin(29.9))
}
