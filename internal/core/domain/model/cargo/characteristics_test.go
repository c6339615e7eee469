package cargo_test

import (
	"strings"
	"testing"

	"shipping/internal/core/domain/model/cargo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharacteristics(t *testing.T) {
	t.Run("should create valid characteristics", func(t *testing.T) {
		c, err := cargo.NewCharacteristics("Box", 10, 20, 30, 5)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Box", c.Name())
		assert.Equal(t, 10, c.Length())
		assert.Equal(t, 20, c.Width())
		assert.Equal(t, 30, c.Height())
		assert.Equal(t, 5, c.Weight())
	})

	t.Run("should accept minimum dimensions and weight", func(t *testing.T) {
		c, err := cargo.NewCharacteristics("Envelope", 1, 1, 1, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, c.Weight())
	})

	t.Run("should accept name of exactly 255 characters", func(t *testing.T) {
		name := strings.Repeat("a", 255)

		c, err := cargo.NewCharacteristics(name, 10, 10, 10, 5)

		require.NoError(t, err)
		assert.Len(t, c.Name(), 255)
	})

	t.Run("should reject name longer than 255 characters", func(t *testing.T) {
		name := strings.Repeat("a", 256)

		_, err := cargo.NewCharacteristics(name, 10, 10, 10, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, cargo.ErrNameTooLong)
		assert.Contains(t, err.Error(), "Cargo name cannot exceed 255 characters")
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := cargo.NewCharacteristics("", 10, 10, 10, 5)

		require.Error(t, err)
	})

	t.Run("should reject zero dimension", func(t *testing.T) {
		for _, dims := range [][3]int{{0, 10, 10}, {10, 0, 10}, {10, 10, 0}} {
			_, err := cargo.NewCharacteristics("Box", dims[0], dims[1], dims[2], 5)

			require.Error(t, err)
			assert.ErrorIs(t, err, cargo.ErrSpatialCharacteristicsMissing)
			assert.Contains(t, err.Error(), "Cargo spatial characteristics must be specified")
		}
	})

	t.Run("should reject negative dimension", func(t *testing.T) {
		_, err := cargo.NewCharacteristics("Box", -1, 10, 10, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, cargo.ErrSpatialCharacteristicsMissing)
	})

	t.Run("should reject zero weight", func(t *testing.T) {
		_, err := cargo.NewCharacteristics("Box", 10, 10, 10, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, cargo.ErrWeightMissing)
		assert.Contains(t, err.Error(), "Cargo weight must be specified")
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := cargo.NewCharacteristics("Box", 10, 10, 10, -5)

		require.Error(t, err)
		assert.ErrorIs(t, err, cargo.ErrWeightMissing)
	})

	t.Run("should report all failures at once", func(t *testing.T) {
		_, err := cargo.NewCharacteristics(strings.Repeat("a", 300), 0, 0, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, cargo.ErrNameTooLong)
		assert.ErrorIs(t, err, cargo.ErrSpatialCharacteristicsMissing)
		assert.ErrorIs(t, err, cargo.ErrWeightMissing)
	})
}

func TestCharacteristics_IsEqual(t *testing.T) {
	a, err := cargo.NewCharacteristics("Box", 10, 10, 10, 5)
	require.NoError(t, err)
	b, err := cargo.NewCharacteristics("Box", 10, 10, 10, 5)
	require.NoError(t, err)
	c, err := cargo.NewCharacteristics("Crate", 10, 10, 10, 5)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestCharacteristics_Validate(t *testing.T) {
	var c cargo.Characteristics
	assert.Error(t, c.Validate())
}
