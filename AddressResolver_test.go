package main

import (
	"gridCalc/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressResolver_ParseAddress(t *testing.T) {
	resolver := NewAddressResolver(10, 10)

	t.Run("valid", func(t *testing.T) {
		row, col, err := resolver.ParseAddress("B2")
		assert.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, 1, col)

		row, col, err = resolver.ParseAddress("A1")
		assert.NoError(t, err)
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, col)

		row, col, err = resolver.ParseAddress("J10")
		assert.NoError(t, err)
		assert.Equal(t, 9, row)
		assert.Equal(t, 9, col)
	})

	t.Run("case_insensitive_and_trimmed", func(t *testing.T) {
		row, col, err := resolver.ParseAddress("  b2  ")
		assert.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, 1, col)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, address := range []string{"", "B", "2", "2B", "B-2", "B2C", "#B2"} {
			_, _, err := resolver.ParseAddress(address)
			assert.ErrorIs(t, err, contracts.InvalidAddressError, address)
		}
	})

	t.Run("multi_letter_column_rejected", func(t *testing.T) {
		_, _, err := resolver.ParseAddress("AA1")
		assert.ErrorIs(t, err, contracts.InvalidAddressError)
	})

	t.Run("out_of_bounds_never_clamps", func(t *testing.T) {
		for _, address := range []string{"A0", "Z1", "A11", "K1"} {
			_, _, err := resolver.ParseAddress(address)
			assert.ErrorIs(t, err, contracts.InvalidAddressError, address)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		for _, address := range []string{"A1", "b2", "j10", "C7"} {
			row, col, err := resolver.ParseAddress(address)
			assert.NoError(t, err)

			canonical := resolver.FormatAddress(row, col)
			rowAgain, colAgain, err := resolver.ParseAddress(canonical)
			assert.NoError(t, err)
			assert.Equal(t, row, rowAgain)
			assert.Equal(t, col, colAgain)
		}
	})
}

func TestAddressResolver_ParseRange(t *testing.T) {
	resolver := NewAddressResolver(10, 10)

	t.Run("valid", func(t *testing.T) {
		rowStart, colStart, rowEnd, colEnd, err := resolver.ParseRange("A1:C3")
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 0, 2, 2}, []int{rowStart, colStart, rowEnd, colEnd})
	})

	t.Run("normalizes_order", func(t *testing.T) {
		rowStart, colStart, rowEnd, colEnd, err := resolver.ParseRange("C3:A1")
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 0, 2, 2}, []int{rowStart, colStart, rowEnd, colEnd})

		rowStart, colStart, rowEnd, colEnd, err = resolver.ParseRange("A3:C1")
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 0, 2, 2}, []int{rowStart, colStart, rowEnd, colEnd})
	})

	t.Run("malformed", func(t *testing.T) {
		for _, rangeExpr := range []string{"", "A1", "A1:", ":A1", "A1:B2:C3", "A1-B2", "A0:B2", "A1:K1"} {
			_, _, _, _, err := resolver.ParseRange(rangeExpr)
			assert.ErrorIs(t, err, contracts.InvalidRangeError, rangeExpr)
		}
	})

	t.Run("reports_failing_address", func(t *testing.T) {
		_, _, _, _, err := resolver.ParseRange("A0:B2")
		assert.ErrorIs(t, err, contracts.InvalidRangeError)
		assert.Contains(t, err.Error(), "invalid cell address")

		_, _, _, _, err = resolver.ParseRange("A1:K1")
		assert.ErrorIs(t, err, contracts.InvalidRangeError)
		assert.Contains(t, err.Error(), "out of bounds")
	})
}
