package main

import (
	"gridCalc/contracts"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func _makeSheet(t *testing.T) *Spreadsheet {
	sheet, err := NewSpreadsheet(10, 10)
	assert.NoError(t, err)
	return sheet
}

func TestSpreadsheet_Construction(t *testing.T) {
	_, err := NewSpreadsheet(0, 10)
	assert.ErrorIs(t, err, contracts.GridBoundsError)

	_, err = NewSpreadsheet(10, 27)
	assert.ErrorIs(t, err, contracts.GridBoundsError)
}

func TestSpreadsheet_PutGet(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "  hello "))
		value, err := sheet.Get("A1")
		assert.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("formula_reference_sum", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "5"))
		assert.NoError(t, sheet.Put("A2", "7"))
		assert.NoError(t, sheet.Put("B1", "=A1+A2"))

		value, err := sheet.Get("B1")
		assert.NoError(t, err)
		assert.Equal(t, "12", value)
	})

	t.Run("divide_by_zero", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "6"))
		assert.NoError(t, sheet.Put("A2", "0"))
		assert.NoError(t, sheet.Put("B1", "=A1/A2"))

		value, _ := sheet.Get("B1")
		assert.Equal(t, contracts.ErrorCodeDivideByZero, value)
	})

	t.Run("aggregates", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "1"))
		assert.NoError(t, sheet.Put("A2", "2"))
		assert.NoError(t, sheet.Put("A3", "3"))

		assert.NoError(t, sheet.Put("C1", "=SUMME(A1:A3)"))
		value, _ := sheet.Get("C1")
		assert.Equal(t, "6", value)

		assert.NoError(t, sheet.Put("C2", "=MITTELWERT(A1:A3)"))
		value, _ = sheet.Get("C2")
		assert.Equal(t, "2", value)
	})

	t.Run("empty_range_behavior", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("C1", "=MIN(A1:A2)"))
		value, _ := sheet.Get("C1")
		assert.Equal(t, contracts.ErrorCodeGeneric, value)

		assert.NoError(t, sheet.Put("C1", "=SUMME(A1:A2)"))
		value, _ = sheet.Get("C1")
		assert.Equal(t, "0", value)
	})

	t.Run("precedence_and_associativity", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "=2+3*4"))
		value, _ := sheet.Get("A1")
		assert.Equal(t, "14", value)

		assert.NoError(t, sheet.Put("A2", "=2^3^2"))
		value, _ = sheet.Get("A2")
		assert.Equal(t, "512", value)

		assert.NoError(t, sheet.Put("A3", "=(2+3)*4"))
		value, _ = sheet.Get("A3")
		assert.Equal(t, "20", value)
	})

	t.Run("invalid_address", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.ErrorIs(t, sheet.Put("AA1", "1"), contracts.InvalidAddressError)
		assert.ErrorIs(t, sheet.Put("A0", "1"), contracts.InvalidAddressError)
		assert.ErrorIs(t, sheet.Put("Z100", "1"), contracts.InvalidAddressError)

		_, err := sheet.Get("Z100")
		assert.ErrorIs(t, err, contracts.InvalidAddressError)
	})

	t.Run("idempotent_puts", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "2"))
		assert.NoError(t, sheet.Put("B1", "=A1*10"))
		first, _ := sheet.Get("B1")

		assert.NoError(t, sheet.Put("B1", "=A1*10"))
		second, _ := sheet.Get("B1")

		assert.Equal(t, first, second)
	})

	t.Run("eager_evaluation_no_recompute", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "5"))
		assert.NoError(t, sheet.Put("B1", "=A1+1"))
		assert.NoError(t, sheet.Put("A1", "100"))

		value, _ := sheet.Get("B1")
		assert.Equal(t, "6", value)
	})

	t.Run("error_reference_propagates", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "=1/0"))
		assert.NoError(t, sheet.Put("B1", "=A1+1"))

		value, _ := sheet.Get("B1")
		assert.Equal(t, contracts.ErrorCodeGeneric, value)
	})

	t.Run("empty_formula_body", func(t *testing.T) {
		sheet := _makeSheet(t)

		assert.NoError(t, sheet.Put("A1", "="))
		value, _ := sheet.Get("A1")
		assert.Equal(t, "", value)
	})
}

func TestSpreadsheet_Source(t *testing.T) {
	sheet := _makeSheet(t)

	assert.NoError(t, sheet.Put("A1", "5"))
	assert.NoError(t, sheet.Put("B2", "=a1+1"))

	source, err := sheet.Source("A1")
	assert.NoError(t, err)
	assert.Equal(t, "5", source)

	source, err = sheet.Source("B2")
	assert.NoError(t, err)
	assert.Equal(t, "=A1+1", source)

	_, err = sheet.Source("zz1")
	assert.ErrorIs(t, err, contracts.InvalidAddressError)
}

func TestSpreadsheet_CellList(t *testing.T) {
	sheet := _makeSheet(t)

	assert.NoError(t, sheet.Put("B2", "7"))
	assert.NoError(t, sheet.Put("A1", "=B2*2"))

	cells := sheet.CellList()
	assert.Len(t, cells, 2)

	// Row-major order.
	assert.Equal(t, "A1", cells[0].Address)
	assert.Equal(t, "B2*2", cells[0].Formula)
	assert.Equal(t, "14", cells[0].Value)

	assert.Equal(t, "B2", cells[1].Address)
	assert.Equal(t, "", cells[1].Formula)
	assert.Equal(t, "7", cells[1].Value)
}

func TestSpreadsheet_Render(t *testing.T) {
	sheet, err := NewSpreadsheet(2, 2)
	assert.NoError(t, err)

	assert.NoError(t, sheet.Put("A1", "1"))
	assert.NoError(t, sheet.Put("B2", "42"))

	rendered := sheet.Render()
	lines := strings.Split(rendered, "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "B")
	assert.Contains(t, lines[1], "1:")
	assert.Contains(t, lines[2], "42")
}