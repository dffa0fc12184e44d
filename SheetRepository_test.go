package main

import (
	"gridCalc/contracts"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
)

func _createTmpDb(t *testing.T) *bbolt.DB {
	file, err := os.CreateTemp("", "gridcalc_test_*.db")
	assert.NoError(t, err)
	assert.NoError(t, file.Close())

	db, err := bbolt.Open(file.Name(), 0600, nil)
	assert.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(file.Name())
	})

	return db
}

func TestSheetRepository_SaveLoad(t *testing.T) {
	db := _createTmpDb(t)
	repository := NewSheetRepository(db, NewCellBinarySerializer())

	t.Run("round_trip", func(t *testing.T) {
		sheet := _makeSheet(t)
		assert.NoError(t, sheet.Put("A2", "5"))
		assert.NoError(t, sheet.Put("B1", "=A2*2"))

		assert.NoError(t, repository.Save("Sheet1", sheet))

		loaded, err := repository.Load("sheet1")
		assert.NoError(t, err)

		rows, cols := loaded.Dimensions()
		assert.Equal(t, 10, rows)
		assert.Equal(t, 10, cols)

		value, _ := loaded.Get("A2")
		assert.Equal(t, "5", value)

		value, _ = loaded.Get("B1")
		assert.Equal(t, "10", value)

		source, _ := loaded.Source("B1")
		assert.Equal(t, "=A2*2", source)
	})

	t.Run("forward_references_restore_exactly", func(t *testing.T) {
		// B1 is stored before A2 and B2 in both key order and grid
		// order; its saved value must survive a load untouched.
		sheet := _makeSheet(t)
		assert.NoError(t, sheet.Put("A2", "7"))
		assert.NoError(t, sheet.Put("B1", "=A2+1"))
		assert.NoError(t, sheet.Put("B2", "=5*2"))
		assert.NoError(t, sheet.Put("A1", "=B2+1"))

		assert.NoError(t, repository.Save("ordering", sheet))

		loaded, err := repository.Load("ordering")
		assert.NoError(t, err)

		value, _ := loaded.Get("B1")
		assert.Equal(t, "8", value)

		value, _ = loaded.Get("A1")
		assert.Equal(t, "11", value)

		source, _ := loaded.Source("A1")
		assert.Equal(t, "=B2+1", source)
	})

	t.Run("error_values_survive_load", func(t *testing.T) {
		sheet := _makeSheet(t)
		assert.NoError(t, sheet.Put("A1", "=1/0"))

		assert.NoError(t, repository.Save("faulty", sheet))

		loaded, err := repository.Load("faulty")
		assert.NoError(t, err)

		value, _ := loaded.Get("A1")
		assert.Equal(t, contracts.ErrorCodeDivideByZero, value)
	})

	t.Run("save_replaces_previous_snapshot", func(t *testing.T) {
		sheet := _makeSheet(t)
		assert.NoError(t, sheet.Put("A1", "old"))
		assert.NoError(t, repository.Save("replace", sheet))

		updated := _makeSheet(t)
		assert.NoError(t, updated.Put("B1", "new"))
		assert.NoError(t, repository.Save("replace", updated))

		loaded, err := repository.Load("replace")
		assert.NoError(t, err)

		value, _ := loaded.Get("A1")
		assert.Equal(t, "", value)
		value, _ = loaded.Get("B1")
		assert.Equal(t, "new", value)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := repository.Load("missing")
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("list", func(t *testing.T) {
		sheetIds, err := repository.List()
		assert.NoError(t, err)
		assert.Contains(t, sheetIds, "sheet1")
		assert.Contains(t, sheetIds, "ordering")
	})
}
