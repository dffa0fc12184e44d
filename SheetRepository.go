package main

import (
	"fmt"
	"gridCalc/contracts"
	"strings"

	"go.etcd.io/bbolt"
)

// dimensionsKey cannot collide with cell keys: addresses always start
// with a letter.
var dimensionsKey = []byte("__dims")

// SheetRepository persists spreadsheet snapshots in bbolt, one bucket
// per sheet id. Each cell record carries both its source text and its
// computed value, so loading restores the sheet exactly as saved; no
// formula is re-evaluated, and reference direction cannot change a
// stored value.
type SheetRepository struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

func NewSheetRepository(db *bbolt.DB, serializer contracts.CellSerializer) *SheetRepository {
	return &SheetRepository{db: db, serializer: serializer}
}

func (r *SheetRepository) Save(sheetId string, sheet contracts.Spreadsheet) error {
	sheetIdByte := []byte(strings.ToLower(sheetId))

	return r.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(sheetIdByte) != nil {
			if err := tx.DeleteBucket(sheetIdByte); err != nil {
				return err
			}
		}

		bucket, err := tx.CreateBucket(sheetIdByte)
		if err != nil {
			return err
		}

		rows, cols := sheet.Dimensions()
		if err = bucket.Put(dimensionsKey, r.serializer.MarshalDimensions(rows, cols)); err != nil {
			return err
		}

		for _, cell := range sheet.CellList() {
			source := cell.Value
			if cell.Formula != "" {
				source = contracts.FormulaPrefix + cell.Formula
			}
			if err = bucket.Put([]byte(cell.Address), r.serializer.Marshal(cell.Address, source, cell.Value)); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *SheetRepository) Load(sheetId string) (contracts.Spreadsheet, error) {
	sheetIdByte := []byte(strings.ToLower(sheetId))

	var sheet *Spreadsheet

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetIdByte)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		dims := bucket.Get(dimensionsKey)
		if dims == nil {
			return fmt.Errorf("%s: missing dimensions record: %w", sheetId, SerializerError)
		}
		rows, cols, err := r.serializer.UnmarshalDimensions(dims)
		if err != nil {
			return err
		}

		sheet, err = NewSpreadsheet(rows, cols)
		if err != nil {
			return err
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if string(k) == string(dimensionsKey) {
				continue
			}

			address, source, value, err := r.serializer.Unmarshal(v)
			if err != nil {
				return err
			}
			if err = sheet.Restore(address, source, value); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return sheet, nil
}

func (r *SheetRepository) List() ([]string, error) {
	sheetIds := make([]string, 0)

	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			sheetIds = append(sheetIds, string(name))
			return nil
		})
	})

	return sheetIds, err
}
