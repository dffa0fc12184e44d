package contracts

import "errors"

// Spreadsheet is a fixed-size grid calculator. Put evaluates formula
// input eagerly: the cell's value is fully determined (result or
// display error code) before Put returns, and it is never recomputed
// when referenced cells change later.
type Spreadsheet interface {
	Put(address string, input string) error
	Get(address string) (string, error)
	// Source returns what CSV export and persistence store for the
	// cell: the formula re-prefixed with "=", otherwise the literal.
	Source(address string) (string, error)
	Dimensions() (rows int, cols int)
	CellList() []*Cell
	Render() string
}

var GridBoundsError = errors.New("grid dimensions out of bounds")
