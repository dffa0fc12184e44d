package contracts

import "errors"

// Cell carries the stored formula source (empty for literals, kept
// uppercased and without the leading marker) and the current display
// value of a single grid cell.
type Cell struct {
	Address string `json:"address"`
	Formula string `json:"formula,omitempty"`
	Value   string `json:"value"`
}

// FormulaPrefix designates formula input; it is stripped before storage.
const FormulaPrefix = "="

// Display error codes stored in place of a computed value. These exact
// strings round-trip through CSV export, so they must never change.
const (
	ErrorCodeGeneric      = "#ERR"
	ErrorCodeDivideByZero = "#DIV/0!"
)

var InvalidAddressError = errors.New("invalid cell address")

var InvalidRangeError = errors.New("invalid range")
