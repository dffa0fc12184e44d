package main

import (
	"fmt"
	"gridCalc/contracts"
	"regexp"
	"strconv"
	"strings"
)

// AddressResolver converts human cell addresses ("B2") and ranges
// ("A1:C3") into zero-based grid coordinates. It is pure given the
// grid bounds it was built with.
type AddressResolver struct {
	rows int
	cols int
}

var addressRegex = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

func NewAddressResolver(rows int, cols int) *AddressResolver {
	return &AddressResolver{rows: rows, cols: cols}
}

// ParseAddress maps "B2" to (1, 1). Rows are 1-based in text,
// 0-based internally; columns are single letters A..Z only.
func (r *AddressResolver) ParseAddress(address string) (row int, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(address))

	m := addressRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%s: %w", address, contracts.InvalidAddressError)
	}

	colStr := m[1]
	if len(colStr) != 1 {
		return 0, 0, fmt.Errorf("%s: only columns A..Z supported: %w", address, contracts.InvalidAddressError)
	}
	col = int(colStr[0] - 'A')

	rowNumber, _ := strconv.Atoi(m[2])
	row = rowNumber - 1

	if row < 0 || row >= r.rows || col >= r.cols {
		return 0, 0, fmt.Errorf("%s: out of bounds: %w", address, contracts.InvalidAddressError)
	}

	return row, col, nil
}

// ParseRange resolves "A3:B1" to normalized coordinates so the first
// pair is top-left and the second bottom-right regardless of how the
// range was written.
func (r *AddressResolver) ParseRange(rangeExpr string) (rowStart, colStart, rowEnd, colEnd int, err error) {
	s := strings.ToUpper(strings.TrimSpace(rangeExpr))

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, 0, 0, fmt.Errorf("%s: %w", rangeExpr, contracts.InvalidRangeError)
	}

	rowA, colA, errA := r.ParseAddress(parts[0])
	if errA != nil {
		return 0, 0, 0, 0, fmt.Errorf("%s: %s: %w", rangeExpr, errA, contracts.InvalidRangeError)
	}

	rowB, colB, errB := r.ParseAddress(parts[1])
	if errB != nil {
		return 0, 0, 0, 0, fmt.Errorf("%s: %s: %w", rangeExpr, errB, contracts.InvalidRangeError)
	}

	return min(rowA, rowB), min(colA, colB), max(rowA, rowB), max(colA, colB), nil
}

// FormatAddress is the inverse of ParseAddress: (1, 1) renders as "B2".
func (r *AddressResolver) FormatAddress(row int, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}
