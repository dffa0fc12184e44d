package main

import (
	"encoding/csv"
	"fmt"
	"gridCalc/contracts"
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// CsvCodec imports and exports a spreadsheet as CSV. Import runs every
// field through Put, so formulas are evaluated eagerly in row-major
// order exactly as if they had been typed in.
type CsvCodec struct{}

func NewCsvCodec() *CsvCodec {
	return &CsvCodec{}
}

type importedField struct {
	address string
	input   string
}

// Read fills the sheet from CSV starting at startAddress. The
// delimiter is sniffed from the content; rows and columns that fall
// outside the grid are dropped. Import runs in two passes: literals
// land first, then formulas in row-major order, so a formula may
// reference a literal anywhere in the file. A formula referencing
// another formula cell that appears later still sees that cell as
// empty.
func (codec *CsvCodec) Read(r io.Reader, sheet contracts.Spreadsheet, startAddress string) error {
	rows, cols := sheet.Dimensions()
	resolver := NewAddressResolver(rows, cols)

	startRow, startCol, err := resolver.ParseAddress(startAddress)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	content := normalizeLineEndings(string(raw))

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectDelimiter(content)
	reader.FieldsPerRecord = -1

	literals := make([]importedField, 0)
	formulas := make([]importedField, 0)

	row := startRow
	for row < rows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("csv import: %w", err)
		}

		for i, field := range record {
			col := startCol + i
			if col >= cols {
				break
			}

			cell := importedField{
				address: resolver.FormatAddress(row, col),
				input:   strings.TrimSpace(field),
			}
			if strings.HasPrefix(cell.input, contracts.FormulaPrefix) {
				formulas = append(formulas, cell)
			} else {
				literals = append(literals, cell)
			}
		}
		row++
	}

	for _, cell := range append(literals, formulas...) {
		if err = sheet.Put(cell.address, cell.input); err != nil {
			return err
		}
	}

	return nil
}

// Write exports the full grid. Formula cells keep their leading marker
// so an export/import round trip re-evaluates them.
func (codec *CsvCodec) Write(w io.Writer, sheet contracts.Spreadsheet) error {
	rows, cols := sheet.Dimensions()
	resolver := NewAddressResolver(rows, cols)

	writer := csv.NewWriter(w)
	record := make([]string, cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			source, err := sheet.Source(resolver.FormatAddress(row, col))
			if err != nil {
				return err
			}
			record[col] = source
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func detectDelimiter(content string) rune {
	delimiters := detector.New().DetectDelimiter(strings.NewReader(content), '"')
	if len(delimiters) > 0 {
		return []rune(delimiters[0])[0]
	}
	return ','
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
