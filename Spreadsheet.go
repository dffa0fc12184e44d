package main

import (
	"fmt"
	"gridCalc/contracts"
	"strings"
)

// Spreadsheet ties the grid, the address resolver and the formula
// engine together behind the Put/Get contract. Formula input is
// evaluated exactly once, at write time; dependent cells are not
// tracked and never recomputed.
type Spreadsheet struct {
	grid     *CellGrid
	resolver *AddressResolver
	engine   contracts.FormulaEngine
}

func NewSpreadsheet(rows int, cols int) (*Spreadsheet, error) {
	grid, err := NewCellGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	resolver := NewAddressResolver(rows, cols)

	return &Spreadsheet{
		grid:     grid,
		resolver: resolver,
		engine:   NewFormulaEngine(grid, resolver),
	}, nil
}

func (s *Spreadsheet) Put(address string, input string) error {
	row, col, err := s.resolver.ParseAddress(address)
	if err != nil {
		return err
	}

	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, contracts.FormulaPrefix) {
		s.grid.WriteLiteral(row, col, input)
		return nil
	}

	source := strings.TrimPrefix(input, contracts.FormulaPrefix)
	s.grid.WriteFormula(row, col, source)
	s.grid.WriteValue(row, col, s.engine.Evaluate(s.grid.Formula(row, col)))
	return nil
}

// Restore writes a persisted cell back without re-evaluating it, so a
// loaded sheet shows exactly the values it was saved with even when a
// formula references a cell stored after it.
func (s *Spreadsheet) Restore(address string, source string, value string) error {
	row, col, err := s.resolver.ParseAddress(address)
	if err != nil {
		return err
	}

	if strings.HasPrefix(source, contracts.FormulaPrefix) {
		s.grid.WriteFormula(row, col, strings.TrimPrefix(source, contracts.FormulaPrefix))
		s.grid.WriteValue(row, col, value)
		return nil
	}

	s.grid.WriteLiteral(row, col, source)
	return nil
}

func (s *Spreadsheet) Get(address string) (string, error) {
	row, col, err := s.resolver.ParseAddress(address)
	if err != nil {
		return "", err
	}

	return s.grid.Read(row, col), nil
}

// Source returns the persistable form of a cell: its formula with the
// marker restored, or the literal value.
func (s *Spreadsheet) Source(address string) (string, error) {
	row, col, err := s.resolver.ParseAddress(address)
	if err != nil {
		return "", err
	}

	return s.sourceAt(row, col), nil
}

func (s *Spreadsheet) sourceAt(row int, col int) string {
	if formula := s.grid.Formula(row, col); formula != "" {
		return contracts.FormulaPrefix + formula
	}
	return s.grid.Read(row, col)
}

func (s *Spreadsheet) Dimensions() (rows int, cols int) {
	return s.grid.Dimensions()
}

// CellList returns the non-empty cells in row-major order.
func (s *Spreadsheet) CellList() []*contracts.Cell {
	rows, cols := s.grid.Dimensions()

	cells := make([]*contracts.Cell, 0)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			formula := s.grid.Formula(row, col)
			value := s.grid.Read(row, col)
			if formula == "" && value == "" {
				continue
			}
			cells = append(cells, &contracts.Cell{
				Address: s.resolver.FormatAddress(row, col),
				Formula: formula,
				Value:   value,
			})
		}
	}

	return cells
}

// Render draws the whole grid with column headers and row numbers for
// console display.
func (s *Spreadsheet) Render() string {
	rows, cols := s.grid.Dimensions()

	var sb strings.Builder
	sb.WriteString("    ")
	for col := 0; col < cols; col++ {
		sb.WriteString(fmt.Sprintf("  %c  | ", 'A'+col))
	}

	for row := 0; row < rows; row++ {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%2d: ", row+1))
		for col := 0; col < cols; col++ {
			sb.WriteString(fmt.Sprintf("%4s | ", s.grid.Read(row, col)))
		}
	}

	return sb.String()
}
