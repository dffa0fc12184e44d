package main

import (
	"fmt"
	"gridCalc/contracts"
	"strings"
)

const (
	MaxRows = 99
	MaxCols = 26
)

// CellGrid is the fixed-size cell store. Dimensions are set once at
// construction; every in-bounds coordinate always holds exactly one
// cell. The grid owns no evaluation logic.
type CellGrid struct {
	rows  int
	cols  int
	cells [][]contracts.Cell
}

func NewCellGrid(rows int, cols int) (*CellGrid, error) {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, contracts.GridBoundsError)
	}

	cells := make([][]contracts.Cell, rows)
	for row := range cells {
		cells[row] = make([]contracts.Cell, cols)
	}

	return &CellGrid{rows: rows, cols: cols, cells: cells}, nil
}

func (g *CellGrid) Dimensions() (rows int, cols int) {
	return g.rows, g.cols
}

func (g *CellGrid) Read(row int, col int) string {
	return g.cells[row][col].Value
}

func (g *CellGrid) Formula(row int, col int) string {
	return g.cells[row][col].Formula
}

// WriteLiteral clears any formula and stores the text verbatim.
func (g *CellGrid) WriteLiteral(row int, col int, text string) {
	g.cells[row][col].Formula = ""
	g.cells[row][col].Value = text
}

// WriteFormula stores the marker-stripped, uppercased formula source.
// Evaluation is the caller's responsibility and must happen in the
// same logical operation, so no cell is ever observable with a formula
// set but a stale value.
func (g *CellGrid) WriteFormula(row int, col int, source string) {
	g.cells[row][col].Formula = strings.ToUpper(source)
}

func (g *CellGrid) WriteValue(row int, col int, value string) {
	g.cells[row][col].Value = value
}
