package main

import (
	"gridCalc/contracts"
	"strings"
	"sync"
)

// SheetManager holds the live spreadsheets of the process, created on
// demand with the configured default dimensions. The engine itself is
// single-threaded by design, so every sheet handed out is wrapped in a
// lock that serializes concurrent callers.
type SheetManager struct {
	mu          sync.Mutex
	sheets      map[string]*lockedSheet
	repository  contracts.SheetRepository
	defaultRows int
	defaultCols int
}

func NewSheetManager(repository contracts.SheetRepository, defaultRows int, defaultCols int) (*SheetManager, error) {
	// Validate the configured dimensions once, up front.
	if _, err := NewSpreadsheet(defaultRows, defaultCols); err != nil {
		return nil, err
	}

	return &SheetManager{
		sheets:      map[string]*lockedSheet{},
		repository:  repository,
		defaultRows: defaultRows,
		defaultCols: defaultCols,
	}, nil
}

func (m *SheetManager) Sheet(sheetId string) contracts.Spreadsheet {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sheetLocked(strings.ToLower(sheetId))
}

func (m *SheetManager) Save(sheetId string) error {
	m.mu.Lock()
	sheet := m.sheetLocked(strings.ToLower(sheetId))
	m.mu.Unlock()

	return m.repository.Save(sheetId, sheet)
}

func (m *SheetManager) Load(sheetId string) error {
	loaded, err := m.repository.Load(sheetId)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.sheets[strings.ToLower(sheetId)] = &lockedSheet{inner: loaded}
	m.mu.Unlock()

	return nil
}

func (m *SheetManager) sheetLocked(canonicalSheetId string) *lockedSheet {
	if sheet, ok := m.sheets[canonicalSheetId]; ok {
		return sheet
	}

	// Dimensions were validated in the constructor, so this cannot fail.
	inner, _ := NewSpreadsheet(m.defaultRows, m.defaultCols)
	sheet := &lockedSheet{inner: inner}
	m.sheets[canonicalSheetId] = sheet
	return sheet
}

// lockedSheet serializes all access to a single-owner spreadsheet.
type lockedSheet struct {
	mu    sync.Mutex
	inner contracts.Spreadsheet
}

func (s *lockedSheet) Put(address string, input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Put(address, input)
}

func (s *lockedSheet) Get(address string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(address)
}

func (s *lockedSheet) Source(address string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Source(address)
}

func (s *lockedSheet) Dimensions() (rows int, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Dimensions()
}

func (s *lockedSheet) CellList() []*contracts.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.CellList()
}

func (s *lockedSheet) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Render()
}
