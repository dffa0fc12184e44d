package contracts

import "errors"

type SheetRepository interface {
	Save(sheetId string, sheet Spreadsheet) error
	Load(sheetId string) (Spreadsheet, error)
	List() ([]string, error)
}

var SheetNotFoundError = errors.New("sheet not found")
