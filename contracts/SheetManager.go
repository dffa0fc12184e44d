package contracts

// SheetManager owns the live spreadsheets of the process, keyed by
// sheet id. The engine itself is single-threaded; the manager is the
// host that serializes concurrent access to it.
type SheetManager interface {
	Sheet(sheetId string) Spreadsheet
	Save(sheetId string) error
	Load(sheetId string) error
}
