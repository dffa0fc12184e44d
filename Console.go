package main

import (
	"bufio"
	"fmt"
	"gridCalc/contracts"
	"io"
	"os"
	"strings"
)

const consoleHelp = `Commands:
  put <address> <value>   store a literal or formula (formulas start with =)
  get <address>           print a cell's value
  show                    print the whole grid
  save <file>             export the grid as CSV
  load <file>             import a CSV file starting at A1
  help                    print this help
  exit                    leave the console`

// Console is the interactive command loop: it reads lines, dispatches
// to the spreadsheet and the CSV codec, and prints results. All
// calculator errors stay inside cell values; only address and I/O
// errors are printed.
type Console struct {
	sheet contracts.Spreadsheet
	codec *CsvCodec
}

func NewConsole(sheet contracts.Spreadsheet) *Console {
	return &Console{sheet: sheet, codec: NewCsvCodec()}
}

func (console *Console) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, arguments := splitCommand(line)
		if command == "exit" {
			return nil
		}

		if output, err := console.dispatch(command, arguments); err != nil {
			_, _ = fmt.Fprintf(out, "error: %s\n", err)
		} else if output != "" {
			_, _ = fmt.Fprintln(out, output)
		}
	}
}

func (console *Console) dispatch(command string, arguments []string) (string, error) {
	switch command {
	case "put":
		if len(arguments) != 2 {
			return "", fmt.Errorf("usage: put <address> <value>")
		}
		return "", console.sheet.Put(arguments[0], arguments[1])

	case "get":
		if len(arguments) != 1 {
			return "", fmt.Errorf("usage: get <address>")
		}
		return console.sheet.Get(arguments[0])

	case "show":
		return console.sheet.Render(), nil

	case "save":
		if len(arguments) != 1 {
			return "", fmt.Errorf("usage: save <file>")
		}
		return "", console.saveCsv(arguments[0])

	case "load":
		if len(arguments) != 1 {
			return "", fmt.Errorf("usage: load <file>")
		}
		return "", console.loadCsv(arguments[0])

	case "help":
		return consoleHelp, nil
	}

	return "", fmt.Errorf("unknown command %q (try help)", command)
}

func (console *Console) saveCsv(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return console.codec.Write(file, console.sheet)
}

func (console *Console) loadCsv(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return console.codec.Read(file, console.sheet, importStartCellDefault)
}

// splitCommand separates the command word and up to one address from
// the rest of the line, so formula values may contain spaces.
func splitCommand(line string) (string, []string) {
	parts := strings.SplitN(line, " ", 2)
	command := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return command, nil
	}

	rest := strings.TrimSpace(parts[1])
	if command == "put" {
		putParts := strings.SplitN(rest, " ", 2)
		if len(putParts) == 2 {
			return command, []string{putParts[0], strings.TrimSpace(putParts[1])}
		}
		return command, []string{putParts[0]}
	}

	return command, []string{rest}
}
