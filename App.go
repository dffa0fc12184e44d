package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const ExitCodeMainError = 1

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	config, err := LoadConfig(os.Getenv("GRIDCALC_CONFIG"))
	if err != nil {
		return err
	}

	logger := newLogger(config.LogLevel)

	serviceContainer, err := BuildServiceContainer(config, logger)

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.Database.Close()

		logger.Info().Str("addr", config.ListenAddr).Int("rows", config.Rows).Int("cols", config.Cols).Msg("starting")
		err = http.ListenAndServe(config.ListenAddr, serviceContainer.Router)
	}

	return err
}

// RunConsole runs the interactive command loop against a fresh
// in-memory sheet, without the HTTP surface.
func RunConsole(in io.Reader, out io.Writer) error {
	config, err := LoadConfig(os.Getenv("GRIDCALC_CONFIG"))
	if err != nil {
		return err
	}

	sheet, err := NewSpreadsheet(config.Rows, config.Cols)
	if err != nil {
		return err
	}

	return NewConsole(sheet).Run(in, out)
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "gridcalc").Logger().
		Level(parsed)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
