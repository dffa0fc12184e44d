package main

import (
	"flag"
	"os"
)

func main() {
	console := flag.Bool("console", false, "run the interactive console instead of the HTTP server")
	flag.Parse()

	if *console {
		os.Exit(HandleExitError(os.Stderr, RunConsole(os.Stdin, os.Stdout)))
	}

	os.Exit(HandleExitError(os.Stderr, RunApp()))
}
