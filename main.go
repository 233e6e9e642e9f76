package main

import (
	"os"

	"github.com/Rahulkumar010/python-noadmin/cmd"
	"github.com/Rahulkumar010/python-noadmin/internal/console"
	"github.com/charmbracelet/log"
)

func main() {
	// Enable UTF-8 and ANSI escape processing on Windows consoles so the
	// styled output renders correctly. No-op elsewhere.
	console.Init()

	log.SetDefault(log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: false,
	}))

	cmd.Execute()
}
