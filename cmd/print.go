package cmd

import (
	"fmt"
	"os"

	"github.com/Rahulkumar010/python-noadmin/tui"
)

func PrintError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
	}
}

func FormatError(err error) string {
	return tui.RenderError(err)
}

func PrintWarning(message string) {
	if message != "" {
		fmt.Println(tui.RenderWarning(message))
	}
}

func PrintWarningSimple(message string) {
	if message != "" {
		fmt.Println(tui.RenderWarningSimple(message))
	}
}

func PrintSuccess(message string) {
	if message != "" {
		fmt.Println(tui.RenderSuccess(message))
	}
}

func PrintSuccessSimple(message string) {
	if message != "" {
		fmt.Println(tui.RenderSuccessSimple(message))
	}
}
