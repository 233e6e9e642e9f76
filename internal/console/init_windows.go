//go:build windows
// +build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

func Init() {
	// UTF-8 code page so the checkmark and arrow glyphs survive.
	_ = windows.SetConsoleOutputCP(65001)
	_ = windows.SetConsoleCP(65001)

	// ANSI escape processing on both streams; errors are styled on stderr.
	const ENABLE_VIRTUAL_TERMINAL_PROCESSING = 0x0004
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		handle := windows.Handle(f.Fd())
		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err == nil {
			mode |= ENABLE_VIRTUAL_TERMINAL_PROCESSING
			_ = windows.SetConsoleMode(handle, mode)
		}
	}
}
