//go:build !windows
// +build !windows

package console

// Init is a no-op on non-Windows platforms; ANSI-capable terminals need no
// console-mode changes.
func Init() {}
