//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVT turns on virtual terminal processing so the picker's arrow keys
// arrive as ANSI sequences and lipgloss colours render.
func enableVT() {
	addConsoleMode(os.Stdin, windows.ENABLE_VIRTUAL_TERMINAL_INPUT)
	addConsoleMode(os.Stdout, windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

func addConsoleMode(f *os.File, flag uint32) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if windows.GetConsoleMode(h, &mode) == nil {
		windows.SetConsoleMode(h, mode|flag)
	}
}
