// Package rofi speaks rofi script mode protocol: menu rows are written to
// stdout, user choice comes back through environment.
package rofi

import (
	"fmt"
	"io"
	"os"
)

// Reasons rofi runs the script, see ROFI_RETV in rofi-script(5).
const (
	RetvInitial  = "0"
	RetvSelected = "1"
	RetvCustom   = "2"
)

// Retv returns why the script is called.
func Retv() string {
	return os.Getenv("ROFI_RETV")
}

// IsFirstOpen check if rofi menu was first opened and
// no variant is selected yet.
func IsFirstOpen() bool {
	return Retv() == RetvInitial
}

// YieldItemWithInfo prints menu item with info which can be
// retrieved later with GetInfo
func YieldItemWithInfo(w io.Writer, text string, info string) {
	fmt.Fprintf(w, "%s\x00info\x1f%s\n", text, info)
}

// Message sets text shown above the menu.
func Message(w io.Writer, text string) {
	fmt.Fprintf(w, "\x00message\x1f%s\n", text)
}

// GetInfo from chosen menu item
func GetInfo() string {
	return os.Getenv("ROFI_INFO")
}
