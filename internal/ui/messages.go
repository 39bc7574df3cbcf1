// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// quietMode suppresses non-essential output when set via SetQuietMode.
var quietMode bool

// styled is true when stdout is a terminal; when piped, messages are
// printed without icons or color so script consumers get plain text.
var styled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetQuietMode enables or disables quiet mode for all printers.
//
// Parameters:
//   - quiet: If true, PrintInfo and PrintDim become no-ops
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// Println prints an empty line.
func Println() {
	if quietMode {
		return
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !styled {
		fmt.Println("[OK] " + msg)
		return
	}
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message. Not suppressed by quiet mode.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !styled {
		fmt.Println("[FAIL] " + msg)
		return
	}
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintWarning prints a warning message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !styled {
		fmt.Println("[WARN] " + msg)
		return
	}
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintInfo(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !styled {
		fmt.Println(msg)
		return
	}
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintDim(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !styled {
		fmt.Println(msg)
		return
	}
	fmt.Println(DimStyle.Render(msg))
}

// PrintTitle prints a section heading.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintTitle(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !styled {
		fmt.Println(msg)
		return
	}
	fmt.Println(TitleStyle.Render(msg))
}
