package ui

import "fmt"

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Success returns a success message with a checkmark symbol.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Successf returns a formatted success message with a checkmark symbol.
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Warningf returns a formatted warning message.
func Warningf(format string, args ...interface{}) string {
	return fmt.Sprintf("%s %s", SymbolWarning, fmt.Sprintf(format, args...))
}

// NotePath returns an accent-styled note path or name.
func NotePath(path string) string {
	return Accent.Render(path)
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Header returns a styled section header.
func Header(msg string) string {
	return Bold.Render(msg)
}
