package ux

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binharry/binharry-cli/internal/errors"
)

var (
	errorCodeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errorMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RenderError writes a coded error for terminal display: code, message,
// then the recovery suggestions. Plain errors render as a single line.
func RenderError(w io.Writer, err error, noColor bool) {
	if err == nil {
		return
	}

	var bhErr *errors.BinHarryError
	if !stderrors.As(err, &bhErr) {
		fmt.Fprintf(w, "Error: %s\n", err.Error())
		return
	}

	code := fmt.Sprintf("[%s]", bhErr.Code)
	msg := bhErr.Message
	if !noColor {
		code = errorCodeStyle.Render(code)
		msg = errorMsgStyle.Render(msg)
	}
	fmt.Fprintf(w, "%s %s\n", code, msg)

	for _, s := range bhErr.Suggestions {
		line := "  💡 " + s
		if !noColor {
			line = suggestionStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

// ErrorSummary returns the one-line form of an error, without styling.
// Used where the full rendering does not fit, like table cells.
func ErrorSummary(err error) string {
	if err == nil {
		return ""
	}
	var bhErr *errors.BinHarryError
	if stderrors.As(err, &bhErr) {
		return fmt.Sprintf("[%s] %s", bhErr.Code, bhErr.Message)
	}
	return strings.TrimSpace(err.Error())
}
