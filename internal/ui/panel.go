package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box frames inner text with the current theme's border.
func Box(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Println(Box(strings.Join(lines, "\n")))
}

func OK(msg string)   { fprintOK(os.Stdout, msg) }
func Fail(msg string) { fprintFail(os.Stderr, msg) }

func fprintOK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func fprintFail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}
