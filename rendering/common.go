package rendering

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	DefaultWidth = 80
	columnGap    = 2
)

var (
	TitleColor = lipgloss.Color("33")

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	FormStyle  = lipgloss.NewStyle().Faint(true)
)

// TermWidth is the width of the terminal behind f, or DefaultWidth when f is not a terminal.
func TermWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}

// Columns lays items out top to bottom, then left to right, in as many columns as fit in width.
func Columns(items []string, width int) string {
	if len(items) == 0 {
		return ""
	}

	itemWidth := 0
	for _, item := range items {
		itemWidth = max(itemWidth, lipgloss.Width(item))
	}

	columnWidth := itemWidth + columnGap
	columnCount := max(1, width/columnWidth)
	rowCount := (len(items) + columnCount - 1) / columnCount

	columnStyle := lipgloss.NewStyle().Width(columnWidth)
	columns := make([]string, 0, columnCount)

	for start := 0; start < len(items); start += rowCount {
		end := min(start+rowCount, len(items))
		columns = append(columns, columnStyle.Render(strings.Join(items[start:end], "\n")))
	}

	block := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}

	return strings.Join(lines, "\n")
}

// Title renders name, with the form next to it when there is one.
func Title(name string, form string) string {
	if form == "" {
		return TitleStyle.Render(name)
	}

	return TitleStyle.Render(name) + " " + FormStyle.Render("("+form+")")
}
