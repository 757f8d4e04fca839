package rendering

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsColumnMajor(t *testing.T) {
	items := []string{"a", "bb", "ccc", "d", "e"}

	// every column is 5 wide, so 3 fit in 16
	out := Columns(items, 16)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "a    ccc  e", lines[0])
	assert.Equal(t, "bb   d", lines[1])
}

func TestColumnsNarrowTerminal(t *testing.T) {
	out := Columns([]string{"bulbasaur", "ivysaur"}, 3)

	assert.Equal(t, "bulbasaur\nivysaur", out)
}

func TestColumnsWideCharacters(t *testing.T) {
	items := []string{"フシギダネ", "abc"}
	out := Columns(items, 80)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, lipgloss.Width("フシギダネ")+columnGap+len("abc"), lipgloss.Width(lines[0]))
}

func TestColumnsEmpty(t *testing.T) {
	assert.Equal(t, "", Columns(nil, 80))
}

func TestTermWidthFallback(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-terminal")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultWidth, TermWidth(f))
}

func TestTitle(t *testing.T) {
	assert.Contains(t, Title("Charizard", ""), "Charizard")

	title := Title("Charizard", "gmax")
	assert.Contains(t, title, "Charizard")
	assert.Contains(t, title, "(gmax)")
}
