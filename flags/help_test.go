package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHelpListsFlagsInOrder(t *testing.T) {
	help := ShortHelp()

	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "-n, --name=NAME")
	assert.Contains(t, help, "--[no-]title")
	assert.Contains(t, help, "--random-by-name=NAMES")
	assert.Contains(t, help, "-h, --help")

	options := help[strings.Index(help, "Options:"):]

	last := -1
	for _, flag := range Flags {
		at := strings.Index(options, flagColumn(flag))
		assert.Greater(t, at, last, "--%s is out of order", flag.Long)
		last = at
	}
}

func TestShortHelpColumnsAreAligned(t *testing.T) {
	lines := strings.Split(ShortHelp(), "\n")

	column := -1
	for _, flag := range Flags {
		for _, line := range lines {
			if !strings.HasSuffix(line, flag.Summary) {
				continue
			}

			at := strings.Index(line, flag.Summary)
			if column == -1 {
				column = at
			}
			assert.Equal(t, column, at, "summary of --%s is misaligned", flag.Long)
		}
	}

	assert.Greater(t, column, 0)
}

func TestLongHelpHasDocs(t *testing.T) {
	help := LongHelp()

	for _, flag := range Flags {
		firstLine := strings.Split(flag.Doc, "\n")[0]
		assert.Contains(t, help, strings.TrimSpace(firstLine))
	}

	assert.NotEqual(t, ShortHelp(), help)
}
