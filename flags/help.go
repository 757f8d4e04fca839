package flags

import (
	"fmt"
	"strings"
)

const helpPadding = 2

const helpDescription = "pokemon-term prints Pokemon sprites in your terminal."

const helpUsage = `Usage:
  pokemon-term [-n] NAME [-s] [-f FORM] [--no-title]
  pokemon-term -l [--show-forms]
  pokemon-term -r | --random-by-name NAMES | --random-by-gen GENS
  pokemon-term -h | --help
  pokemon-term -v | --version`

// builtins are listed after the registry in help output.
var builtins = []struct {
	names   string
	summary string
	doc     string
}{
	{"-h, --help", "Print help (see more with '--help').", "Print help. -h prints a short summary and --help prints this page."},
	{"-v, --version", "Print version.", "Print the version. --version also prints the git revision and authors."},
}

// ShortHelp generates the -h output: one line per flag, names in the first column.
func ShortHelp() string {
	names := make([]string, 0, len(Flags)+len(builtins))
	summaries := make([]string, 0, len(Flags)+len(builtins))

	for _, flag := range Flags {
		names = append(names, flagColumn(flag))
		summaries = append(summaries, flag.Summary)
	}
	for _, builtin := range builtins {
		names = append(names, builtin.names)
		summaries = append(summaries, builtin.summary)
	}

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var sb strings.Builder
	sb.WriteString(helpDescription + "\n\n")
	sb.WriteString(helpUsage + "\n\n")
	sb.WriteString("Options:\n")

	for i, name := range names {
		fmt.Fprintf(&sb, "  %-*s%s\n", width+helpPadding, name, summaries[i])
	}

	return strings.TrimRight(sb.String(), "\n")
}

// LongHelp generates the --help output, with the full documentation of every flag.
func LongHelp() string {
	var sb strings.Builder
	sb.WriteString(helpDescription + "\n\n")
	sb.WriteString(helpUsage + "\n\n")
	sb.WriteString("Options:\n")

	for _, flag := range Flags {
		writeLongEntry(&sb, flagColumn(flag), flag.Doc)
	}
	for _, builtin := range builtins {
		writeLongEntry(&sb, builtin.names, builtin.doc)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeLongEntry(sb *strings.Builder, names string, doc string) {
	sb.WriteString("  " + names + "\n")
	for _, line := range strings.Split(doc, "\n") {
		sb.WriteString("      " + strings.TrimSpace(line) + "\n")
	}
	sb.WriteString("\n")
}

func flagColumn(flag *Flag) string {
	var col strings.Builder

	if flag.Short != 0 {
		fmt.Fprintf(&col, "-%c, ", flag.Short)
	}

	if flag.Negated != "" && flag.Negated == "no-"+flag.Long {
		col.WriteString("--[no-]" + flag.Long)
	} else {
		col.WriteString("--" + flag.Long)
	}

	if flag.Variable != "" {
		col.WriteString("=" + flag.Variable)
	}

	return col.String()
}
