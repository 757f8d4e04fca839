package flags

import "github.com/cockroachdb/errors"

// Args is everything pulled off the command line by a single parse.
type Args struct {
	// Essential arguments
	Mode       Mode
	Positional []string

	// Everything else, sorted lexicographically
	Form          string
	Generations   []uint8
	HideTitle     bool
	ListWithForms bool
	PokemonName   string
	PokemonNames  []string
	Shiny         bool
}

// Mode is the overall mode pokemon-term runs in.
//
// All modes are mutually exclusive. -h/--help and -v/--version are not modes; they are
// SpecialModes and short circuit everything else.
type Mode int

const (
	ModeRegular Mode = iota
	ModeList
	ModeRandom
	ModeRandomByNames
	ModeRandomByGen
)

func (m Mode) String() string {
	switch m {
	case ModeRegular:
		return "regular"
	case ModeList:
		return "list"
	case ModeRandom:
		return "random"
	case ModeRandomByNames:
		return "random-by-name"
	case ModeRandomByGen:
		return "random-by-gen"
	default:
		return "unknown"
	}
}

// Update moves to next. Only the default regular mode can be left; once a flag has picked a
// mode, any other mode-selecting flag is rejected.
func (m *Mode) Update(next Mode) error {
	if next == ModeRegular {
		return errors.AssertionFailedf("regular mode cannot be requested by a flag")
	}

	if *m != ModeRegular {
		return markf(ErrModeConflict, "unexpected argument, %s mode is not valid in this context (already in %s mode)", next, *m)
	}

	*m = next
	return nil
}

// SpecialMode supersedes everything else. When one is present pokemon-term skips straight to
// printing help or version output, without loading any data.
type SpecialMode int

const (
	SpecialNone SpecialMode = iota
	HelpShort
	HelpLong
	VersionShort
	VersionLong
)

func (s SpecialMode) String() string {
	switch s {
	case HelpShort:
		return "help-short"
	case HelpLong:
		return "help-long"
	case VersionShort:
		return "version-short"
	case VersionLong:
		return "version-long"
	default:
		return "none"
	}
}
