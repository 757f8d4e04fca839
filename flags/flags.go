package flags

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// MaxGeneration is the newest generation in the bundled dataset.
const MaxGeneration = 9

// Flag is the definition of one optional flag.
//
// Every flag has a long name and may also have a short name and a negation. For example
// --title is a switch that also accepts --no-title to turn it off; both names are provided by
// the same Flag.
type Flag struct {
	// Switch flags never consume a value from the command line.
	Switch bool
	// Short is a single ASCII alphanumeric byte, or 0 when the flag has no short name.
	Short byte
	// Long must be at least 2 ASCII bytes.
	Long    string
	Negated string

	// Variable names the value a non-switch flag takes, e.g. NAME. Capitalized by convention.
	Variable string
	// Summary should keep `pokemon-term -h` lines under 100 columns.
	Summary string
	Doc     string

	update func(f *Flag, val FlagValue, args *Args) error
}

// Update applies val to args. -h/--help and -v/--version never get here; the parser handles
// them itself.
func (f *Flag) Update(val FlagValue, args *Args) error {
	return f.update(f, val, args)
}

func (f *Flag) String() string {
	if f.Short != 0 {
		return "-" + string(f.Short) + "/--" + f.Long
	}

	return "--" + f.Long
}

// Flags is every flag pokemon-term understands.
//
// The order matters: it is the order flags are shown in -h and --help.
var Flags = []*Flag{
	&nameFlag,
	&listFlag,
	&showFormsFlag,
	&shinyFlag,
	&formFlag,
	&randomFlag,
	&randomByNameFlag,
	&randomByGenFlag,
	&titleFlag,
}

var nameFlag = Flag{
	Short:    'n',
	Long:     "name",
	Variable: "NAME",
	Summary:  "Print the Pokemon by its name. Generally spelled like in the game.",
	Doc: `Print the Pokemon with the given name. The name is matched case-insensitively
against the Pokemon's slug (e.g. "mr-mime") and against its name in every
language of the dataset. A single positional argument is treated the same way.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		name, err := textOf(val, f)
		if err != nil {
			return err
		}

		if args.PokemonName != "" {
			return markf(ErrOverwrite, "tried to overwrite flag %s %q <- %q", f, args.PokemonName, name)
		}

		args.PokemonName = name
		return nil
	},
}

var shinyFlag = Flag{
	Switch:  true,
	Short:   's',
	Long:    "shiny",
	Summary: "Print the shiny version of the Pokemon.",
	Doc: `Print the shiny sprite instead of the regular one. In the random modes this
forces a shiny Pokemon; without it a shiny one shows up at the configured rate.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		on, err := val.Switch()
		if err != nil {
			return err
		}

		args.Shiny = on
		return nil
	},
}

var formFlag = Flag{
	Short:    'f',
	Long:     "form",
	Variable: "FORM",
	Summary:  "Print the given form of the Pokemon.",
	Doc: `Print an alternate form of the Pokemon, such as "mega" or "gmax". The form
must be one of the forms listed for the Pokemon by --list --show-forms.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		form, err := textOf(val, f)
		if err != nil {
			return err
		}

		if args.Form != "" {
			return markf(ErrOverwrite, "tried to overwrite flag %s %q <- %q", f, args.Form, form)
		}

		args.Form = form
		return nil
	},
}

var listFlag = Flag{
	Switch:  true,
	Short:   'l',
	Long:    "list",
	Summary: "Print a list of all Pokemon.",
	Doc: `Print the name of every Pokemon in the dataset, laid out in columns that fit
the terminal. Combine with --show-forms to include alternate forms.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		if _, err := val.Switch(); err != nil {
			return err
		}

		return args.Mode.Update(ModeList)
	},
}

var showFormsFlag = Flag{
	Switch:  true,
	Long:    "show-forms",
	Summary: "Show the list of Pokemon with their forms.",
	Doc:     `When listing, print every Pokemon's alternate forms next to its name.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		on, err := val.Switch()
		if err != nil {
			return err
		}

		args.ListWithForms = on
		return nil
	},
}

var randomFlag = Flag{
	Switch:  true,
	Short:   'r',
	Long:    "random",
	Summary: "Print a random Pokemon. Includes shiny versions and forms.",
	Doc: `Print a random Pokemon from the whole dataset. The form is picked at random
and the sprite may be shiny.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		if _, err := val.Switch(); err != nil {
			return err
		}

		return args.Mode.Update(ModeRandom)
	},
}

var randomByNameFlag = Flag{
	Long:     "random-by-name",
	Variable: "NAMES",
	Summary:  "Print a random Pokemon from the given names, separated by commas.",
	Doc: `Print a random Pokemon picked from a comma separated list of names, e.g.
--random-by-name pikachu,eevee,snorlax. Every name must exist.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		raw, err := textOf(val, f)
		if err != nil {
			return err
		}

		names := lo.Compact(lo.Map(strings.Split(raw, ","), func(name string, _ int) string {
			return strings.TrimSpace(name)
		}))
		if len(names) == 0 {
			return markf(ErrEmptyValue, "flag %s needs at least one Pokemon name", f)
		}

		if err := args.Mode.Update(ModeRandomByNames); err != nil {
			return err
		}

		args.PokemonNames = names
		return nil
	},
}

var randomByGenFlag = Flag{
	Long:     "random-by-gen",
	Variable: "GENS",
	Summary:  "Print a random Pokemon from the given generations, e.g. 1,3 or 1-4.",
	Doc: `Print a random Pokemon from one or more generations. Generations are
separated by commas and may be ranges, e.g. --random-by-gen 1-3,5.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		raw, err := textOf(val, f)
		if err != nil {
			return err
		}

		gens, err := parseGenerations(raw)
		if err == nil && len(gens) == 0 {
			err = markf(ErrEmptyValue, "flag %s needs at least one generation", f)
		}
		if err != nil {
			return err
		}

		if err := args.Mode.Update(ModeRandomByGen); err != nil {
			return err
		}

		args.Generations = gens
		return nil
	},
}

var titleFlag = Flag{
	Switch:  true,
	Long:    "title",
	Negated: "no-title",
	Summary: "Print the Pokemon's name above the sprite (default).",
	Doc:     `Print the Pokemon's name, and its form if any, above the sprite. --no-title prints the sprite alone.`,
	update: func(f *Flag, val FlagValue, args *Args) error {
		on, err := val.Switch()
		if err != nil {
			return err
		}

		args.HideTitle = !on
		return nil
	},
}

// textOf pulls a non-empty, valid UTF-8 value out of val.
func textOf(val FlagValue, flag *Flag) (string, error) {
	text, err := val.Value()
	if err != nil {
		return "", err
	}

	if !utf8.ValidString(text) {
		return "", markf(ErrInvalidText, "failed to parse value %q for flag %s", text, flag)
	}

	if text == "" {
		return "", markf(ErrEmptyValue, "flag %s needs a non-empty value", flag)
	}

	return text, nil
}

func parseGenerations(raw string) ([]uint8, error) {
	gens := make([]uint8, 0, MaxGeneration)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lowRaw, highRaw, isRange := strings.Cut(part, "-")
		if !isRange {
			highRaw = lowRaw
		}

		low, err := parseGeneration(lowRaw)
		if err != nil {
			return nil, err
		}
		high, err := parseGeneration(highRaw)
		if err != nil {
			return nil, err
		}

		if low > high {
			return nil, markf(ErrInvalidGeneration, "invalid generation range %q", part)
		}

		for gen := low; gen <= high; gen++ {
			gens = append(gens, gen)
		}
	}

	gens = lo.Uniq(gens)
	slices.Sort(gens)

	return gens, nil
}

func parseGeneration(raw string) (uint8, error) {
	gen, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 8)
	if err != nil || gen < 1 || gen > MaxGeneration {
		return 0, markf(ErrInvalidGeneration, "invalid generation %q, expected a number from 1 to %d", raw, MaxGeneration)
	}

	return uint8(gen), nil
}
