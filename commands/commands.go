// Package commands runs the mode picked on the command line.
package commands

import (
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nathanieltooley/pokemon-term/flags"
	"github.com/nathanieltooley/pokemon-term/global"
	"github.com/nathanieltooley/pokemon-term/pokedex"
	"github.com/nathanieltooley/pokemon-term/rendering"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

var (
	ErrNoName             = errors.New("no pokemon name given")
	ErrNoCandidates       = errors.New("no pokemon to pick from")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

type Runner struct {
	Dex    pokedex.Pokedex
	Assets fs.FS
	Out    io.Writer
	Rng    *rand.Rand
	Config global.Config
	// Width of the terminal, used by the list mode.
	Width int
}

// Dispatch runs the mode in args.
func (r Runner) Dispatch(args flags.Args) error {
	log.Debug().Stringer("mode", args.Mode).Msg("dispatching")

	if args.Mode != flags.ModeRegular && len(args.Positional) > 0 {
		err := errors.Mark(errors.Newf("unexpected argument %q in %s mode", args.Positional[0], args.Mode), ErrUnexpectedArgument)
		return errors.WithHint(err, "names are only read in regular mode, try --random-by-name NAMES")
	}

	switch args.Mode {
	case flags.ModeList:
		return r.List(args)
	case flags.ModeRandom:
		return r.PrintRandom(args)
	case flags.ModeRandomByNames:
		return r.PrintRandomByNames(args)
	case flags.ModeRandomByGen:
		return r.PrintRandomByGen(args)
	default:
		return r.PrintPokemon(args)
	}
}

// List prints every Pokemon name in columns.
func (r Runner) List(args flags.Args) error {
	tag := r.language()

	names := lo.Map(r.Dex, func(p pokedex.Pokemon, _ int) string {
		name := p.LocalName(tag)
		if forms := p.OtherForms(); args.ListWithForms && len(forms) > 0 {
			return fmt.Sprintf("%s (%s)", name, strings.Join(forms, ", "))
		}

		return name
	})

	_, err := fmt.Fprintln(r.Out, rendering.Columns(names, r.Width))
	return err
}

// PrintPokemon prints the Pokemon named by --name or by the only positional argument.
func (r Runner) PrintPokemon(args flags.Args) error {
	name, err := pokemonName(args)
	if err != nil {
		return err
	}

	pkm, err := r.Dex.MustGetPokemonByName(name)
	if err != nil {
		return err
	}

	form, err := pkm.CheckForm(args.Form)
	if err != nil {
		return err
	}

	return r.print(pkm, form, args.Shiny, args.HideTitle)
}

func (r Runner) PrintRandom(args flags.Args) error {
	return r.printRandom(r.Dex, args)
}

func (r Runner) PrintRandomByNames(args flags.Args) error {
	candidates, err := r.Dex.ByNames(args.PokemonNames)
	if err != nil {
		return errors.Wrap(err, "resolving --random-by-name")
	}

	return r.printRandom(candidates, args)
}

func (r Runner) PrintRandomByGen(args flags.Args) error {
	return r.printRandom(r.Dex.ByGeneration(args.Generations), args)
}

func (r Runner) printRandom(candidates []pokedex.Pokemon, args flags.Args) error {
	if args.Form != "" {
		err := errors.Mark(errors.Newf("--form cannot be used in %s mode", args.Mode), ErrUnexpectedArgument)
		return errors.WithHint(err, "the form of a random Pokemon is random too")
	}

	if len(candidates) == 0 {
		return errors.WithHint(
			errors.Mark(errors.Newf("%s mode found nothing", args.Mode), ErrNoCandidates),
			"check that the assets directory has Pokemon from the requested generations",
		)
	}

	pkm := candidates[r.randomIndex(len(candidates))]

	forms := pkm.AllForms()
	form := forms[r.randomIndex(len(forms))]

	shiny := args.Shiny || r.randomBool(r.Config.ShinyRate)

	log.Debug().Str("pokemon", pkm.Slug).Str("form", form).Bool("shiny", shiny).Int("candidates", len(candidates)).Msg("picked random pokemon")

	return r.print(pkm, form, shiny, args.HideTitle)
}

func (r Runner) print(pkm pokedex.Pokemon, form string, shiny bool, hideTitle bool) error {
	sprite, err := pkm.Sprite(r.Assets, form, shiny)
	if err != nil {
		return errors.WithHint(err, "make sure the assets directory has the colorscripts of every Pokemon")
	}

	var sb strings.Builder

	if !hideTitle {
		titleForm := ""
		if form != pokedex.RegularForm {
			titleForm = form
		}

		sb.WriteString(rendering.Title(pkm.LocalName(r.language()), titleForm) + "\n")
	}

	sb.Write(sprite)
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
	}

	_, err = io.WriteString(r.Out, sb.String())
	return err
}

func (r Runner) language() language.Tag {
	tag, err := language.Parse(r.Config.Language)
	if err != nil {
		log.Warn().Err(err).Str("language", r.Config.Language).Msg("invalid language in config, using english")
		return language.English
	}

	return tag
}

func (r Runner) randomIndex(n int) int {
	return r.Rng.IntN(n)
}

// randomBool is true with probability p.
func (r Runner) randomBool(p float64) bool {
	return r.Rng.Float64() < p
}

func pokemonName(args flags.Args) (string, error) {
	switch {
	case len(args.Positional) > 1:
		err := errors.Mark(errors.Newf("unexpected argument %q", args.Positional[1]), ErrUnexpectedArgument)
		return "", errors.WithHint(err, "only one Pokemon can be printed, try --random-by-name NAMES")
	case len(args.Positional) == 1 && args.PokemonName != "":
		err := errors.Mark(errors.Newf("unexpected argument %q, the name was already set to %q", args.Positional[0], args.PokemonName), ErrUnexpectedArgument)
		return "", err
	case len(args.Positional) == 1:
		return args.Positional[0], nil
	case args.PokemonName != "":
		return args.PokemonName, nil
	default:
		return "", errors.WithHint(ErrNoName, "pass a name, or try --random or --list")
	}
}
