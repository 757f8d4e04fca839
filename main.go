package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/nathanieltooley/pokemon-term/commands"
	"github.com/nathanieltooley/pokemon-term/flags"
	"github.com/nathanieltooley/pokemon-term/global"
	"github.com/nathanieltooley/pokemon-term/pokedex"
	"github.com/nathanieltooley/pokemon-term/rendering"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the exit code. Help and version output skip loading the config and the data.
func run(argv []string, stdout io.Writer, stderr io.Writer) int {
	result := flags.NewParser().Parse(argv)

	switch result.Kind {
	case flags.ResultSpecial:
		fmt.Fprintln(stdout, special(result.Special))
		return 0
	case flags.ResultErr:
		printError(stderr, result.Err)
		return 1
	}

	config := global.GlobalInit(true)

	if err := execute(result.Args, config, stdout, rendering.TermWidth(os.Stdout)); err != nil {
		log.Error().Err(err).Msg("exiting with error")
		printError(stderr, err)
		return 1
	}

	return 0
}

func execute(args flags.Args, config global.Config, out io.Writer, width int) error {
	assets := os.DirFS(config.AssetsDir)

	dex, err := pokedex.Load(assets)
	if err != nil {
		if errors.Is(err, pokedex.ErrDataNotFound) {
			err = errors.WithHintf(err, "the assets directory is %s, it can be changed with AssetsDir in %s", config.AssetsDir, global.DefaultConfigLocation())
		}
		return errors.Wrap(err, "loading pokemon data")
	}

	runner := commands.Runner{
		Dex:    dex,
		Assets: assets,
		Out:    out,
		Rng:    global.NewRng(),
		Config: config,
		Width:  width,
	}

	return runner.Dispatch(args)
}

func special(mode flags.SpecialMode) string {
	switch mode {
	case flags.HelpShort:
		return flags.ShortHelp()
	case flags.HelpLong:
		return flags.LongHelp()
	case flags.VersionShort:
		return global.VersionShort()
	default:
		return global.VersionLong()
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}

	if flags.IsUsageError(err) {
		fmt.Fprintln(w, "hint: run pokemon-term -h for usage")
	}
}
