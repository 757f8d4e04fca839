package pokedex

import (
	"encoding/json"
	"io/fs"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// DataFile is the dataset path inside the assets directory.
const DataFile = "pokemon.json"

var (
	ErrDataNotFound   = errors.New("pokemon data not found")
	ErrUnknownPokemon = errors.New("unknown pokemon")
	ErrUnknownForm    = errors.New("unknown form")
	ErrSpriteNotFound = errors.New("sprite not found")
)

// Pokedex holds every Pokemon of the dataset in dataset order.
type Pokedex []Pokemon

// Load reads pokemon.json from the root of files.
func Load(files fs.FS) (Pokedex, error) {
	internalLogger.Info("Loading Pokemon data")

	data, err := fs.ReadFile(files, DataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Mark(err, ErrDataNotFound)
			return nil, errors.WithHint(
				errors.Wrapf(err, "%s not found", DataFile),
				"make sure the assets directory is present alongside the binary",
			)
		}

		return nil, errors.Wrapf(err, "reading %s", DataFile)
	}

	var dex Pokedex
	if err := json.Unmarshal(data, &dex); err != nil {
		internalLogger.Error(err, "invalid pokemon data")
		return nil, errors.Wrapf(err, "parsing %s", DataFile)
	}

	if duplicates := lo.FindDuplicatesBy(dex, func(p Pokemon) string { return p.Slug }); len(duplicates) > 0 {
		internalLogger.Info("duplicate slugs in pokemon data, the first one wins", "count", len(duplicates))
	}

	internalLogger.Info("Loaded pokemon", "count", len(dex))

	return dex, nil
}

// GetPokemonByName finds a Pokemon by slug or by its name in any language, ignoring case.
func (d Pokedex) GetPokemonByName(name string) *Pokemon {
	name = strings.TrimSpace(name)

	for i := range d {
		if strings.EqualFold(d[i].Slug, name) {
			return &d[i]
		}
	}

	for i := range d {
		for _, localName := range d[i].Name {
			if strings.EqualFold(localName, name) {
				return &d[i]
			}
		}
	}

	return nil
}

func (d Pokedex) GetPokemonByPokedex(pkdNumber int) *Pokemon {
	for i := range d {
		if d[i].PokedexNumber == uint(pkdNumber) {
			return &d[i]
		}
	}

	return nil
}

// MustGetPokemonByName is GetPokemonByName with ErrUnknownPokemon for names it cannot find.
func (d Pokedex) MustGetPokemonByName(name string) (Pokemon, error) {
	pkm := d.GetPokemonByName(name)
	if pkm == nil {
		err := errors.Mark(errors.Newf("no pokemon named %q", name), ErrUnknownPokemon)
		return Pokemon{}, errors.WithHint(err, "run pokemon-term --list to see every name")
	}

	return *pkm, nil
}

// ByNames resolves every name. One unknown name fails the whole lookup.
func (d Pokedex) ByNames(names []string) ([]Pokemon, error) {
	found := make([]Pokemon, 0, len(names))

	for _, name := range names {
		pkm, err := d.MustGetPokemonByName(name)
		if err != nil {
			return nil, err
		}

		found = append(found, pkm)
	}

	return found, nil
}

func (d Pokedex) ByGeneration(generations []uint8) []Pokemon {
	return lo.Filter(d, func(p Pokemon, _ int) bool {
		return slices.Contains(generations, p.Generation)
	})
}
