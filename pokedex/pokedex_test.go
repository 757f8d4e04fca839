package pokedex

import (
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testData = `[
	{"idx": 1, "slug": "bulbasaur", "gen": 1, "name": {"en": "Bulbasaur", "ja": "フシギダネ"}, "desc": {"en": "A seed."}, "forms": ["regular"]},
	{"idx": 6, "slug": "charizard", "gen": 1, "name": {"en": "Charizard", "de": "Glurak"}, "desc": {}, "forms": ["regular", "mega-x", "mega-y", "gmax"]},
	{"idx": 133, "slug": "eevee", "gen": 1, "name": {"en": "Eevee", "zh_hans": "伊布"}, "desc": {}, "forms": ["regular", "gmax"]},
	{"idx": 152, "slug": "chikorita", "gen": 2, "name": {"en": "Chikorita"}, "desc": {}, "forms": ["regular"]},
	{"idx": 906, "slug": "sprigatito", "gen": 9, "name": {"ja": "ニャオハ"}, "desc": {}, "forms": []}
]`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		DataFile:                                {Data: []byte(testData)},
		"colorscripts/regular/bulbasaur":        {Data: []byte("bulba")},
		"colorscripts/shiny/charizard-gmax":     {Data: []byte("shiny gmax zard")},
		"colorscripts/regular/charizard-mega-x": {Data: []byte("mega zard")},
	}
}

func loadTestDex(t *testing.T) Pokedex {
	t.Helper()

	dex, err := Load(testFS())
	require.NoError(t, err)
	require.Len(t, dex, 5)

	return dex
}

func TestLoad(t *testing.T) {
	dex := loadTestDex(t)

	zard := dex.GetPokemonByPokedex(6)
	require.NotNil(t, zard)
	assert.Equal(t, "charizard", zard.Slug)
	assert.Equal(t, uint8(1), zard.Generation)
	assert.Equal(t, []string{"regular", "mega-x", "mega-y", "gmax"}, zard.Forms)
	assert.Equal(t, "A seed.", dex[0].Description["en"])

	assert.Nil(t, dex.GetPokemonByPokedex(999))
}

func TestLoadMissingData(t *testing.T) {
	_, err := Load(fstest.MapFS{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataNotFound))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestLoadBrokenData(t *testing.T) {
	_, err := Load(fstest.MapFS{DataFile: {Data: []byte(`{"idx": 1}`)}})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDataNotFound))
}

func TestGetPokemonByName(t *testing.T) {
	dex := loadTestDex(t)

	for _, name := range []string{"eevee", "EEVEE", " Eevee ", "伊布"} {
		pkm := dex.GetPokemonByName(name)
		require.NotNil(t, pkm, name)
		assert.Equal(t, "eevee", pkm.Slug)
	}

	assert.Equal(t, "charizard", dex.GetPokemonByName("glurak").Slug)
	assert.Nil(t, dex.GetPokemonByName("missingno"))
}

func TestByNames(t *testing.T) {
	dex := loadTestDex(t)

	found, err := dex.ByNames([]string{"eevee", "Bulbasaur"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "eevee", found[0].Slug)
	assert.Equal(t, "bulbasaur", found[1].Slug)

	_, err = dex.ByNames([]string{"eevee", "missingno"})
	assert.True(t, errors.Is(err, ErrUnknownPokemon))
	assert.Contains(t, err.Error(), `"missingno"`)
}

func TestByGeneration(t *testing.T) {
	dex := loadTestDex(t)

	slugs := func(pokemon []Pokemon) []string {
		names := make([]string, 0, len(pokemon))
		for _, p := range pokemon {
			names = append(names, p.Slug)
		}
		return names
	}

	assert.Equal(t, []string{"chikorita", "sprigatito"}, slugs(dex.ByGeneration([]uint8{2, 9})))
	assert.Len(t, dex.ByGeneration([]uint8{1}), 3)
	assert.Empty(t, dex.ByGeneration([]uint8{4}))
}

func TestForms(t *testing.T) {
	dex := loadTestDex(t)
	zard := *dex.GetPokemonByName("charizard")

	assert.True(t, zard.HasForm("gmax"))
	assert.True(t, zard.HasForm("MEGA-X"))
	assert.True(t, zard.HasForm("regular"))
	assert.True(t, zard.HasForm(""))
	assert.False(t, zard.HasForm("alola"))

	form, err := zard.CheckForm("Mega-Y")
	require.NoError(t, err)
	assert.Equal(t, "mega-y", form)

	_, err = zard.CheckForm("alola")
	assert.True(t, errors.Is(err, ErrUnknownForm))
	assert.Contains(t, errors.GetAllHints(err)[0], "mega-x, mega-y, gmax")

	assert.Equal(t, []string{"mega-x", "mega-y", "gmax"}, zard.OtherForms())

	sprigatito := *dex.GetPokemonByName("sprigatito")
	assert.Equal(t, []string{RegularForm}, sprigatito.AllForms())
	assert.Empty(t, sprigatito.OtherForms())
}

func TestLocalName(t *testing.T) {
	dex := loadTestDex(t)

	bulba := *dex.GetPokemonByName("bulbasaur")
	assert.Equal(t, "Bulbasaur", bulba.LocalName(language.English))
	assert.Equal(t, "フシギダネ", bulba.LocalName(language.Japanese))
	assert.Equal(t, "Bulbasaur", bulba.LocalName(language.French))
	assert.Equal(t, "A seed.", bulba.LocalDescription(language.Japanese))

	eevee := *dex.GetPokemonByName("eevee")
	assert.Equal(t, "伊布", eevee.LocalName(language.SimplifiedChinese))

	// no english name, the only language is the fallback
	sprigatito := *dex.GetPokemonByName("sprigatito")
	assert.Equal(t, "ニャオハ", sprigatito.LocalName(language.English))

	assert.Equal(t, "missingno", Pokemon{Slug: "missingno"}.LocalName(language.English))
}

func TestSprites(t *testing.T) {
	assert.Equal(t, "colorscripts/regular/bulbasaur", SpritePath("bulbasaur", "", false))
	assert.Equal(t, "colorscripts/regular/bulbasaur", SpritePath("bulbasaur", RegularForm, false))
	assert.Equal(t, "colorscripts/shiny/charizard-gmax", SpritePath("charizard", "gmax", true))

	dex := loadTestDex(t)
	files := testFS()

	sprite, err := dex.GetPokemonByName("charizard").Sprite(files, "gmax", true)
	require.NoError(t, err)
	assert.Equal(t, "shiny gmax zard", string(sprite))

	_, err = LoadSprite(files, SpritePath("eevee", "", false))
	assert.True(t, errors.Is(err, ErrSpriteNotFound))
}
