package pokedex

import (
	"io/fs"
	"path"

	"github.com/cockroachdb/errors"
)

const spriteDir = "colorscripts"

// SpritePath is the path of a sprite inside the assets directory:
// colorscripts/{regular|shiny}/{slug}[-{form}]
func SpritePath(slug string, form string, shiny bool) string {
	variant := "regular"
	if shiny {
		variant = "shiny"
	}

	name := slug
	if form != "" && form != RegularForm {
		name = slug + "-" + form
	}

	return path.Join(spriteDir, variant, name)
}

// LoadSprite reads the pre-rendered sprite at spritePath.
func LoadSprite(files fs.FS, spritePath string) ([]byte, error) {
	sprite, err := fs.ReadFile(files, spritePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Mark(errors.Wrapf(err, "no sprite at %s", spritePath), ErrSpriteNotFound)
		}

		return nil, errors.Wrapf(err, "reading sprite %s", spritePath)
	}

	internalLogger.V(1).Info("loaded sprite", "path", spritePath, "bytes", len(sprite))

	return sprite, nil
}

// Sprite loads the sprite of p in the given form.
func (p Pokemon) Sprite(files fs.FS, form string, shiny bool) ([]byte, error) {
	return LoadSprite(files, SpritePath(p.Slug, form, shiny))
}
