package pokedex

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// RegularForm is the base form. Its sprite has no form suffix.
const RegularForm = "regular"

// fallbackLanguage is used when a Pokemon has no name in the requested language.
const fallbackLanguage = "en"

type Pokemon struct {
	PokedexNumber uint   `json:"idx"`
	Slug          string `json:"slug"`
	Generation    uint8  `json:"gen"`
	// Name and Description are keyed by language, e.g. "en", "ja", "zh_hans".
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"desc"`
	Forms       []string          `json:"forms"`
}

// HasForm reports whether form is one of the forms of p. The regular form always exists.
func (p Pokemon) HasForm(form string) bool {
	if form == "" || strings.EqualFold(form, RegularForm) {
		return true
	}

	return slices.ContainsFunc(p.Forms, func(f string) bool {
		return strings.EqualFold(f, form)
	})
}

// CheckForm returns the dataset spelling of form, or ErrUnknownForm.
func (p Pokemon) CheckForm(form string) (string, error) {
	if form == "" || strings.EqualFold(form, RegularForm) {
		return RegularForm, nil
	}

	for _, f := range p.Forms {
		if strings.EqualFold(f, form) {
			return f, nil
		}
	}

	err := errors.Mark(errors.Newf("%s has no form %q", p.Slug, form), ErrUnknownForm)
	if forms := p.OtherForms(); len(forms) > 0 {
		return "", errors.WithHintf(err, "available forms: %s", strings.Join(forms, ", "))
	}

	return "", errors.WithHint(err, "this Pokemon only has its regular form")
}

// OtherForms returns every form but the regular one.
func (p Pokemon) OtherForms() []string {
	return lo.Reject(p.Forms, func(f string, _ int) bool {
		return f == RegularForm
	})
}

// AllForms returns the forms a sprite can be drawn in, the regular form included.
func (p Pokemon) AllForms() []string {
	if slices.Contains(p.Forms, RegularForm) {
		return p.Forms
	}

	return append([]string{RegularForm}, p.Forms...)
}

// LocalName is the name of p in the language closest to tag, falling back to English and then the slug.
func (p Pokemon) LocalName(tag language.Tag) string {
	return localized(p.Name, tag, p.Slug)
}

func (p Pokemon) LocalDescription(tag language.Tag) string {
	return localized(p.Description, tag, "")
}

func localized(values map[string]string, tag language.Tag, fallback string) string {
	keys := lo.Keys(values)
	slices.Sort(keys)

	// the matcher falls back to its first tag
	if i := slices.Index(keys, fallbackLanguage); i > 0 {
		keys = slices.Insert(slices.Delete(keys, i, i+1), 0, fallbackLanguage)
	}

	supported := make([]string, 0, len(keys))
	tags := make([]language.Tag, 0, len(keys))

	for _, key := range keys {
		parsed, err := language.Parse(strings.ReplaceAll(key, "_", "-"))
		if err != nil {
			internalLogger.V(1).Info("skipping unknown language", "key", key)
			continue
		}

		supported = append(supported, key)
		tags = append(tags, parsed)
	}

	if len(tags) == 0 {
		return fallback
	}

	_, index, _ := language.NewMatcher(tags).Match(tag)
	return values[supported[index]]
}
