// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package i18n

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// A Language is a language tag such as "fr" or "sv-SE", optionally
// resolved to a validated culture.
type Language struct {
	Tag     string
	Culture language.Tag
}

// Resolved returns true if the culture of this language has been resolved
func (l Language) Resolved() bool {
	return l.Culture != language.Und
}

// String returns the language tag
func (l Language) String() string {
	return l.Tag
}

// A CultureResolver turns a language tag into a culture, or fails if the
// tag does not name a known culture.
type CultureResolver interface {
	Resolve(tag string) (language.Tag, error)
}

// ErrUnknownCulture is returned (wrapped) by resolvers when a tag does not
// name a known culture.
var ErrUnknownCulture = errors.New("unknown culture")

// knownCultures matches tags against the locales of the CLDR
var knownCultures = language.NewMatcher(display.Supported.Tags())

// TextResolver resolves cultures with golang.org/x/text/language.
// Tags are accepted in BCP 47 form ("sv-SE") and in POSIX form ("sv_SE").
// Only tags matching a CLDR locale with at least high confidence are
// cultures, so that well-formed words such as "tmp" or "old" are not.
type TextResolver struct{}

var _ CultureResolver = TextResolver{}

// Resolve returns the culture of the given tag
func (TextResolver) Resolve(tag string) (language.Tag, error) {
	normalized := strings.Replace(strings.TrimSpace(tag), "_", "-", -1)
	if normalized == "" {
		return language.Und, errors.Wrap(ErrUnknownCulture, "empty language tag")
	}
	culture, err := language.Parse(normalized)
	if err != nil {
		return language.Und, errors.Wrapf(ErrUnknownCulture, "%s: %s", tag, err)
	}
	if base, conf := culture.Base(); conf == language.No || base.String() == "und" {
		return language.Und, errors.Wrapf(ErrUnknownCulture, "%s", tag)
	}
	if _, _, conf := knownCultures.Match(culture); conf < language.High {
		return language.Und, errors.Wrapf(ErrUnknownCulture, "%s: no matching locale", tag)
	}
	return culture, nil
}

// ResolveLanguage returns a Language for tag with its culture resolved by r
func ResolveLanguage(r CultureResolver, tag string) (Language, error) {
	culture, err := r.Resolve(tag)
	if err != nil {
		return Language{}, err
	}
	return Language{Tag: tag, Culture: culture}, nil
}
