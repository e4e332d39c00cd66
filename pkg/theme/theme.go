// Package theme holds the data that controls how a calendar looks: a Style
// (colors, fonts, thicknesses), a Geometry (split and size ratios, padding)
// and a Language (month and day names).
//
// Variants are looked up by name through a [Provider], adjusted with
// path=value overrides on a [Builder] and finally frozen into a [Theme].
// A frozen Theme is a plain value with no shared references, so it can be
// handed to any number of concurrent renders.
//
// # Overrides
//
// Overrides address fields by their TOML path and take a TOML literal:
//
//	b.Override(theme.KindStyle, "dom_weekend.bg=#ffe0e0")
//	b.Override(theme.KindGeometry, "dom.size=[0.5, 0.5, 0.8, 0.8]")
//	b.Override(theme.KindGeometry, "month.symmetric=true")
//
// Bare words that are not valid TOML are treated as strings.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// Variant kinds, used for overrides and registry lookups.
const (
	KindStyle    = "style"
	KindGeometry = "geometry"
	KindLanguage = "lang"
)

// Default variant names.
const (
	DefaultStyle    = "default"
	DefaultGeometry = "default"
	DefaultLanguage = "EN"
)

// Theme is the frozen (Style, Geometry, Language) triple consumed by the
// renderer.
type Theme struct {
	Style    Style
	Geometry Geometry
	Language Language
}

// Builder collects overrides before a Theme is frozen.
type Builder struct {
	style    Style
	geometry Geometry
	language Language
}

// NewBuilder resolves the three named variants from p. Empty names select
// the defaults.
func NewBuilder(p Provider, style, geometry, language string) (*Builder, error) {
	if style == "" {
		style = DefaultStyle
	}
	if geometry == "" {
		geometry = DefaultGeometry
	}
	if language == "" {
		language = DefaultLanguage
	}

	s, err := p.Style(style)
	if err != nil {
		return nil, err
	}
	g, err := p.Geometry(geometry)
	if err != nil {
		return nil, err
	}
	l, err := p.Language(language)
	if err != nil {
		return nil, err
	}
	return &Builder{style: s, geometry: g, language: l}, nil
}

// Default returns a builder over the built-in default variants.
func Default() *Builder {
	return &Builder{style: defaultStyle(), geometry: defaultGeometry(), language: englishLanguage()}
}

// Style exposes the style being built for direct edits.
func (b *Builder) Style() *Style { return &b.style }

// Geometry exposes the geometry being built for direct edits.
func (b *Builder) Geometry() *Geometry { return &b.geometry }

// Language exposes the language being built for direct edits.
func (b *Builder) Language() *Language { return &b.language }

// Override applies one "path=value" assignment to the variant of the given
// kind.
func (b *Builder) Override(kind, assignment string) error {
	path, value, ok := strings.Cut(assignment, "=")
	path, value = strings.TrimSpace(path), strings.TrimSpace(value)
	if !ok || path == "" {
		return errors.New(errors.ErrCodeInvalidOverride, "override %q: expected path=value", assignment)
	}

	var target any
	switch kind {
	case KindStyle:
		target = &b.style
	case KindGeometry:
		target = &b.geometry
	case KindLanguage:
		target = &b.language
	default:
		return errors.New(errors.ErrCodeInvalidOverride, "unknown override kind %q", kind)
	}
	if err := decodeAssignment(target, path, value); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOverride, err, "%s override %q", kind, assignment)
	}
	return nil
}

// Overrides applies a list of assignments, stopping at the first error.
func (b *Builder) Overrides(kind string, assignments []string) error {
	for _, a := range assignments {
		if err := b.Override(kind, a); err != nil {
			return err
		}
	}
	return nil
}

// Freeze validates the collected values and returns an immutable Theme.
func (b *Builder) Freeze() (Theme, error) {
	if err := b.geometry.Validate(); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "geometry %s", b.geometry.Name)
	}
	if err := b.language.Validate(); err != nil {
		return Theme{}, err
	}
	if b.style.FrameThickness < 0 || b.style.Month.FrameThickness < 0 || b.style.Shadow.Size < 0 {
		return Theme{}, errors.New(errors.ErrCodeInvalidStyle, "style %s: negative thickness", b.style.Name)
	}
	return Theme{Style: b.style, Geometry: b.geometry, Language: b.language}, nil
}

// decodeAssignment decodes "path = value" as a TOML document on top of
// target. A value that does not parse as TOML is retried as a string.
func decodeAssignment(target any, path, value string) error {
	md, err := toml.Decode(fmt.Sprintf("%s = %s", path, value), target)
	if _, isParse := err.(toml.ParseError); isParse {
		md, err = toml.Decode(fmt.Sprintf("%s = %s", path, strconv.Quote(value)), target)
	}
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown field %s", undecoded[0])
	}
	return nil
}
