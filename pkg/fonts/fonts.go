// Package fonts resolves the three faces a figure uses: one for tick labels,
// one for the title, and one for all other text.
//
// Every face falls back to the Liberation fonts bundled with gonum/plot, so
// a figure renders without any font files installed. Custom TrueType or
// OpenType files replace a face when a path is configured.
package fonts

import (
	"os"

	"github.com/go-fonts/liberation/liberationsansbold"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"

	"github.com/spred/plotplotplot/pkg/errors"
)

// Typefaces registered for custom font files.
const (
	TickTypeface  font.Typeface = "DecimaMonoPro"
	TitleTypeface font.Typeface = "ApercuMedium"
	TextTypeface  font.Typeface = "Apercu"

	// BoldTypeface holds Liberation Sans Bold at normal weight. The PDF
	// backend only resolves faces registered with a regular style.
	BoldTypeface font.Typeface = "LiberationSansBold"
)

// Built-in faces.
var (
	DefaultTick  = font.Font{Typeface: "Liberation", Variant: "Mono"}
	DefaultTitle = font.Font{Typeface: BoldTypeface}
	DefaultText  = font.Font{Typeface: "Liberation", Variant: "Sans"}
)

// Paths points at optional font files. Empty paths keep the built-in face.
type Paths struct {
	Tick  string `json:"tick,omitempty" toml:"tick" yaml:"tick,omitempty"`
	Title string `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Text  string `json:"text,omitempty" toml:"text" yaml:"text,omitempty"`
}

// Set is a font cache together with the faces chosen for each text role.
type Set struct {
	Cache *font.Cache
	Tick  font.Font
	Title font.Font
	Text  font.Font
}

// Load builds a Set from the built-in faces and any configured files.
func Load(paths Paths) (*Set, error) {
	bold, err := Parse(liberationsansbold.TTF, BoldTypeface)
	if err != nil {
		return nil, err
	}
	s := &Set{
		Cache: font.NewCache(append(liberation.Collection(), bold)),
		Tick:  DefaultTick,
		Title: DefaultTitle,
		Text:  DefaultText,
	}
	roles := []struct {
		path     string
		typeface font.Typeface
		dst      *font.Font
	}{
		{paths.Tick, TickTypeface, &s.Tick},
		{paths.Title, TitleTypeface, &s.Title},
		{paths.Text, TextTypeface, &s.Text},
	}
	for _, r := range roles {
		if r.path == "" {
			continue
		}
		face, err := ParseFile(r.path, r.typeface)
		if err != nil {
			return nil, err
		}
		s.Cache.Add(font.Collection{face})
		*r.dst = face.Font
	}
	return s, nil
}

// Default returns the Set of built-in faces.
func Default() *Set {
	s, _ := Load(Paths{})
	return s
}

// Handler returns a plain-text handler drawing from the set's cache.
func (s *Set) Handler() text.Handler {
	return text.Plain{Fonts: s.Cache}
}

// ParseFile reads a TrueType or OpenType file and registers it under typeface.
func ParseFile(path string, typeface font.Typeface) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return font.Face{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s", path)
	}
	return Parse(data, typeface)
}

// Parse parses font data and registers it under typeface.
func Parse(data []byte, typeface font.Typeface) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return font.Face{}, errors.Wrap(errors.ErrCodeConfiguration, err, "parse font %s", typeface)
	}
	return font.Face{
		Font: font.Font{Typeface: typeface},
		Face: f,
	}, nil
}
