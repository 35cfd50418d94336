package glyph

import (
	"fmt"
	"strings"
)

// Glyph describes how a category is presented and typed on the command line.
type Glyph struct {
	Key     string
	Symbol  string
	Noun    string
	Meaning string
	Aliases []string
}

// Category classifies an item. The zero value is not a valid category.
type Category int

const (
	Unknown Category = iota
	Video
	Audio
	Image
	Page
	Document
	Other
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{Video, Audio, Image, Page, Document, Other}
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     "?",
		Symbol:  "?",
		Noun:    "unknown",
		Meaning: "uncategorized",
	}, Glyph{
		Key:     "v",
		Symbol:  "▶",
		Noun:    "video",
		Meaning: "video",
		Aliases: []string{"videos", "movie", "movies"},
	}, Glyph{
		Key:     "a",
		Symbol:  "♪",
		Noun:    "audio",
		Meaning: "audio",
		Aliases: []string{"music", "song", "songs", "podcast"},
	}, Glyph{
		Key:     "i",
		Symbol:  "▣",
		Noun:    "image",
		Meaning: "image",
		Aliases: []string{"images", "photo", "photos", "picture"},
	}, Glyph{
		Key:     "p",
		Symbol:  "◍",
		Noun:    "page",
		Meaning: "saved web page",
		Aliases: []string{"pages", "web", "site"},
	}, Glyph{
		Key:     "d",
		Symbol:  "≡",
		Noun:    "document",
		Meaning: "document",
		Aliases: []string{"documents", "doc", "docs", "pdf"},
	}, Glyph{
		Key:     "o",
		Symbol:  "•",
		Noun:    "other",
		Meaning: "anything else",
		Aliases: []string{"misc"},
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c > Unknown && c <= Other
}

func (c Category) Glyph() Glyph {
	if !c.Valid() {
		return DefaultGlyphs()[Unknown]
	}
	return DefaultGlyphs()[c]
}

func (c Category) String() string {
	return c.Glyph().Noun
}

func (c Category) Symbol() string {
	return c.Glyph().Symbol
}

// MarshalText encodes the category by its noun.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("glyph: invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := CategoryForAlias(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryForAlias resolves a noun, key, symbol or alias to a Category.
func CategoryForAlias(alias string) (Category, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	if a == "" {
		return Unknown, fmt.Errorf("glyph: empty category")
	}
	for _, c := range Categories() {
		g := c.Glyph()
		if a == g.Noun || a == g.Key || a == g.Symbol {
			return c, nil
		}
		for _, al := range g.Aliases {
			if a == al {
				return c, nil
			}
		}
	}
	return Unknown, fmt.Errorf("glyph: unknown category %q", alias)
}
