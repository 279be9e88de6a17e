/*
Package fontname recovers the human-readable name strings embedded in a
TrueType/OpenType font's 'name' table.

Operating systems resolve font names through their own registries and may
silently rewrite or truncate names for privately loaded fonts. Reading the
naming table directly yields the names the font file itself declares, most
importantly the "full font name" (name ID 4).

The heavy lifting is done by two sister packages: ot locates tables through
the font's table directory, and otname decodes name records and their
strings. This package ties them together for the common use-cases:

	otf, err := fontname.LoadFont("SomeFont.ttf")
	full, err := fontname.FullName(otf)

Lookups are driven by an ordered list of acceptable platform/encoding pairs;
see otname.DefaultPreference.
*/
package fontname

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"

	"github.com/otkit/fontname/internal/fontload"
	"github.com/otkit/fontname/ot"
	"github.com/otkit/fontname/otname"
)

// tracer writes to trace with key 'fontname'
func tracer() tracing.Trace {
	return tracing.Select("fontname")
}

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream. It
// must not change after parsing for the font to be usable.
func FromBinary(data []byte) (*ot.Font, error) {
	return ot.Parse(data)
}

// LoadFont loads an OpenType font (TTF or OTF) from a file and decodes its
// table directory.
func LoadFont(fontfile string) (*ot.Font, error) {
	f, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded SFNT font = %s", f.Fontname)
	return ot.Parse(f.Binary)
}

// Names returns the decoded naming table of a font. Fonts without a usable
// 'name' table yield an error of kind otname.SourceUnavailable.
func Names(f *ot.Font) (*otname.Table, error) {
	if f == nil || f.NameTable() == nil {
		return nil, otname.NameError{Kind: otname.SourceUnavailable, Section: "Font",
			Issue: "font carries no name table"}
	}
	return otname.ParseTable(f.NameTable().Binary())
}

// FullName returns the full font name (name ID 4) a font declares for itself,
// preferring Windows Unicode records with fallback per
// otname.DefaultPreference.
func FullName(f *ot.Font) (string, error) {
	return Name(f, sfnt.NameIDFull, nil)
}

// Name returns the string for an arbitrary name identifier. A nil prefer list
// means otname.DefaultPreference.
func Name(f *ot.Font, id sfnt.NameID, prefer []otname.PlatformEncoding) (string, error) {
	names, err := Names(f)
	if err != nil {
		return "", err
	}
	return names.Find(id, prefer)
}

// FamilyName extracts family and subfamily names from a font's 'name' table.
//
// Returned values are empty if no matching records exist or if records cannot
// be decoded by the name-table reader.
func FamilyName(f *ot.Font) (family, subfamily string) {
	names, err := Names(f)
	if err != nil {
		return
	}
	for nameID, stringValue := range names.Range() {
		switch nameID {
		case sfnt.NameIDFamily:
			family = stringValue
		case sfnt.NameIDSubfamily:
			subfamily = stringValue
		}
	}
	return
}
