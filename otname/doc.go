/*
Package otname decodes the localized strings of an OpenType 'name' table.

The naming table associates strings with a font: copyright notice, family
name, full font name, and so on. Each string is described by a name record
carrying a platform, an encoding, a language and a name identifier, plus the
location of the string's bytes within the table's string storage area.

Operating systems sometimes rewrite or truncate font names for privately
loaded fonts; reading the table directly recovers the names the font file
itself declares. Package otname consumes the raw table bytes (header at byte
0) and does not care how they were obtained — package ot's table-directory
reader is one suitable source.

Record selection is driven by an ordered list of acceptable
platform/encoding pairs supplied by the caller; records are scanned in
on-disk order and the first qualifying one wins, which keeps lookups
deterministic when several records carry the same name identifier.

All functions are pure computations over the input buffer and are safe for
concurrent use on independent buffers.
*/
package otname

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontname.names'
func tracer() tracing.Trace {
	return tracing.Select("fontname.names")
}
