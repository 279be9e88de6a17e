/*
Package ot locates tables within the binary data of an OpenType font.

The package reads an SFNT stream's top-level table directory and exposes each
table as a slice of the original font bytes, without copying. It deliberately
does not interpret table contents beyond what is needed to locate them safely;
interpreting a table (e.g. decoding the localized strings of table 'name') is
the job of a sister package.

Offsets and sizes from the directory are validated against the font's extent
before any slice is taken, so that corrupt or hostile fonts cannot cause reads
past the buffer. Issues found during parsing are accumulated as typed errors
and warnings on the resulting Font and can be inspected by clients.
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontname.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontname.ot")
}
