package otname

import "fmt"

// ErrorKind classifies failures while reading a 'name' table.
//
// Absence of a name is an error of its own kind: an empty result string never
// stands in for "not found", since a font may legitimately store an empty
// string.
type ErrorKind int

const (
	// Malformed indicates the buffer is too short for the header, the record
	// array, or a record's string range. The input is not a valid name table.
	Malformed ErrorKind = iota
	// UnsupportedFormat indicates a format selector other than 0.
	UnsupportedFormat
	// NameNotFound indicates that no record matches the requested name
	// identifier under the caller's platform/encoding preference list.
	NameNotFound
	// UnsupportedEncoding indicates a record whose platform/encoding pair has
	// no defined decoding rule.
	UnsupportedEncoding
	// OutOfBounds indicates an internal read would have exceeded the buffer.
	OutOfBounds
	// SourceUnavailable indicates the collaborator supplying table bytes could
	// not deliver them (e.g. a font without a name table).
	SourceUnavailable
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case Malformed:
		return "MALFORMED"
	case UnsupportedFormat:
		return "UNSUPPORTED-FORMAT"
	case NameNotFound:
		return "NAME-NOT-FOUND"
	case UnsupportedEncoding:
		return "UNSUPPORTED-ENCODING"
	case OutOfBounds:
		return "OUT-OF-BOUNDS"
	case SourceUnavailable:
		return "SOURCE-UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// NameError is a typed error from reading a name table.
type NameError struct {
	Kind    ErrorKind // classification of the failure
	Section string    // section of the table involved (e.g. "Header", "Record", "Storage")
	Issue   string    // human-readable description of the issue
}

// Error implements the error interface.
func (e NameError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("[%s] name/%s: %s", e.Kind, e.Section, e.Issue)
	}
	return fmt.Sprintf("[%s] name: %s", e.Kind, e.Issue)
}

// Is reports kind equality, so that sentinel matching with errors.Is works:
//
//	if errors.Is(err, otname.ErrNameNotFound) { … }
func (e NameError) Is(target error) bool {
	t, ok := target.(NameError)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is matching. Errors returned by this package
// carry a descriptive Issue; these sentinels match on kind alone.
var (
	ErrMalformed           = NameError{Kind: Malformed}
	ErrUnsupportedFormat   = NameError{Kind: UnsupportedFormat}
	ErrNameNotFound        = NameError{Kind: NameNotFound}
	ErrUnsupportedEncoding = NameError{Kind: UnsupportedEncoding}
	ErrOutOfBounds         = NameError{Kind: OutOfBounds}
	ErrSourceUnavailable   = NameError{Kind: SourceUnavailable}
)
