package otname

import (
	"fmt"
	"iter"

	"golang.org/x/image/font/sfnt"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// PlatformID identifies the platform convention of a name record.
type PlatformID uint16

const (
	PlatformUnicode   PlatformID = 0
	PlatformMacintosh PlatformID = 1
	PlatformWindows   PlatformID = 3
)

// EncodingID identifies a character encoding within a platform's convention.
// The numeric values are only meaningful together with a PlatformID.
type EncodingID uint16

const (
	EncodingUnicodeBMP     EncodingID = 3  // platform 0
	EncodingMacRoman       EncodingID = 0  // platform 1
	EncodingWindowsSymbol  EncodingID = 0  // platform 3
	EncodingWindowsBMP     EncodingID = 1  // platform 3
	EncodingWindowsFullUni EncodingID = 10 // platform 3
)

// PlatformEncoding is a platform/encoding pair, the unit of the selection
// policy's preference list.
type PlatformEncoding struct {
	Platform PlatformID
	Encoding EncodingID
}

// DefaultPreference accepts the pairs this package can decode, Windows
// Unicode BMP first. Callers needing a different fallback chain pass their
// own list to Find.
var DefaultPreference = []PlatformEncoding{
	{PlatformWindows, EncodingWindowsBMP},
	{PlatformWindows, EncodingWindowsSymbol},
	{PlatformUnicode, EncodingUnicodeBMP},
	{PlatformMacintosh, EncodingMacRoman},
}

// Record is one entry of the name table's record array. It describes one
// localized string: who encodes it (platform/encoding), which language it is
// in, what it means (the name identifier), and where its bytes live within
// the table's string storage area.
type Record struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	length   uint16      // byte length of the string content
	offset   uint16      // offset of the string content, relative to string storage
}

// Table is a decoded view over a font's 'name' table. It keeps a reference to
// the raw table bytes; records address string content within them.
type Table struct {
	binary  []byte
	storage int // string storage offset from the start of the table
	records []Record
}

// ParseTable reads the header and record array of a 'name' table from raw
// bytes. The buffer must contain the table with its header at byte 0.
//
// Header and record array bounds are fully validated; the extent of each
// record's string content is checked at lookup time, so a single rotten
// record does not make the remaining names unreachable.
func ParseTable(b []byte) (*Table, error) {
	if len(b) < nameHeaderSize {
		return nil, NameError{Kind: Malformed, Section: "Header",
			Issue: fmt.Sprintf("table too short: %d bytes", len(b))}
	}
	if format := u16(b[0:2]); format != 0 {
		return nil, NameError{Kind: UnsupportedFormat, Section: "Header",
			Issue: fmt.Sprintf("unrecognized table format %d", format)}
	}
	count := int(u16(b[2:4]))
	storage := int(u16(b[4:6]))
	if storage > len(b) {
		return nil, NameError{Kind: Malformed, Section: "Header",
			Issue: fmt.Sprintf("string storage offset %d exceeds table size %d", storage, len(b))}
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		return nil, NameError{Kind: Malformed, Section: "Records",
			Issue: fmt.Sprintf("%d records require %d bytes, have %d", count, recordsEnd, len(b))}
	}
	tracer().Debugf("name table with %d records, storage at %d", count, storage)
	t := &Table{
		binary:  b,
		storage: storage,
		records: make([]Record, 0, count),
	}
	for i := range count {
		rec := b[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
		t.records = append(t.records, Record{
			Platform: PlatformID(u16(rec[0:2])),
			Encoding: EncodingID(u16(rec[2:4])),
			Language: u16(rec[4:6]),
			Name:     sfnt.NameID(u16(rec[6:8])),
			length:   u16(rec[8:10]),
			offset:   u16(rec[10:12]),
		})
	}
	return t, nil
}

// Len returns the number of name records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns the record array in on-disk order.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	records := make([]Record, len(t.records))
	copy(records, t.records)
	return records
}

// stringBytes resolves a record to its raw string content, validating the
// record's extent against the table buffer.
func (t *Table) stringBytes(r Record) ([]byte, error) {
	start := t.storage + int(r.offset)
	end := start + int(r.length)
	if end > len(t.binary) {
		return nil, NameError{Kind: Malformed, Section: "Storage",
			Issue: fmt.Sprintf("string range [%d:%d] exceeds table size %d", start, end, len(t.binary))}
	}
	return t.binary[start:end], nil
}

// String decodes the string content of a single record. It fails with a
// Malformed error if the record's extent exceeds the table, and with an
// UnsupportedEncoding error if no decoding rule exists for the record's
// platform/encoding pair.
func (t *Table) String(r Record) (string, error) {
	raw, err := t.stringBytes(r)
	if err != nil {
		return "", err
	}
	return DecodeString(raw, r.Platform, r.Encoding)
}

// Find returns the string for a requested name identifier.
//
// Records are scanned in on-disk order; the first record whose name
// identifier matches and whose platform/encoding pair is in the prefer list
// wins, even if a later record would qualify as well. A nil prefer list means
// DefaultPreference.
//
// Absence is an error of kind NameNotFound, never an empty string.
func (t *Table) Find(name sfnt.NameID, prefer []PlatformEncoding) (string, error) {
	if prefer == nil {
		prefer = DefaultPreference
	}
	for _, r := range t.records {
		if r.Name != name {
			continue
		}
		if !accepts(prefer, r.Platform, r.Encoding) {
			continue
		}
		tracer().Debugf("name %d matched by record (platform %d, encoding %d)", name, r.Platform, r.Encoding)
		return t.String(r)
	}
	return "", NameError{Kind: NameNotFound, Section: "Records",
		Issue: fmt.Sprintf("no record for name ID %d matches the preference list", name)}
}

func accepts(prefer []PlatformEncoding, p PlatformID, e EncodingID) bool {
	for _, pe := range prefer {
		if pe.Platform == p && pe.Encoding == e {
			return true
		}
	}
	return false
}

// Range yields decoded (nameID, value) pairs for every record this package
// can decode, in on-disk order. Records with unsupported encodings or invalid
// string extents are skipped, not reported; use Find for strict lookups.
func (t *Table) Range() iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		if t == nil {
			return
		}
		for _, r := range t.records {
			if !CanDecode(r.Platform, r.Encoding) {
				continue
			}
			value, err := t.String(r)
			if err != nil {
				tracer().Debugf("skipping name record: %v", err)
				continue
			}
			if !yield(r.Name, value) {
				return
			}
		}
	}
}
