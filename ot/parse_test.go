package ot

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- Synthetic font assembly ------------------------------------------------

type testTable struct {
	tag  string
	data []byte
}

func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

func appendU32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// buildFont assembles a minimal single-font SFNT stream. Tables must be given
// in ascending tag order; table data is padded to 4-byte boundaries.
func buildFont(t *testing.T, tables ...testTable) []byte {
	t.Helper()
	return buildFontWithType(t, 0x00010000, tables...)
}

func buildFontWithType(t *testing.T, fontType uint32, tables ...testTable) []byte {
	t.Helper()
	n := len(tables)
	font := make([]byte, 0, 128)
	font = appendU32(font, fontType)
	font = appendU16(font, uint16(n))
	font = appendU16(font, 0) // searchRange, unused by the parser
	font = appendU16(font, 0) // entrySelector
	font = appendU16(font, 0) // rangeShift
	offset := 12 + 16*n
	for _, tb := range tables {
		font = append(font, []byte((tb.tag + "    ")[:4])...)
		font = appendU32(font, 0) // checksum, ignored
		font = appendU32(font, uint32(offset))
		font = appendU32(font, uint32(len(tb.data)))
		offset += (len(tb.data) + 3) &^ 3
	}
	for _, tb := range tables {
		font = append(font, tb.data...)
		if pad := (4 - len(tb.data)&3) & 3; pad > 0 {
			font = append(font, make([]byte, pad)...)
		}
	}
	return font
}

// emptyNameTable is a well-formed 'name' table without records.
func emptyNameTable() []byte {
	b := appendU16(nil, 0) // format
	b = appendU16(b, 0)    // count
	return appendU16(b, 6) // string storage offset
}

// oneRecordNameTable holds a single Windows-BMP record for name ID 4 ("A").
func oneRecordNameTable() []byte {
	b := appendU16(nil, 0) // format
	b = appendU16(b, 1)    // count
	b = appendU16(b, 18)   // string storage offset
	b = appendU16(b, 3)    // platform Windows
	b = appendU16(b, 1)    // encoding Unicode BMP
	b = appendU16(b, 0x0409)
	b = appendU16(b, 4) // name ID: full font name
	b = appendU16(b, 2) // string length
	b = appendU16(b, 0) // string offset
	return append(b, 0x00, 0x41)
}

// --- Tests ------------------------------------------------------------------

func TestParseDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFont(t, testTable{"name", oneRecordNameTable()})
	otf, err := Parse(font)
	if err != nil {
		t.Fatal(err)
	}
	if otf.Header.FontType != 0x00010000 {
		t.Errorf("expected font type 0x00010000, is %x", otf.Header.FontType)
	}
	table := otf.Table(T("name"))
	if table == nil {
		t.Fatal("expected a name table to be located")
	}
	names := otf.NameTable()
	if names == nil {
		t.Fatal("expected typed access to the name table")
	}
	if names.RecordCount != 1 {
		t.Errorf("expected 1 name record, have %d", names.RecordCount)
	}
	off, size := names.Extent()
	if off != 28 || size != 20 {
		t.Errorf("expected name table extent (28, 20), is (%d, %d)", off, size)
	}
	if len(otf.Warnings()) != 0 {
		t.Errorf("expected no warnings, have %v", otf.Warnings())
	}
}

func TestParseWarnsOnZeroRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFont(t, testTable{"name", emptyNameTable()})
	otf, err := Parse(font)
	if err != nil {
		t.Fatal(err)
	}
	if len(otf.Warnings()) != 1 {
		t.Fatalf("expected 1 warning for a record-less name table, have %d", len(otf.Warnings()))
	}
}

func TestParseRejectsUnknownFontType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFontWithType(t, 0xdeadbeef, testTable{"name", emptyNameTable()})
	if _, err := Parse(font); err == nil {
		t.Error("expected parsing to fail for unsupported font type")
	}
}

func TestParseRejectsUnsortedTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	// "name" before "aaaa" violates ascending tag order
	font := buildFont(t, testTable{"name", emptyNameTable()}, testTable{"aaaa", []byte{1, 2, 3, 4}})
	if _, err := Parse(font); err == nil {
		t.Error("expected parsing to fail for unsorted table records")
	}
}

func TestParseRejectsOutOfBoundsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFont(t, testTable{"name", oneRecordNameTable()})
	font = font[:len(font)-4] // table now extends past the buffer
	if _, err := Parse(font); err == nil {
		t.Error("expected parsing to fail for out-of-bounds table extent")
	}
}

func TestParseRejectsMisalignedOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFont(t, testTable{"name", emptyNameTable()})
	// patch the directory entry's offset to a non-aligned value
	font[20], font[21], font[22], font[23] = 0, 0, 0, 29
	if _, err := Parse(font); err == nil {
		t.Error("expected parsing to fail for misaligned table offset")
	}
}

func TestParseRequiresNameTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFont(t, testTable{"head", []byte{0, 0, 0, 0}})
	if _, err := Parse(font); err == nil {
		t.Error("expected parsing to fail for a font without a name table")
	}
}

func TestParseRejectsTruncatedDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontname.ot")
	defer teardown()
	//
	font := buildFont(t, testTable{"name", emptyNameTable()})
	if _, err := Parse(font[:20]); err == nil {
		t.Error("expected parsing to fail for a truncated table directory")
	}
}

func TestTag(t *testing.T) {
	if s := T("name").String(); s != "name" {
		t.Errorf("T(\"name\").String() = %q; want \"name\"", s)
	}
	if MakeTag([]byte("name")) != T("name") {
		t.Error("MakeTag and T should agree on 4-letter tags")
	}
	if s := T("ab").String(); s != "ab  " {
		t.Errorf("short tags should be blank-padded, got %q", s)
	}
}
