package ot

import "testing"

// TestErrorSeverity verifies the ErrorSeverity String() method.
func TestErrorSeverity(t *testing.T) {
	tests := []struct {
		severity ErrorSeverity
		expected string
	}{
		{SeverityCritical, "CRITICAL"},
		{SeverityMajor, "MAJOR"},
		{SeverityMinor, "MINOR"},
		{ErrorSeverity(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.severity.String()
		if result != tt.expected {
			t.Errorf("ErrorSeverity(%d).String() = %q; want %q", tt.severity, result, tt.expected)
		}
	}
}

// TestFontError verifies FontError formatting.
func TestFontError(t *testing.T) {
	tests := []struct {
		name     string
		err      FontError
		expected string
	}{
		{
			name: "Error with offset",
			err: FontError{
				Table:    T("name"),
				Section:  "Bounds",
				Issue:    "bounds exceed font size",
				Severity: SeverityCritical,
				Offset:   1234,
			},
			expected: "[CRITICAL] name/Bounds at offset 1234: bounds exceed font size",
		},
		{
			name: "Error without offset",
			err: FontError{
				Table:    T("head"),
				Section:  "Offset",
				Issue:    "invalid table offset",
				Severity: SeverityMajor,
				Offset:   0,
			},
			expected: "[MAJOR] head/Offset: invalid table offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("FontError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}

// TestFontWarning verifies FontWarning formatting.
func TestFontWarning(t *testing.T) {
	w := FontWarning{Table: T("name"), Issue: "name table has no records", Offset: 0}
	expected := "[WARNING] name: name table has no records"
	if w.String() != expected {
		t.Errorf("FontWarning.String() = %q; want %q", w.String(), expected)
	}
	w.Offset = 42
	expected = "[WARNING] name at offset 42: name table has no records"
	if w.String() != expected {
		t.Errorf("FontWarning.String() = %q; want %q", w.String(), expected)
	}
}

// TestErrorCollector verifies the errorCollector helper type.
func TestErrorCollector(t *testing.T) {
	ec := &errorCollector{}

	if ec.hasCriticalErrors() {
		t.Error("errorCollector should not have critical errors initially")
	}

	ec.addError(T("name"), "Header", "minor issue", SeverityMinor, 100)
	if ec.hasCriticalErrors() {
		t.Error("errorCollector should not have critical errors yet")
	}
	if len(ec.errors) != 1 {
		t.Errorf("errorCollector should have 1 error; got %d", len(ec.errors))
	}

	ec.addError(T(""), "TableRecords", "critical issue", SeverityCritical, 12)
	if !ec.hasCriticalErrors() {
		t.Error("errorCollector should have critical errors after adding one")
	}

	ec.addWarning(T("name"), "warning issue", 400)
	if len(ec.warnings) != 1 {
		t.Errorf("errorCollector should have 1 warning; got %d", len(ec.warnings))
	}
}

// TestFontErrorMethods verifies Font error inspection methods.
func TestFontErrorMethods(t *testing.T) {
	font := &Font{
		parseErrors: []FontError{
			{Table: T("name"), Section: "Header", Issue: "minor issue", Severity: SeverityMinor},
			{Table: T(""), Section: "Bounds", Issue: "critical issue", Severity: SeverityCritical},
		},
		parseWarnings: []FontWarning{
			{Table: T("name"), Issue: "warning issue"},
		},
	}

	if len(font.Errors()) != 2 {
		t.Errorf("Font.Errors() should return 2 errors; got %d", len(font.Errors()))
	}
	if len(font.Warnings()) != 1 {
		t.Errorf("Font.Warnings() should return 1 warning; got %d", len(font.Warnings()))
	}
	critical := font.CriticalErrors()
	if len(critical) != 1 {
		t.Errorf("Font.CriticalErrors() should return 1 error; got %d", len(critical))
	}
	if !font.HasCriticalErrors() {
		t.Error("Font.HasCriticalErrors() should return true")
	}

	emptyFont := &Font{}
	if len(emptyFont.Errors()) != 0 || len(emptyFont.Warnings()) != 0 {
		t.Error("empty font should return empty error and warning slices")
	}
	if emptyFont.HasCriticalErrors() {
		t.Error("empty font should not have critical errors")
	}
}
