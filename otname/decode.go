package otname

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeString converts the raw bytes of a name record into a string, using
// the character encoding implied by the record's platform/encoding pair:
//
//   - Unicode platform (0): UTF-16BE for every encoding ID, as all Unicode
//     platform strings are stored as big-endian UTF-16.
//   - Windows platform (3), encodings 0 (symbol), 1 (Unicode BMP) and
//     10 (Unicode full repertoire): UTF-16BE.
//   - Macintosh platform (1), encoding 0: Mac Roman, a single-byte legacy
//     encoding.
//
// Pairs without a defined decoding rule fail with an UnsupportedEncoding
// error rather than guessing.
func DecodeString(raw []byte, platform PlatformID, encoding EncodingID) (string, error) {
	switch {
	case platform == PlatformUnicode:
		return decodeUTF16(raw)
	case platform == PlatformWindows &&
		(encoding == EncodingWindowsSymbol || encoding == EncodingWindowsBMP ||
			encoding == EncodingWindowsFullUni):
		return decodeUTF16(raw)
	case platform == PlatformMacintosh && encoding == EncodingMacRoman:
		return decodeMacRoman(raw)
	}
	return "", NameError{Kind: UnsupportedEncoding, Section: "Storage",
		Issue: fmt.Sprintf("no decoding rule for platform %d, encoding %d", platform, encoding)}
}

// CanDecode reports whether DecodeString has a decoding rule for a
// platform/encoding pair.
func CanDecode(platform PlatformID, encoding EncodingID) bool {
	switch platform {
	case PlatformUnicode:
		return true
	case PlatformWindows:
		return encoding == EncodingWindowsSymbol || encoding == EncodingWindowsBMP ||
			encoding == EncodingWindowsFullUni
	case PlatformMacintosh:
		return encoding == EncodingMacRoman
	}
	return false
}

func decodeUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", NameError{Kind: Malformed, Section: "Storage",
			Issue: fmt.Sprintf("decoding UTF-16 error: %v", err)}
	}
	return string(s), nil
}

func decodeMacRoman(str []byte) (string, error) {
	s, err := charmap.Macintosh.NewDecoder().Bytes(str)
	if err != nil {
		return "", NameError{Kind: Malformed, Section: "Storage",
			Issue: fmt.Sprintf("decoding Mac Roman error: %v", err)}
	}
	return string(s), nil
}
