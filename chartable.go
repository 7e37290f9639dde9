package ptape

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// windows1252Table maps every byte value to its decoded rune under the
// Windows best-fit variant of Windows-1252.
//
// golang.org/x/text/encoding/charmap.Windows1252 implements the strict
// ISO/IEC variant, which leaves the five C1-range code points below
// unassigned (its decoder replaces them with U+FFFD). Real save files
// rely on the Windows API MultiByteToWideChar behavior, which maps
// those five bytes to their corresponding C1 control characters
// instead. We seed the table by running every byte value through
// charmap's decoder and patch only those five entries.
var windows1252Table = buildWindows1252Table()

// windows1252BestFit lists the code points the strict charmap leaves
// unassigned but that the Windows best-fit mapping resolves to the
// identically-numbered C1 control character.
var windows1252BestFit = [...]byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}

func buildWindows1252Table() [256]rune {
	var table [256]rune
	dec := charmap.Windows1252.NewDecoder()
	for i := range table {
		out, err := dec.Bytes([]byte{byte(i)})
		if err != nil || len(out) == 0 {
			table[i] = utf8.RuneError
			continue
		}
		r, _ := utf8.DecodeRune(out)
		table[i] = r
	}
	for _, b := range windows1252BestFit {
		table[b] = rune(b)
	}
	return table
}

// isWhitespace reports whether b is insignificant whitespace: space,
// tab, CR, LF, form-feed, or vertical-tab.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}

// isBoundary reports whether b terminates an unquoted scalar: any
// whitespace byte, or one of '{', '}', '=', '#', '"'.
func isBoundary(b byte) bool {
	switch b {
	case '{', '}', '=', '#', '"':
		return true
	default:
		return isWhitespace(b)
	}
}
