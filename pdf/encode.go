package pdf

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// typographic maps punctuation that Latin-1 core fonts render poorly (or not
// at all) to plain-text equivalents before encoding.
var typographic = map[rune]string{
	'‐': "-",   // hyphen
	'–': "-",   // en dash
	'—': "-",   // em dash
	'−': "-",   // minus sign
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'•': "-",   // bullet
	'…': "...", // ellipsis
	' ': " ",   // no-break space
}

// Substitute rewrites text so every rune has a Latin-1 representation:
// typographic punctuation becomes its plain-text equivalent, anything else
// outside the charset becomes "?", never dropped. The result is still UTF-8,
// with every rune value below 0x100, so rune-based width measurement sees
// exactly one rune per final glyph.
func Substitute(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if sub, ok := typographic[r]; ok {
			b.WriteString(sub)
			continue
		}
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

// Encode converts text to the single-byte Latin-1 form the PDF core fonts
// expect. Accented Portuguese letters pass through as their Latin-1 bytes.
func Encode(text string) string {
	sub := Substitute(text)
	buf := make([]byte, 0, len(sub))
	for _, r := range sub {
		// Substitute guarantees r < 0x100, where Latin-1 equals Unicode.
		buf = append(buf, byte(r))
	}
	return string(buf)
}
