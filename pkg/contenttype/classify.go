package contenttype

import "unicode/utf8"

// Class is the coarse kind of content that matched no signature.
type Class string

const (
	Empty  Class = "empty"
	Text   Class = "text"
	Binary Class = "binary"
)

// SampleSize is the number of leading bytes Classify looks at.
const SampleSize = 512

// Classify guesses whether data is text or binary from byte statistics.
// Only the first SampleSize bytes are examined.
func Classify(data []byte) Class {
	if len(data) == 0 {
		return Empty
	}
	sample := data[:min(len(data), SampleSize)]

	var nulls, controls, highBits, printable int
	for _, b := range sample {
		switch {
		case b == 0:
			nulls++
		case b == '\t' || b == '\n' || b == '\r' || b == '\f':
			printable++
		case b < 0x20 || b == 0x7F:
			controls++
		case b < 0x80:
			printable++
		default:
			highBits++
		}
	}

	total := float64(len(sample))
	switch {
	case float64(nulls)/total > 0.01:
		return Binary
	case float64(controls)/total > 0.05:
		return Binary
	case highBits > 0:
		// a sample cut mid-rune is still text
		if utf8.Valid(trimPartialRune(sample)) {
			return Text
		}
		return Binary
	case float64(printable)/total > 0.85:
		return Text
	}
	return Binary
}

func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		c := b[len(b)-i]
		if c < 0x80 {
			return b
		}
		if utf8.RuneStart(c) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			return b
		}
	}
	return b
}
