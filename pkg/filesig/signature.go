// Package filesig identifies the binary type of a byte stream by comparing its
// leading bytes against a registry of magic byte patterns recorded at fixed
// offsets. File names and metadata are never consulted.
//
// Example usage:
//
//	f, err := os.Open("report.bin")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	res, err := filesig.Detect(ctx, f)
//	if err != nil {
//	    return err // the source could not be read
//	}
//	if res.IsNone() {
//	    fmt.Println("unknown")
//	} else {
//	    fmt.Println(res.Extensions(), res.IsDisputed())
//	}
package filesig

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxPatternLength is the longest pattern in the built-in registry, in hex characters.
	MaxPatternLength = 38

	// MaxPatternBytes is the number of bytes needed for any single comparison.
	MaxPatternBytes = MaxPatternLength / 2
)

// ErrInvalidSignature is returned by NewSignature when a definition breaks an invariant.
var ErrInvalidSignature = errors.New("filesig: invalid signature")

// Signature describes one known magic pattern: the bytes expected at a byte
// offset, and the extensions of the formats that start with those bytes.
// A Signature is immutable once built.
type Signature struct {
	pattern     string // upper-case hex
	offset      int
	extensions  []string
	description string
}

// None is the signature reported when nothing in the registry matches.
var None = Signature{description: "unknown"}

// NewSignature builds a validated signature. The pattern is a hex string of even
// length no longer than MaxPatternLength. Duplicate extensions are dropped,
// keeping the first occurrence.
func NewSignature(pattern string, offset int, description string, extensions ...string) (Signature, error) {
	pattern = strings.ToUpper(strings.TrimSpace(pattern))
	if err := validatePattern(pattern); err != nil {
		return Signature{}, err
	}
	if offset < 0 {
		return Signature{}, fmt.Errorf("%w: negative offset %d", ErrInvalidSignature, offset)
	}

	exts := make([]string, 0, len(extensions))
	seen := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		key := strings.ToUpper(ext)
		if ext == "" || seen[key] {
			continue
		}
		seen[key] = true
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return Signature{}, fmt.Errorf("%w: pattern %s has no extensions", ErrInvalidSignature, pattern)
	}

	return Signature{
		pattern:     pattern,
		offset:      offset,
		extensions:  exts,
		description: description,
	}, nil
}

func validatePattern(pattern string) error {
	switch {
	case pattern == "":
		return fmt.Errorf("%w: empty pattern", ErrInvalidSignature)
	case len(pattern)%2 != 0:
		return fmt.Errorf("%w: odd pattern length %d", ErrInvalidSignature, len(pattern))
	case len(pattern) > MaxPatternLength:
		return fmt.Errorf("%w: pattern length %d exceeds %d", ErrInvalidSignature, len(pattern), MaxPatternLength)
	}
	if _, err := hex.DecodeString(pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return nil
}

// Pattern returns the expected bytes as upper-case hex.
func (s Signature) Pattern() string { return s.pattern }

// Offset returns the byte position where the pattern must appear.
func (s Signature) Offset() int { return s.offset }

// Description returns the human readable format name.
func (s Signature) Description() string { return s.description }

// Extensions returns the candidate extensions in registry order.
func (s Signature) Extensions() []string {
	out := make([]string, len(s.extensions))
	copy(out, s.extensions)
	return out
}

// Bytes returns the decoded pattern.
func (s Signature) Bytes() []byte {
	b, _ := hex.DecodeString(s.pattern)
	return b
}

// IsNone reports whether s is the no-match sentinel.
func (s Signature) IsNone() bool { return s.pattern == "" }

// IsDisputed reports whether the pattern is shared by several formats, so the
// bytes alone cannot tell them apart.
func (s Signature) IsDisputed() bool { return len(s.extensions) > 1 }

// Is reports whether ext is one of the candidate extensions, ignoring case.
// It is always false for the sentinel and for an empty ext.
func (s Signature) Is(ext string) bool {
	if ext == "" || s.IsNone() {
		return false
	}
	for _, e := range s.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// String returns "PATTERN@offset [EXT|EXT]".
func (s Signature) String() string {
	if s.IsNone() {
		return "unknown"
	}
	return fmt.Sprintf("%s@%d [%s]", s.pattern, s.offset, strings.Join(s.extensions, "|"))
}

// equal compares identity within a registry.
func (s Signature) equal(o Signature) bool {
	return s.pattern == o.pattern && s.offset == o.offset
}
