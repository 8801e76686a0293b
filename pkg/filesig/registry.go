package filesig

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrDuplicateSignature is returned when two definitions share pattern and offset.
var ErrDuplicateSignature = errors.New("filesig: duplicate signature")

// Registry is an immutable set of signatures held in match order: offset
// ascending, then pattern length descending. It is safe for concurrent use.
type Registry struct {
	sigs       []Signature
	maxPattern int
}

// NewRegistry validates sigs and sorts them into match order.
func NewRegistry(sigs ...Signature) (*Registry, error) {
	type key struct {
		pattern string
		offset  int
	}
	seen := make(map[key]bool, len(sigs))

	sorted := make([]Signature, 0, len(sigs))
	maxPattern := 0
	for _, s := range sigs {
		if s.IsNone() {
			return nil, fmt.Errorf("%w: the none sentinel cannot be registered", ErrInvalidSignature)
		}
		k := key{s.pattern, s.offset}
		if seen[k] {
			return nil, fmt.Errorf("%w: %s at offset %d", ErrDuplicateSignature, s.pattern, s.offset)
		}
		seen[k] = true
		if len(s.pattern) > maxPattern {
			maxPattern = len(s.pattern)
		}
		sorted = append(sorted, s)
	}

	slices.SortStableFunc(sorted, func(a, b Signature) int {
		if a.offset != b.offset {
			return a.offset - b.offset
		}
		return len(b.pattern) - len(a.pattern)
	})

	return &Registry{sigs: sorted, maxPattern: maxPattern}, nil
}

// Default returns the built-in registry. It is built on first use and shared
// by every caller afterwards.
var Default = sync.OnceValue(func() *Registry {
	sigs := make([]Signature, 0, len(signatureTable))
	for _, e := range signatureTable {
		s, err := NewSignature(e.pattern, e.offset, e.description, e.extensions...)
		if err != nil {
			panic(fmt.Sprintf("filesig: built-in table: %v", err))
		}
		sigs = append(sigs, s)
	}
	reg, err := NewRegistry(sigs...)
	if err != nil {
		panic(fmt.Sprintf("filesig: built-in table: %v", err))
	}
	return reg
})

// Signatures returns the signatures in match order.
func (r *Registry) Signatures() []Signature {
	return slices.Clone(r.sigs)
}

// Len returns the number of registered signatures, excluding the sentinel.
func (r *Registry) Len() int { return len(r.sigs) }

// MaxPatternLength returns the longest registered pattern in hex characters.
func (r *Registry) MaxPatternLength() int { return r.maxPattern }

// WithExtension lists the signatures that name ext as a candidate.
func (r *Registry) WithExtension(ext string) []Signature {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	var out []Signature
	for _, s := range r.sigs {
		if s.Is(ext) {
			out = append(out, s)
		}
	}
	return out
}

// AtOffset returns a registry restricted to signatures at the given offset.
func (r *Registry) AtOffset(offset int) *Registry {
	sub := &Registry{}
	for _, s := range r.sigs {
		if s.offset == offset {
			sub.sigs = append(sub.sigs, s)
			if len(s.pattern) > sub.maxPattern {
				sub.maxPattern = len(s.pattern)
			}
		}
	}
	return sub
}

// Find returns the registered signature with the given pattern and offset.
func (r *Registry) Find(pattern string, offset int) (Signature, bool) {
	want := Signature{pattern: strings.ToUpper(pattern), offset: offset}
	for _, s := range r.sigs {
		if s.equal(want) {
			return s, true
		}
	}
	return None, false
}
