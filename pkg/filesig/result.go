package filesig

import "strings"

// Result is the outcome of one match. The zero value is not meaningful; a
// failed or empty match carries the None signature.
type Result struct {
	// Signature is the longest registered pattern that matched, or None.
	Signature Signature
	// Available is the number of leading bytes that could be compared.
	Available int
}

// IsNone reports whether no signature matched.
func (r Result) IsNone() bool { return r.Signature.IsNone() }

// IsDisputed reports whether the matched pattern has several candidate extensions.
func (r Result) IsDisputed() bool { return r.Signature.IsDisputed() }

// HasExtension reports whether ext (with or without a leading dot) is a
// candidate extension, ignoring case. False for None and for an empty ext.
func (r Result) HasExtension(ext string) bool {
	return r.Signature.Is(strings.TrimPrefix(ext, "."))
}

// Extensions returns the candidate extensions; empty for None.
func (r Result) Extensions() []string { return r.Signature.Extensions() }

// Extension returns the first candidate extension, or "" for None.
func (r Result) Extension() string {
	if len(r.Signature.extensions) == 0 {
		return ""
	}
	return r.Signature.extensions[0]
}

func (r Result) String() string { return r.Signature.String() }

// Summary is the serializable view of a Result.
type Summary struct {
	Extensions  []string `json:"extensions"`
	Disputed    bool     `json:"disputed"`
	Unknown     bool     `json:"unknown"`
	Pattern     string   `json:"pattern,omitempty"`
	Offset      int      `json:"offset"`
	Description string   `json:"description"`
	Available   int      `json:"available"`
}

// Summary returns the serializable view of r.
func (r Result) Summary() Summary {
	return Summary{
		Extensions:  r.Extensions(),
		Disputed:    r.IsDisputed(),
		Unknown:     r.IsNone(),
		Pattern:     r.Signature.pattern,
		Offset:      r.Signature.offset,
		Description: r.Signature.description,
		Available:   r.Available,
	}
}
