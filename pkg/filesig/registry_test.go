package filesig

import (
	"errors"
	"fmt"
	"testing"
)

func mustSignature(t *testing.T, pattern string, offset int, exts ...string) Signature {
	t.Helper()
	sig, err := NewSignature(pattern, offset, pattern, exts...)
	if err != nil {
		t.Fatalf("NewSignature(%q, %d): %v", pattern, offset, err)
	}
	return sig
}

func mustRegistry(t *testing.T, sigs ...Signature) *Registry {
	t.Helper()
	reg, err := NewRegistry(sigs...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestRegistryOrder(t *testing.T) {
	reg := mustRegistry(t,
		mustSignature(t, "AA", 4, "A"),
		mustSignature(t, "BBBB", 0, "B"),
		mustSignature(t, "CC", 0, "C"),
		mustSignature(t, "DDDDDD", 4, "D"),
		mustSignature(t, "EEEEEE", 0, "E"),
		mustSignature(t, "FF", 0, "F"),
	)

	want := []string{"EEEEEE@0", "BBBB@0", "CC@0", "FF@0", "DDDDDD@4", "AA@4"}
	sigs := reg.Signatures()
	if len(sigs) != len(want) {
		t.Fatalf("Len = %d, want %d", len(sigs), len(want))
	}
	for i, s := range sigs {
		got := fmt.Sprintf("%s@%d", s.Pattern(), s.Offset())
		if got != want[i] {
			t.Errorf("position %d = %s, want %s", i, got, want[i])
		}
	}
	if reg.MaxPatternLength() != 6 {
		t.Errorf("MaxPatternLength() = %d, want 6", reg.MaxPatternLength())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		mustSignature(t, "FFD8FF", 0, "JPEG"),
		mustSignature(t, "ffd8ff", 0, "JPG"),
	)
	if !errors.Is(err, ErrDuplicateSignature) {
		t.Fatalf("NewRegistry error = %v, want ErrDuplicateSignature", err)
	}

	// Same pattern at another offset is a different signature.
	if _, err := NewRegistry(
		mustSignature(t, "FFD8FF", 0, "JPEG"),
		mustSignature(t, "FFD8FF", 8, "JPG"),
	); err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
}

func TestRegistryRejectsSentinel(t *testing.T) {
	if _, err := NewRegistry(None); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("NewRegistry(None) error = %v, want ErrInvalidSignature", err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if reg != Default() {
		t.Fatal("Default() must return the same registry on every call")
	}
	if reg.Len() != len(signatureTable) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(signatureTable))
	}
	if reg.MaxPatternLength() != MaxPatternLength {
		t.Errorf("MaxPatternLength() = %d, want %d", reg.MaxPatternLength(), MaxPatternLength)
	}

	sigs := reg.Signatures()
	for i := 1; i < len(sigs); i++ {
		prev, cur := sigs[i-1], sigs[i]
		if prev.Offset() > cur.Offset() {
			t.Fatalf("offsets out of order at %d: %d > %d", i, prev.Offset(), cur.Offset())
		}
		if prev.Offset() == cur.Offset() && len(prev.Pattern()) < len(cur.Pattern()) {
			t.Fatalf("pattern lengths out of order at %d: %s before %s", i, prev, cur)
		}
	}
	for _, s := range sigs {
		if s.IsNone() || len(s.Extensions()) == 0 {
			t.Errorf("malformed built-in signature %v", s)
		}
	}
}

func TestRegistryWithExtension(t *testing.T) {
	reg := Default()

	docx := reg.WithExtension(".docx")
	if len(docx) == 0 {
		t.Fatal("expected at least one DOCX signature")
	}
	for _, s := range docx {
		if !s.Is("DOCX") {
			t.Errorf("WithExtension returned %v", s)
		}
	}
	if got := reg.WithExtension("no-such-ext"); len(got) != 0 {
		t.Errorf("WithExtension(no-such-ext) = %v", got)
	}
}

func TestDefaultRegistryContainers(t *testing.T) {
	reg := Default()
	if reg.Len() != 445 {
		t.Errorf("Len() = %d, want 445", reg.Len())
	}

	tests := []struct {
		pattern string
		exts    []string
	}{
		{"504B0304", []string{"ZIP", "JAR", "DOCX", "ODT", "XPS", "WMZ"}},
		{"D0CF11E0A1B11AE1", []string{"DOC", "XLS", "PPT", "MSI", "WPS"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			s, ok := reg.Find(tt.pattern, 0)
			if !ok {
				t.Fatalf("Find(%q, 0) not found", tt.pattern)
			}
			for _, ext := range tt.exts {
				if !s.Is(ext) {
					t.Errorf("Find(%q, 0) = %v, want extension %s", tt.pattern, s, ext)
				}
			}
			if !s.IsDisputed() {
				t.Errorf("Find(%q, 0).IsDisputed() = false, want true", tt.pattern)
			}
		})
	}
}

func TestRegistryAtOffsetAndFind(t *testing.T) {
	reg := Default()
	head := reg.AtOffset(0)
	for _, s := range head.Signatures() {
		if s.Offset() != 0 {
			t.Fatalf("AtOffset(0) returned %v", s)
		}
	}
	if head.Len() == 0 || head.Len() >= reg.Len() {
		t.Errorf("AtOffset(0).Len() = %d of %d", head.Len(), reg.Len())
	}

	png, ok := reg.Find("89504e470d0a1a0a", 0)
	if !ok || !png.Is("PNG") {
		t.Errorf("Find(PNG) = %v, %v", png, ok)
	}
	if _, ok := reg.Find("89504E470D0A1A0A", 3); ok {
		t.Error("Find must match the offset too")
	}
}
