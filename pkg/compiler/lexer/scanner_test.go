package lexer_test

import (
	"strings"
	"testing"

	"github.com/agenthands/poliz/pkg/compiler/lexer"
)

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte("3 4 + w n\t-10 3 / w d0 s1 ;")
	s := lexer.NewScanner(src)

	// Measure allocations
	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			tok := s.Next()
			if tok.Kind == lexer.KindEOF || tok.Kind == lexer.KindError {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func TestScannerWords(t *testing.T) {
	src := []byte("  12 +\n\t-5\r\nd3\vs \f;")
	s := lexer.NewScanner(src)

	expected := []struct {
		lit  string
		line uint32
	}{
		{"12", 1},
		{"+", 1},
		{"-5", 2},
		{"d3", 3},
		{"s", 3},
		{";", 3},
	}

	for i, exp := range expected {
		tok := s.Next()
		if tok.Kind != lexer.KindWord {
			t.Fatalf("token %d: expected WORD, got %v", i, tok.Kind)
		}
		if got := string(tok.Literal(src)); got != exp.lit {
			t.Errorf("token %d: expected %q, got %q", i, exp.lit, got)
		}
		if tok.Line != exp.line {
			t.Errorf("token %d: expected line %d, got %d", i, exp.line, tok.Line)
		}
	}

	if tok := s.Next(); tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF, got %v", tok.Kind)
	}
}

func TestScannerEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\n\t"} {
		s := lexer.NewScanner([]byte(src))
		if tok := s.Next(); tok.Kind != lexer.KindEOF {
			t.Errorf("%q: expected EOF, got %v", src, tok.Kind)
		}
	}
}

func TestScannerMaxLength(t *testing.T) {
	long := strings.Repeat("7", lexer.DefaultMaxLength+1)
	src := []byte("1 " + strings.Repeat("7", lexer.DefaultMaxLength) + " " + long)
	s := lexer.NewScanner(src)

	kinds := []lexer.Kind{lexer.KindWord, lexer.KindWord, lexer.KindError}
	for i, exp := range kinds {
		if tok := s.Next(); tok.Kind != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tok.Kind)
		}
	}

	s.Reset(src)
	s.MaxLength = 0
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Kind != lexer.KindWord {
			t.Errorf("unbounded token %d: expected WORD, got %v", i, tok.Kind)
		}
	}
}
