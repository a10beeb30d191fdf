package lexer

// DefaultMaxLength is the longest token accepted when no limit is set.
const DefaultMaxLength = 63

// Scanner splits postfix source into whitespace-delimited words.
type Scanner struct {
	source []byte
	cursor int
	line   int

	// MaxLength bounds the length of a single token. Longer tokens are
	// returned as KindError.
	MaxLength int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source:    source,
		line:      1,
		MaxLength: DefaultMaxLength,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
}

// Source returns the text being scanned.
func (s *Scanner) Source() []byte {
	return s.source
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: uint32(s.cursor), Line: uint32(s.line)}
	}

	start := s.cursor
	for s.cursor < len(s.source) && !isSpace(s.source[s.cursor]) {
		s.cursor++
	}

	kind := KindWord
	if s.MaxLength > 0 && s.cursor-start > s.MaxLength {
		kind = KindError
	}
	return Token{Kind: kind, Offset: uint32(start), Length: uint32(s.cursor - start), Line: uint32(s.line)}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == '\n' {
			s.line++
			s.cursor++
		} else if isSpace(ch) {
			s.cursor++
		} else {
			break
		}
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
