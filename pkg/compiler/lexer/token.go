package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError // token longer than the scanner's limit
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindError:
		return "ERROR"
	case KindWord:
		return "WORD"
	}
	return "UNKNOWN"
}

// Token represents a lexical unit pointing back to the source.
// 12-byte struct to minimize stack overhead and avoid allocations.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Line   uint32
}

// Literal returns the token's spelling within src.
func (t Token) Literal(src []byte) []byte {
	return src[t.Offset : t.Offset+t.Length]
}
