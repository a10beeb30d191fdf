package parser

import (
	"errors"
	"fmt"

	"github.com/agenthands/poliz/pkg/compiler/lexer"
	"github.com/agenthands/poliz/pkg/core/arith"
	"github.com/agenthands/poliz/pkg/vm"
)

// ErrTokenTooLong is returned for a token longer than the scanner's MaxLength.
var ErrTokenTooLong = errors.New("parser: token too long")

// StandardWords maps the fixed spellings to their operations. Tokens
// beginning with 'd' or 's' and everything else are handled by Classify.
var StandardWords = map[string]vm.Op{
	"+": vm.OpAdd,
	"-": vm.OpSub,
	"*": vm.OpMul,
	"/": vm.OpDiv,
	"%": vm.OpMod,
	"#": vm.OpNeg,
	"r": vm.OpRead,
	"w": vm.OpWrite,
	"n": vm.OpNewline,
	";": vm.OpDrop,
}

// Classify translates one token spelling into an instruction. It never
// fails: text that is not a number pushes 0.
func Classify(lit []byte) vm.Instr {
	if op, ok := StandardWords[string(lit)]; ok {
		return vm.Instr{Op: op}
	}

	if len(lit) > 0 {
		switch lit[0] {
		case 'd':
			// dN: duplicate the cell N below the top, N defaults to 0
			return vm.Instr{Op: vm.OpDup, Arg: depthArg(lit[1:], 0)}
		case 's':
			// sN: swap the top with the cell N below it, N defaults to 1
			return vm.Instr{Op: vm.OpSwap, Arg: depthArg(lit[1:], 1)}
		}
	}

	return vm.Instr{Op: vm.OpPush, Arg: arith.ParseLenient(lit)}
}

func depthArg(rest []byte, def int32) int32 {
	if len(rest) == 0 {
		return def
	}
	return arith.ParseLenient(rest)
}

// Parser turns the scanner's tokens into instructions.
type Parser struct {
	scanner *lexer.Scanner
	src     []byte
}

// NewParser reads tokens from s.
func NewParser(s *lexer.Scanner) *Parser {
	return &Parser{scanner: s, src: s.Source()}
}

// Next returns the next instruction. At the end of input it returns the
// terminating OpHalt instruction together with ok == false.
func (p *Parser) Next() (in vm.Instr, ok bool, err error) {
	tok := p.scanner.Next()
	switch tok.Kind {
	case lexer.KindEOF:
		return vm.Instr{Op: vm.OpHalt}, false, nil
	case lexer.KindError:
		return vm.Instr{}, false, fmt.Errorf("%w at line %d, offset %d: %d bytes (max %d)",
			ErrTokenTooLong, tok.Line, tok.Offset, tok.Length, p.scanner.MaxLength)
	}
	return Classify(tok.Literal(p.src)), true, nil
}
