package emitter

import (
	"errors"
	"fmt"

	"github.com/agenthands/poliz/pkg/compiler/lexer"
	"github.com/agenthands/poliz/pkg/compiler/parser"
	"github.com/agenthands/poliz/pkg/config"
	"github.com/agenthands/poliz/pkg/vm"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("poliz.compiler")

var ErrOutOfMemory = errors.New("emitter: out of memory")

const initialCapacity = 32

// Emitter collects instructions into a program. It may be reused; every
// Emit starts a new program.
type Emitter struct {
	instructions []vm.Instr
	limit        int
}

// NewEmitter returns an emitter bounded by lim. Zero limits take the
// defaults from config.
func NewEmitter(lim config.Limits) *Emitter {
	return &Emitter{
		limit: lim.WithDefaults().MaxInstructions,
	}
}

// Compile translates postfix source into a program. Zero limits take the
// defaults from config.
func Compile(src []byte, lim config.Limits) (*vm.Program, error) {
	lim = lim.WithDefaults()
	s := lexer.NewScanner(src)
	s.MaxLength = lim.MaxTokenLength
	return NewEmitter(lim).Emit(parser.NewParser(s))
}

// Emit drains p and returns the terminated program.
func (e *Emitter) Emit(p *parser.Parser) (*vm.Program, error) {
	// Fresh storage: a returned program must never share a backing array
	// with a later one.
	e.instructions = make([]vm.Instr, 0, initialCapacity)

	for {
		in, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if e.limit > 0 && len(e.instructions) >= e.limit {
			return nil, fmt.Errorf("%w: program exceeds %d instructions", ErrOutOfMemory, e.limit)
		}
		e.emit(in)
	}

	// Always end with HALT
	e.emit(vm.Instr{Op: vm.OpHalt})

	log.Debugf("compiled %d instructions", len(e.instructions)-1)
	prog := &vm.Program{Code: e.instructions}
	e.instructions = nil
	return prog, nil
}

// emit appends in, doubling the capacity (at least 16) when full.
func (e *Emitter) emit(in vm.Instr) {
	n := len(e.instructions)
	if n == cap(e.instructions) {
		c := cap(e.instructions) * 2
		if c < 16 {
			c = 16
		}
		grown := make([]vm.Instr, n, c)
		copy(grown, e.instructions)
		e.instructions = grown
	}
	e.instructions = append(e.instructions, in)
}
