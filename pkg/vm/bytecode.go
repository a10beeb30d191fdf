package vm

import (
	"fmt"
	"strings"
)

// Instr is a single compiled instruction. Arg holds the constant for
// OpPush and the depth for OpDup and OpSwap.
type Instr struct {
	Op  Op
	Arg int32
}

func (in Instr) String() string {
	if in.Op.HasArg() {
		return fmt.Sprintf("%s %d", in.Op, in.Arg)
	}
	return in.Op.String()
}

// Program is the compiled output of a source text. Code always ends with
// an OpHalt instruction. A Program is never modified after compilation and
// may be run concurrently against separate States.
type Program struct {
	Code []Instr
}

// Len returns the number of instructions, not counting the terminator.
func (p *Program) Len() int {
	for i, in := range p.Code {
		if in.Op == OpHalt {
			return i
		}
	}
	return len(p.Code)
}

// String disassembles the program, one instruction per line.
func (p *Program) String() string {
	var sb strings.Builder
	for i, in := range p.Code {
		fmt.Fprintf(&sb, "%04d %s\n", i, in)
	}
	return sb.String()
}
