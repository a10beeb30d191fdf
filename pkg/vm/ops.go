package vm

// Op identifies an instruction. The set is closed; OpHalt terminates every
// compiled program.
type Op uint8

const (
	OpHalt Op = iota
	OpPush
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNeg
	OpRead
	OpWrite
	OpNewline
	OpDrop
	OpDup
	OpSwap
)

var opNames = [...]string{
	OpHalt:    "HALT",
	OpPush:    "PUSH",
	OpAdd:     "ADD",
	OpSub:     "SUB",
	OpMul:     "MUL",
	OpDiv:     "DIV",
	OpMod:     "MOD",
	OpNeg:     "NEG",
	OpRead:    "READ",
	OpWrite:   "WRITE",
	OpNewline: "NEWLINE",
	OpDrop:    "DROP",
	OpDup:     "DUP",
	OpSwap:    "SWAP",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "UNKNOWN"
}

// HasArg reports whether the instruction's Arg is meaningful.
func (op Op) HasArg() bool {
	return op == OpPush || op == OpDup || op == OpSwap
}
