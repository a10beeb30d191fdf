package vm

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/agenthands/poliz/pkg/config"
	"github.com/agenthands/poliz/pkg/core/arith"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("poliz.vm")

// Channel is the external I/O a run reads integers from and writes
// decimal output to.
type Channel interface {
	// ReadInt parses one signed integer. Errors wrapping strconv.ErrRange
	// mean the input did not fit in 64 bits.
	ReadInt() (int64, error)
	WriteInt(v int32) error
	WriteNewline() error
}

// State is the data stack and sticky error of one execution. Once an error
// is recorded it is never cleared and every later Exec is a no-op.
//
// A State must not be used by more than one goroutine at a time.
type State struct {
	stack Stack
	err   ErrorKind
}

// NewState returns an empty state bounded by lim.MaxStackDepth.
func NewState(lim config.Limits) *State {
	return &State{stack: newStack(lim.MaxStackDepth)}
}

var statePool = sync.Pool{
	New: func() any {
		return NewState(config.Limits{})
	},
}

// GetState takes a cleared state from the pool.
func GetState(lim config.Limits) *State {
	st := statePool.Get().(*State)
	st.stack.limit = lim.MaxStackDepth
	return st
}

// PutState clears st and returns it to the pool.
func PutState(st *State) {
	st.Reset()
	statePool.Put(st)
}

// Reset clears the stack and the error for reuse.
func (st *State) Reset() {
	st.stack.clear()
	st.err = OK
}

// Free releases the stack storage. It is safe to call more than once.
func (st *State) Free() {
	st.stack.Release()
}

// LastError returns the sticky error, or OK.
func (st *State) LastError() ErrorKind {
	return st.err
}

// Stack returns a copy of the data stack, bottom first.
func (st *State) Stack() []int32 {
	return st.stack.Values()
}

// Exec dispatches a single instruction and returns 0 on success or the
// negated ErrorKind on failure. If an error is already recorded it is
// returned without any effect.
func (st *State) Exec(in Instr, ch Channel) int {
	if st.err != OK {
		return st.err.Status()
	}
	if k := st.exec(in, ch); k != OK {
		st.err = k
		return k.Status()
	}
	return 0
}

func (st *State) exec(in Instr, ch Channel) ErrorKind {
	s := &st.stack

	switch in.Op {
	case OpHalt:
		return OK

	case OpPush:
		return kindOf(s.Push(in.Arg))

	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		// ( left right -- result )
		if s.Len() < 2 {
			return StackUnderflow
		}
		right, _ := s.Peek(0)
		left, _ := s.Peek(1)
		res, err := binary(in.Op, left, right)
		if err != nil {
			return kindOf(err)
		}
		s.drop(2)
		return kindOf(s.Push(res))

	case OpNeg:
		if s.Len() < 1 {
			return StackUnderflow
		}
		v, _ := s.Peek(0)
		res, err := arith.Neg(v)
		if err != nil {
			return kindOf(err)
		}
		s.drop(1)
		return kindOf(s.Push(res))

	case OpRead:
		v, err := ch.ReadInt()
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return IntOverflow
			}
			return ReadFailed
		}
		n, ok := arith.Narrow(v)
		if !ok {
			return IntOverflow
		}
		return kindOf(s.Push(n))

	case OpWrite:
		// ( val -- )
		v, err := s.Pop()
		if err != nil {
			return kindOf(err)
		}
		if err := ch.WriteInt(v); err != nil {
			log.Warningf("write failed: %s", err)
		}
		return OK

	case OpNewline:
		if err := ch.WriteNewline(); err != nil {
			log.Warningf("write failed: %s", err)
		}
		return OK

	case OpDrop:
		_, err := s.Pop()
		return kindOf(err)

	case OpDup:
		v, err := s.Peek(int(in.Arg))
		if err != nil {
			return kindOf(err)
		}
		return kindOf(s.Push(v))

	case OpSwap:
		if in.Arg == 0 {
			return OK
		}
		return kindOf(s.Swap(0, int(in.Arg)))
	}

	panic(fmt.Sprintf("vm: unknown opcode %d", in.Op))
}

func binary(op Op, left, right int32) (int32, error) {
	switch op {
	case OpAdd:
		return arith.Add(left, right)
	case OpSub:
		return arith.Sub(left, right)
	case OpMul:
		return arith.Mul(left, right)
	case OpDiv:
		return arith.Div(left, right)
	case OpMod:
		return arith.Mod(left, right)
	}
	panic(fmt.Sprintf("vm: %s is not a binary operation", op))
}

// kindOf maps stack and arithmetic errors onto the run's ErrorKind.
func kindOf(err error) ErrorKind {
	var k ErrorKind
	switch {
	case err == nil:
		return OK
	case errors.As(err, &k):
		return k
	case errors.Is(err, arith.ErrOverflow):
		return IntOverflow
	case errors.Is(err, arith.ErrDivisionByZero):
		return DivisionByZero
	}
	panic(fmt.Sprintf("vm: unexpected error %v", err))
}

// Run executes p against st until the terminator or the first error, and
// returns the sticky error, if any.
func (p *Program) Run(st *State, ch Channel) error {
	for ip, in := range p.Code {
		if in.Op == OpHalt {
			break
		}
		if st.Exec(in, ch) != 0 {
			log.Debugf("run halted at %d (%s): %s", ip, in, st.err)
			break
		}
	}
	if st.err != OK {
		return st.err
	}
	return nil
}
