package vm

const minGrowth = 16

// Stack is a growable stack of 32-bit cells addressed by depth, where
// depth 0 is the top. Failed operations never modify it.
type Stack struct {
	data  []int32
	limit int // maximum depth, 0 for none
}

func newStack(limit int) Stack {
	return Stack{data: make([]int32, 0, 1), limit: limit}
}

// Len returns the number of cells on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// grow doubles the capacity, with a floor of minGrowth cells and a ceiling
// of the depth limit.
func (s *Stack) grow() bool {
	c := cap(s.data)
	n := c * 2
	if n < minGrowth {
		n = minGrowth
	}
	if s.limit > 0 && n > s.limit {
		n = s.limit
	}
	if n <= c {
		return false
	}
	data := make([]int32, len(s.data), n)
	copy(data, s.data)
	s.data = data
	return true
}

// Push adds v on top. It fails with OutOfMemory when the stack cannot grow.
func (s *Stack) Push(v int32) error {
	if s.limit > 0 && len(s.data) >= s.limit {
		return OutOfMemory
	}
	if len(s.data) == cap(s.data) && !s.grow() {
		return OutOfMemory
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top cell.
func (s *Stack) Pop() (int32, error) {
	if len(s.data) == 0 {
		return 0, StackUnderflow
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Peek returns the cell depth positions below the top.
func (s *Stack) Peek(depth int) (int32, error) {
	if depth < 0 || depth >= len(s.data) {
		return 0, InvalidIndex
	}
	return s.data[len(s.data)-1-depth], nil
}

// Swap exchanges the cells at depths a and b.
func (s *Stack) Swap(a, b int) error {
	l := len(s.data)
	if a < 0 || a >= l || b < 0 || b >= l {
		return InvalidIndex
	}
	s.data[l-1-a], s.data[l-1-b] = s.data[l-1-b], s.data[l-1-a]
	return nil
}

// drop discards n cells; the caller has checked the depth.
func (s *Stack) drop(n int) {
	s.data = s.data[:len(s.data)-n]
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []int32 {
	return append([]int32(nil), s.data...)
}

// Release drops the backing storage. The stack stays usable and starts
// empty.
func (s *Stack) Release() {
	s.data = nil
}

func (s *Stack) clear() {
	s.data = s.data[:0]
}
