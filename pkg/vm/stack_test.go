package vm

import "testing"

func TestStackGrowth(t *testing.T) {
	s := newStack(0)
	if cap(s.data) != 1 {
		t.Fatalf("expected initial capacity 1, got %d", cap(s.data))
	}

	s.Push(1)
	s.Push(2)
	if cap(s.data) != minGrowth {
		t.Errorf("expected capacity %d after first growth, got %d", minGrowth, cap(s.data))
	}

	for i := 0; i < minGrowth; i++ {
		s.Push(int32(i))
	}
	if cap(s.data) != 2*minGrowth {
		t.Errorf("expected capacity %d, got %d", 2*minGrowth, cap(s.data))
	}
	if s.Len() != minGrowth+2 {
		t.Errorf("expected %d cells, got %d", minGrowth+2, s.Len())
	}
}

func TestStackLimitClampsGrowth(t *testing.T) {
	s := newStack(20)
	for i := 0; i < 20; i++ {
		if err := s.Push(int32(i)); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if cap(s.data) != 20 {
		t.Errorf("expected capacity clamped to 20, got %d", cap(s.data))
	}
	if err := s.Push(99); err != OutOfMemory {
		t.Errorf("expected OutOfMemory, got %v", err)
	}
	if v, _ := s.Peek(0); v != 19 || s.Len() != 20 {
		t.Errorf("stack modified by failed push: top=%d len=%d", v, s.Len())
	}
}

func TestStackAccess(t *testing.T) {
	s := newStack(0)
	if _, err := s.Pop(); err != StackUnderflow {
		t.Errorf("expected StackUnderflow, got %v", err)
	}
	if _, err := s.Peek(0); err != InvalidIndex {
		t.Errorf("expected InvalidIndex, got %v", err)
	}

	for _, v := range []int32{10, 20, 30} {
		s.Push(v)
	}
	if v, err := s.Peek(2); err != nil || v != 10 {
		t.Errorf("Peek(2) = %d, %v", v, err)
	}
	if err := s.Swap(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.Values(); got[0] != 30 || got[2] != 10 {
		t.Errorf("unexpected order after swap: %v", got)
	}
	if err := s.Swap(0, 3); err != InvalidIndex {
		t.Errorf("expected InvalidIndex, got %v", err)
	}
	if v, err := s.Pop(); err != nil || v != 10 {
		t.Errorf("Pop = %d, %v", v, err)
	}
}

func TestStackRelease(t *testing.T) {
	s := newStack(0)
	s.Push(1)
	s.Release()
	s.Release()

	if s.Len() != 0 {
		t.Errorf("expected empty stack after Release, got %d", s.Len())
	}
	if err := s.Push(2); err != nil {
		t.Errorf("push after Release: %v", err)
	}
}
