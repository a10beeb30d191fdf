// Package arith implements the integer semantics of the postfix language:
// 32-bit values, checked in 64-bit intermediates, with the language's own
// rounding rules for division and remainder.
package arith

import (
	"errors"
	"math"
)

var (
	ErrOverflow       = errors.New("arith: integer overflow")
	ErrDivisionByZero = errors.New("arith: division by zero")
)

// Narrow range-checks a wide intermediate against the 32-bit domain.
func Narrow(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// Quotient divides a by b. b must be non-zero.
//
// A non-negative dividend truncates toward zero; a negative dividend
// rounds toward negative infinity. This asymmetry is part of the language.
func Quotient(a, b int64) int64 {
	switch {
	case b > 0 && a >= 0:
		return a / b
	case a >= 0:
		return -(a / -b)
	case b > 0:
		q := -(-a / b)
		if -a%b != 0 {
			q--
		}
		return q
	default:
		q := -a / -b
		if -a%-b != 0 {
			q++
		}
		return q
	}
}

// Modulo is the remainder paired with Quotient. For a non-negative dividend
// the sign of b is ignored.
func Modulo(a, b int64) int64 {
	if a < 0 {
		return a - b*Quotient(a, b)
	}
	if b < 0 {
		b = -b
	}
	return a % b
}

func checked(v int64) (int32, error) {
	n, ok := Narrow(v)
	if !ok {
		return 0, ErrOverflow
	}
	return n, nil
}

// Add returns a + b, or ErrOverflow.
func Add(a, b int32) (int32, error) { return checked(int64(a) + int64(b)) }

// Sub returns a - b, or ErrOverflow.
func Sub(a, b int32) (int32, error) { return checked(int64(a) - int64(b)) }

// Mul returns a * b, or ErrOverflow.
func Mul(a, b int32) (int32, error) { return checked(int64(a) * int64(b)) }

// Neg returns -a, or ErrOverflow for math.MinInt32.
func Neg(a int32) (int32, error) { return checked(-int64(a)) }

// Div returns Quotient(a, b) narrowed to 32 bits.
func Div(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(Quotient(int64(a), int64(b)))
}

// Mod returns Modulo(a, b) narrowed to 32 bits.
func Mod(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checked(Modulo(int64(a), int64(b)))
}
