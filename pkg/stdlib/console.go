package stdlib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var ErrNoInteger = errors.New("stdlib: input is not an integer")

// Console is the text channel a run reads integers from and writes decimal
// output to. Output is buffered until Flush.
//
// Console does no locking; runs sharing one must be serialized by the
// caller.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
	buf []byte
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
		buf: make([]byte, 0, 24),
	}
}

// Stdio returns a console over the process's standard streams.
func Stdio() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

// ReadInt skips leading whitespace and parses an optionally signed decimal
// integer. The byte that ends the number is left unread.
func (c *Console) ReadInt() (int64, error) {
	ch, err := c.skipSpace()
	if err != nil {
		return 0, err
	}

	c.buf = c.buf[:0]
	if ch == '+' || ch == '-' {
		c.buf = append(c.buf, ch)
		if ch, err = c.in.ReadByte(); err != nil {
			return 0, readError(err)
		}
	}
	for isDigit(ch) {
		c.buf = append(c.buf, ch)
		if ch, err = c.in.ReadByte(); err != nil {
			break
		}
	}
	if err == nil {
		// cannot fail directly after a successful ReadByte
		_ = c.in.UnreadByte()
	} else if err != io.EOF {
		return 0, err
	}

	if len(c.buf) == 0 || !isDigit(c.buf[len(c.buf)-1]) {
		return 0, ErrNoInteger
	}
	v, err := strconv.ParseInt(string(c.buf), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stdlib: read %s: %w", c.buf, err)
	}
	return v, nil
}

func (c *Console) skipSpace() (byte, error) {
	for {
		ch, err := c.in.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(ch) {
			return ch, nil
		}
	}
}

func readError(err error) error {
	if err == io.EOF {
		return ErrNoInteger
	}
	return err
}

// WriteInt writes v in decimal with no separator.
func (c *Console) WriteInt(v int32) error {
	_, err := c.out.Write(strconv.AppendInt(c.buf[:0], int64(v), 10))
	return err
}

// WriteNewline writes a single '\n'.
func (c *Console) WriteNewline() error {
	return c.out.WriteByte('\n')
}

// Flush writes any buffered output.
func (c *Console) Flush() error {
	return c.out.Flush()
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
