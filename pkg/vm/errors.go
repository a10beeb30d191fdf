package vm

// ErrorKind describes why a run halted. The zero value means no error.
// Every other value implements error.
type ErrorKind int

const (
	OK ErrorKind = iota
	OutOfMemory
	StackUnderflow
	IntOverflow
	DivisionByZero
	ReadFailed
	InvalidIndex
)

var strError = []string{
	"ok",
	"out of memory",
	"stack underflow",
	"integer overflow",
	"division by zero",
	"read failed",
	"invalid index",
}

func (e ErrorKind) Error() string {
	if e >= 0 && int(e) < len(strError) {
		return "vm: " + strError[e]
	}
	return "vm: unknown error"
}

// Status is the value Exec returns for e: 0 for OK, otherwise the negated
// kind.
func (e ErrorKind) Status() int {
	return -int(e)
}
