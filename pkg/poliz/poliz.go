// Package poliz compiles and runs postfix arithmetic programs.
//
// A program is a whitespace-separated list of words. Integers are pushed on
// a stack of 32-bit cells; + - * / % operate on the top two cells, # negates
// the top, r reads an integer, w writes and drops the top, n writes a
// newline, ; drops the top, dN duplicates the cell N below the top and sN
// swaps the top with the cell N below it.
//
// Compilation happens once; the resulting program can be run any number of
// times, concurrently, against separate states:
//
//	prog, err := poliz.Compile("r r + w n")
//	st := vm.NewState(config.Default())
//	con := stdlib.Stdio()
//	err = prog.Run(st, con)
//	con.Flush()
package poliz

import (
	"io"

	"github.com/agenthands/poliz/pkg/compiler/emitter"
	"github.com/agenthands/poliz/pkg/config"
	"github.com/agenthands/poliz/pkg/stdlib"
	"github.com/agenthands/poliz/pkg/vm"
)

// Compile translates src using the default limits.
func Compile(src string) (*vm.Program, error) {
	return emitter.Compile([]byte(src), config.Default())
}

// Eval compiles src and runs it once, reading integers from in and writing
// output to out. The returned error is either a compile error or the run's
// vm.ErrorKind.
func Eval(src string, in io.Reader, out io.Writer, lim config.Limits) error {
	prog, err := emitter.Compile([]byte(src), lim)
	if err != nil {
		return err
	}

	st := vm.GetState(lim)
	defer vm.PutState(st)

	c := stdlib.NewConsole(in, out)
	runErr := prog.Run(st, c)
	if err := c.Flush(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
