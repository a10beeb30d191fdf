package poliz_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/agenthands/poliz/pkg/config"
	"github.com/agenthands/poliz/pkg/poliz"
	"github.com/agenthands/poliz/pkg/stdlib"
	"github.com/agenthands/poliz/pkg/vm"
)

func ExampleEval() {
	err := poliz.Eval("r r + w n r # w n", strings.NewReader("20 22 5"), os.Stdout, config.Default())
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 42
	// -5
}

func ExampleCompile() {
	// 1. Pre-compile the program once
	prog, err := poliz.Compile("r d0 * w n")
	if err != nil {
		fmt.Println("compile error:", err)
		return
	}

	// 2. Run it against independent states
	for _, in := range []string{"3", "12", "x"} {
		st := vm.GetState(config.Default())
		c := stdlib.NewConsole(strings.NewReader(in), os.Stdout)
		if err := prog.Run(st, c); err != nil {
			c.Flush()
			fmt.Println(err)
		}
		c.Flush()
		vm.PutState(st)
	}
	// Output:
	// 9
	// 144
	// vm: read failed
}
