// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm_test

import (
	"fmt"
	"os"

	"github.com/db47h/intcode/vm"
)

// Shows how to run a program with input and output functions.
func ExampleExec() {
	// outputs 999 if the input is below 8, 1000 if it is equal to 8, 1001
	// otherwise.
	mem, err := vm.ParseString("3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99")
	if err != nil {
		panic(err)
	}
	for _, in := range []vm.Cell{7, 8, 9} {
		prog := mem.Clone()
		err = vm.Exec(&prog, vm.Values(in), func(v vm.Cell) error {
			fmt.Println(in, "->", v)
			return nil
		})
		if err != nil {
			panic(err)
		}
	}

	// Output:
	// 7 -> 999
	// 8 -> 1000
	// 9 -> 1001
}

// Shows a typical use of the restricted executor: patch the noun and verb at
// addresses 1 and 2, run, then read the result at address 0.
func ExampleExecRestricted() {
	mem, err := vm.ParseString("1,0,0,0,99,3,5")
	if err != nil {
		panic(err)
	}
	for _, nv := range [][2]vm.Cell{{5, 6}, {0, 4}} {
		prog := mem.Clone()
		prog[1], prog[2] = nv[0], nv[1]
		if err = vm.ExecRestricted(&prog); err != nil {
			panic(err)
		}
		fmt.Println(nv, prog[0])
	}

	// Output:
	// [5 6] 8
	// [0 4] 100
}

// Shows how to inspect the VM state after a run.
func ExampleInstance_Run() {
	i, err := vm.New(vm.Memory{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99},
		vm.Output(vm.WriteInts(os.Stdout)),
		vm.MaxSteps(1000))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println("halted:", i.Halted(), "pc:", i.PC, "rb:", i.RB())

	// Output:
	// 109
	// 1
	// 204
	// -1
	// 1001
	// 100
	// 1
	// 100
	// 1008
	// 100
	// 16
	// 101
	// 1006
	// 101
	// 0
	// 99
	// halted: true pc: 15 rb: 16
}
