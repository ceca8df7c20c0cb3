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
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
)

func TestInstruction_decode(t *testing.T) {
	tests := [...]struct {
		word  vm.Cell
		op    vm.Opcode
		modes []vm.Mode
	}{
		{1002, vm.OpMul, []vm.Mode{vm.Position, vm.Immediate, vm.Position}},
		{1, vm.OpAdd, []vm.Mode{vm.Position, vm.Position, vm.Position}},
		{21101, vm.OpAdd, []vm.Mode{vm.Immediate, vm.Immediate, vm.Relative}},
		{204, vm.OpOut, []vm.Mode{vm.Relative, vm.Position}},
		{109, vm.OpAdjustBase, []vm.Mode{vm.Immediate}},
		{99, vm.OpHalt, []vm.Mode{vm.Position}},
		{12345, vm.Opcode(45), []vm.Mode{3, 2, 1, 0}},
	}
	for _, test := range tests {
		ins := vm.Instruction(test.word)
		require.Equal(t, test.op, ins.Opcode(), "%d", test.word)
		for k, m := range test.modes {
			require.Equal(t, m, ins.Mode(k+1), "%d: param %d", test.word, k+1)
		}
	}
}

func TestNewInstruction(t *testing.T) {
	require.Equal(t, vm.Instruction(1002), vm.NewInstruction(vm.OpMul, vm.Position, vm.Immediate))
	require.Equal(t, vm.Instruction(21101), vm.NewInstruction(vm.OpAdd, vm.Immediate, vm.Immediate, vm.Relative))
	require.Equal(t, vm.Instruction(99), vm.NewInstruction(vm.OpHalt))
	for _, op := range vm.Opcodes() {
		for m := vm.Position; m <= vm.Relative; m++ {
			ins := vm.NewInstruction(op, m, m, m)
			require.Equal(t, op, ins.Opcode())
			require.Equal(t, m, ins.Mode(1))
			require.Equal(t, m, ins.Mode(3))
		}
	}
}

func TestOpcode(t *testing.T) {
	widths := map[vm.Opcode]int{
		vm.OpAdd: 4, vm.OpMul: 4, vm.OpIn: 2, vm.OpOut: 2, vm.OpJumpTrue: 3,
		vm.OpJumpFalse: 3, vm.OpLess: 4, vm.OpEqual: 4, vm.OpAdjustBase: 2, vm.OpHalt: 1,
	}
	ops := vm.Opcodes()
	require.Len(t, ops, len(widths))
	for _, op := range ops {
		require.True(t, op.Valid())
		require.Equal(t, widths[op], op.Width(), "%v", op)
	}
	for _, op := range []vm.Opcode{0, 10, 98, 100, -1} {
		require.False(t, op.Valid())
		require.Equal(t, -1, op.Params())
		require.Equal(t, 0, op.Width())
	}
	require.Equal(t, "jnz", vm.OpJumpTrue.String())
	require.Equal(t, "op(42)", vm.Opcode(42).String())
	require.Equal(t, "relative", vm.Relative.String())
	require.Equal(t, "mode(7)", vm.Mode(7).String())
}
