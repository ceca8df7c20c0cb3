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

package asm

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/vm"
)

var mnemonics = map[string]vm.Opcode{
	"jt":   vm.OpJumpTrue,
	"jf":   vm.OpJumpFalse,
	"halt": vm.OpHalt,
	"rb":   vm.OpAdjustBase,
}

func init() {
	for _, op := range vm.Opcodes() {
		mnemonics[op.String()] = op
	}
}

// ErrEntry is a single assembly error.
type ErrEntry struct {
	Pos scanner.Position
	Msg string
}

func (e ErrEntry) String() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors,
// sorted by position in the source.
type ErrAsm []ErrEntry

func (e ErrAsm) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.String())
	}
	return sb.String()
}

func (e ErrAsm) sort() {
	sort.SliceStable(e, func(i, j int) bool { return e[i].Pos.Offset < e[j].Pos.Offset })
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting memory image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Memory, error) {
	return newParser().Parse(name, r)
}

// decode checks that the instruction at pc can be disassembled and assembled
// back to the same cells.
func decode(mem vm.Memory, pc int) (vm.Instruction, vm.Opcode, bool) {
	ins := vm.Instruction(mem[pc])
	op := ins.Opcode()
	if !op.Valid() || pc+op.Width() > len(mem) {
		return ins, op, false
	}
	modes := make([]vm.Mode, op.Params())
	for k := range modes {
		m := ins.Mode(k + 1)
		if m < vm.Position || m > vm.Relative || (m == vm.Immediate && isDest(op, k+1)) {
			return ins, op, false
		}
		modes[k] = m
	}
	return ins, op, vm.NewInstruction(op, modes...) == ins
}

// Disassemble writes a disassembly of the instruction in mem at position pc
// to the specified io.Writer and returns the position of the next instruction
// and any write error.
//
// Cells that do not start a valid instruction are written as a .dat
// directive.
func Disassemble(mem vm.Memory, pc int, w io.Writer) (next int, err error) {
	ew := iox.NewErrWriter(w)
	ins, op, ok := decode(mem, pc)
	if !ok {
		io.WriteString(ew, ".dat "+strconv.FormatInt(int64(mem[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, op.String())
	for k := 1; k <= op.Params(); k++ {
		ew.Write([]byte{' '})
		switch ins.Mode(k) {
		case vm.Immediate:
			ew.Write([]byte{'#'})
		case vm.Relative:
			ew.Write([]byte{'@'})
		}
		io.WriteString(ew, strconv.FormatInt(int64(mem[pc+k]), 10))
	}
	return pc + op.Width(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given memory to
// the specified io.Writer, one instruction per line. Each line ends with a
// comment holding the address of the instruction. The base argument specifies
// the real address of the first cell (mem[0]). It will return any write error.
//
// The output is valid assembler source.
func DisassembleAll(mem vm.Memory, base int, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	var sb strings.Builder
	for pc := 0; pc < len(mem); {
		sb.Reset()
		next, _ := Disassemble(mem, pc, &sb)
		ew.Printf("%-32s ; %d\n", sb.String(), base+pc)
		if ew.Err != nil {
			return ew.Err
		}
		pc = next
	}
	return nil
}
