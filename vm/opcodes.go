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

package vm

import "strconv"

// Opcode is the low two decimal digits of an instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLess       Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

var opcodes = [...]struct {
	name   string
	params int
}{
	OpAdd:        {"add", 3},
	OpMul:        {"mul", 3},
	OpIn:         {"in", 1},
	OpOut:        {"out", 1},
	OpJumpTrue:   {"jnz", 2},
	OpJumpFalse:  {"jz", 2},
	OpLess:       {"lt", 3},
	OpEqual:      {"eq", 3},
	OpAdjustBase: {"arb", 1},
	OpHalt:       {"hlt", 0},
}

// Valid reports whether op is a defined opcode.
func (op Opcode) Valid() bool {
	return op > 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// Params returns the number of parameters of op, or -1 if op is not a valid
// opcode.
func (op Opcode) Params() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].params
}

// Width returns the number of cells used by an instruction with opcode op,
// including the instruction word itself. Returns 0 for invalid opcodes.
func (op Opcode) Width() int {
	return op.Params() + 1
}

// String returns the assembler mnemonic of op.
func (op Opcode) String() string {
	if !op.Valid() {
		return "op(" + strconv.FormatInt(int64(op), 10) + ")"
	}
	return opcodes[op].name
}

// Opcodes returns the list of valid opcodes in ascending order.
func Opcodes() []Opcode {
	var ops []Opcode
	for i := range opcodes {
		if op := Opcode(i); op.Valid() {
			ops = append(ops, op)
		}
	}
	return ops
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	Position  Mode = 0 // parameter is an address
	Immediate Mode = 1 // parameter is a literal value
	Relative  Mode = 2 // parameter plus relative base is an address
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a raw instruction word.
type Instruction Cell

// Opcode returns the opcode part of the instruction word. Decoding never
// fails: the returned opcode may not be Valid.
func (w Instruction) Opcode() Opcode {
	return Opcode(w % 100)
}

// Mode returns the addressing mode for parameter k (1-indexed). Absent leading
// digits yield Position.
func (w Instruction) Mode(k int) Mode {
	d := Cell(w) / 10
	for ; k > 0 && d != 0; k-- {
		d /= 10
	}
	return Mode(d % 10)
}

// NewInstruction builds an instruction word from an opcode and parameter modes.
// modes[0] is the mode of the first parameter.
func NewInstruction(op Opcode, modes ...Mode) Instruction {
	w := Cell(op)
	m := Cell(100)
	for _, md := range modes {
		w += Cell(md) * m
		m *= 10
	}
	return Instruction(w)
}
