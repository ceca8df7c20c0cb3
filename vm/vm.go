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

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/iox"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InputFunc is the function prototype for input producers. It is called once
// for every executed input instruction and must return the next value
// immediately. A non-nil error aborts execution and is returned by Run as is.
type InputFunc func() (Cell, error)

// OutputFunc is the function prototype for output consumers. It is called once
// for every executed output instruction. A non-nil error aborts execution and
// is returned by Run as is.
type OutputFunc func(v Cell) error

// Instance represents an Intcode VM instance.
type Instance struct {
	PC         int    // Program Counter (aka. Instruction Pointer)
	Mem        Memory // Memory
	rb         Cell
	insCount   int64
	maxSteps   int64
	restricted bool
	halted     bool
	in         InputFunc
	out        OutputFunc
	log        *zap.Logger
}

// Option interface
type Option func(*Instance) error

// Input sets the input producer used by the input instruction (opcode 3).
func Input(fn InputFunc) Option {
	return func(i *Instance) error { i.in = fn; return nil }
}

// Output sets the output consumer used by the output instruction (opcode 4).
func Output(fn OutputFunc) Option {
	return func(i *Instance) error { i.out = fn; return nil }
}

// Restricted limits the instruction set to add, mul and halt. Any other opcode
// will be reported as an UnknownOpcodeError.
func Restricted() Option {
	return func(i *Instance) error { i.restricted = true; return nil }
}

// Logger enables execution tracing at debug level on the given logger.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = zap.NewNop()
		}
		i.log = l
		return nil
	}
}

// MaxSteps limits the number of instructions executed by Run. When the limit
// is reached, Run returns ErrStepLimit. A value of 0 disables the limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("MaxSteps: invalid step count %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The mem parameter is the memory used by the VM. Usually loaded from file
// with the Load function. The VM takes ownership of mem: it must not be
// modified by the caller while the VM is running. Since memory may grow
// during execution, the final memory state must be read from the Mem field
// after Run returns.
//
// Options will be set by calling SetOptions.
func New(mem Memory, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: mem,
		log: zap.NewNop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// RB returns the value of the relative base register.
func (i *Instance) RB() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Halted reports whether the last call to Run ended on a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// Dump writes the VM registers and memory to the specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := iox.NewErrWriter(w)
	io.WriteString(ew, "pc="+strconv.Itoa(i.PC)+" rb="+strconv.FormatInt(int64(i.rb), 10)+" steps="+strconv.FormatInt(i.insCount, 10)+"\n")
	i.Mem.WriteTo(ew)
	return ew.Err
}
