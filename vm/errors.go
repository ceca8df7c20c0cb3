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
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrNoInput is returned by Run when the program executes an input
	// instruction and no input function has been configured.
	ErrNoInput = errors.New("no input function")
	// ErrNoOutput is returned by Run when the program executes an output
	// instruction and no output function has been configured.
	ErrNoOutput = errors.New("no output function")
	// ErrStepLimit is returned by Run when the configured step limit has
	// been reached before the program halted.
	ErrStepLimit = errors.New("step limit reached")
)

// UnknownOpcodeError is returned when the VM decodes an undefined opcode.
type UnknownOpcodeError struct {
	Code Cell // full instruction word
	PC   int
}

func (e *UnknownOpcodeError) Error() string {
	return "unknown opcode " + strconv.FormatInt(int64(e.Code), 10) + " @pc=" + strconv.Itoa(e.PC)
}

// NegativeAddressError is returned on any memory access at a negative
// address.
type NegativeAddressError struct {
	Addr Cell
}

func (e *NegativeAddressError) Error() string {
	return "negative address " + strconv.FormatInt(int64(e.Addr), 10)
}

// InvalidWriteModeError is returned when the destination parameter of an
// instruction is in immediate mode.
type InvalidWriteModeError struct {
	PC    int
	Param int
}

func (e *InvalidWriteModeError) Error() string {
	return "immediate mode for write parameter " + strconv.Itoa(e.Param) + " @pc=" + strconv.Itoa(e.PC)
}

// InvalidModeError is returned when a parameter mode digit is not one of
// Position, Immediate or Relative.
type InvalidModeError struct {
	PC    int
	Param int
	Mode  Mode
}

func (e *InvalidModeError) Error() string {
	return "invalid " + e.Mode.String() + " for parameter " + strconv.Itoa(e.Param) + " @pc=" + strconv.Itoa(e.PC)
}

// ParseError is returned by Parse for malformed program text.
type ParseError struct {
	Name   string // source name
	Index  int    // 0-based index of the offending value
	Offset int    // byte offset of the token in the source
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return e.Name + ":" + strconv.Itoa(e.Offset) + ": value #" + strconv.Itoa(e.Index) + ": invalid integer " + strconv.Quote(e.Token)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error { return e.Err }
