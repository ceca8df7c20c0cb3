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
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// param resolves read parameter k of instruction ins at PC.
func (i *Instance) param(ins Instruction, k int) (Cell, error) {
	raw, err := i.Mem.Read(Cell(i.PC + k))
	if err != nil {
		return 0, err
	}
	switch m := ins.Mode(k); m {
	case Position:
		return i.Mem.Read(raw)
	case Immediate:
		return raw, nil
	case Relative:
		return i.Mem.Read(raw + i.rb)
	default:
		return 0, &InvalidModeError{i.PC, k, m}
	}
}

// addr resolves write parameter k of instruction ins at PC to an address.
func (i *Instance) addr(ins Instruction, k int) (Cell, error) {
	raw, err := i.Mem.Read(Cell(i.PC + k))
	if err != nil {
		return 0, err
	}
	var a Cell
	switch m := ins.Mode(k); m {
	case Position:
		a = raw
	case Immediate:
		return 0, &InvalidWriteModeError{i.PC, k}
	case Relative:
		a = raw + i.rb
	default:
		return 0, &InvalidModeError{i.PC, k, m}
	}
	if a < 0 {
		return 0, &NegativeAddressError{a}
	}
	return a, nil
}

// operands resolves the first two read parameters of ins.
func (i *Instance) operands(ins Instruction) (a, b Cell, err error) {
	if a, err = i.param(ins, 1); err != nil {
		return 0, 0, err
	}
	if b, err = i.param(ins, 2); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Run starts execution of the VM and returns when the program halts or on
// error.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. Memory writes done by previous instructions are not rolled back.
//
// If the program halted cleanly, err will be nil, Halted will return true and
// PC will point to the halt instruction.
//
// Errors returned by the input and output functions are returned unchanged.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d, rb=%d", i.PC, i.rb)
			default:
				panic(e)
			}
		}
		if err != nil {
			i.log.Debug("fail", zap.Int("pc", i.PC), zap.Int64("steps", i.insCount), zap.Error(err))
		}
	}()
	i.insCount = 0
	i.halted = false
	for {
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return ErrStepLimit
		}
		w, err := i.Mem.Read(Cell(i.PC))
		if err != nil {
			return err
		}
		ins := Instruction(w)
		op := ins.Opcode()
		if ce := i.log.Check(zap.DebugLevel, "exec"); ce != nil {
			ce.Write(zap.Int("pc", i.PC), zap.Stringer("op", op), zap.Int64("word", int64(w)), zap.Int64("rb", int64(i.rb)))
		}
		if i.restricted && op != OpAdd && op != OpMul && op != OpHalt {
			return &UnknownOpcodeError{w, i.PC}
		}
		switch op {
		case OpAdd, OpMul, OpLess, OpEqual:
			a, b, err := i.operands(ins)
			if err != nil {
				return err
			}
			dst, err := i.addr(ins, 3)
			if err != nil {
				return err
			}
			var v Cell
			switch op {
			case OpAdd:
				v = a + b
			case OpMul:
				v = a * b
			case OpLess:
				v = b2c(a < b)
			case OpEqual:
				v = b2c(a == b)
			}
			if err = i.Mem.Write(dst, v); err != nil {
				return err
			}
			i.PC += 4
		case OpIn:
			dst, err := i.addr(ins, 1)
			if err != nil {
				return err
			}
			if i.in == nil {
				return ErrNoInput
			}
			v, err := i.in()
			if err != nil {
				return err
			}
			if err = i.Mem.Write(dst, v); err != nil {
				return err
			}
			i.PC += 2
		case OpOut:
			v, err := i.param(ins, 1)
			if err != nil {
				return err
			}
			if i.out == nil {
				return ErrNoOutput
			}
			if err = i.out(v); err != nil {
				return err
			}
			i.PC += 2
		case OpJumpTrue, OpJumpFalse:
			a, b, err := i.operands(ins)
			if err != nil {
				return err
			}
			if (a != 0) == (op == OpJumpTrue) {
				if b < 0 {
					return &NegativeAddressError{b}
				}
				i.PC = int(b)
			} else {
				i.PC += 3
			}
		case OpAdjustBase:
			v, err := i.param(ins, 1)
			if err != nil {
				return err
			}
			i.rb += v
			i.PC += 2
		case OpHalt:
			i.halted = true
			i.log.Debug("halt", zap.Int("pc", i.PC), zap.Int64("steps", i.insCount))
			return nil
		default:
			return &UnknownOpcodeError{w, i.PC}
		}
		i.insCount++
	}
}

// Exec runs the program in mem to completion with the given input and output
// functions. mem is updated in place, including any growth that occurred
// during execution.
func Exec(mem *Memory, in InputFunc, out OutputFunc, opts ...Option) error {
	i, err := New(*mem, append([]Option{Input(in), Output(out)}, opts...)...)
	if err != nil {
		return err
	}
	err = i.Run()
	*mem = i.Mem
	return err
}

// ExecRestricted runs a program that only uses the add, mul and halt
// instructions. Any other opcode results in an UnknownOpcodeError. mem is
// updated in place.
func ExecRestricted(mem *Memory, opts ...Option) error {
	i, err := New(*mem, append(append([]Option(nil), opts...), Restricted())...)
	if err != nil {
		return err
	}
	err = i.Run()
	*mem = i.Mem
	return err
}
