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

// Package vm implements an Intcode virtual machine.
//
// Intcode programs are sequences of signed integers. The VM executes them
// over a growable memory: any read or write past the end of memory extends it
// with zeros, so programs can use memory beyond their initial size.
//
// Instructions are made of an instruction word followed by their parameters.
// The two low decimal digits of the instruction word are the opcode, higher
// digits give the addressing mode of each parameter, right to left:
//
//	0	position	the parameter is an address
//	1	immediate	the parameter is a value (not valid for destinations)
//	2	relative	the parameter plus the relative base is an address
//
// Supported instructions:
//
//	opcode	asm	params	description
//	------	---	------	-------------------------------------------
//	1	add	a b d	store a + b at d
//	2	mul	a b d	store a * b at d
//	3	in	d	store the next input value at d
//	4	out	a	output a
//	5	jnz	a b	jump to b if a != 0
//	6	jz	a b	jump to b if a == 0
//	7	lt	a b d	store 1 at d if a < b, 0 otherwise
//	8	eq	a b d	store 1 at d if a == b, 0 otherwise
//	9	arb	a	add a to the relative base
//	99	hlt		halt
//
// I/O is done through an InputFunc and an OutputFunc supplied by the caller.
// Both are called synchronously: the VM never suspends, so an input function
// must be able to produce the next value on demand. Programs that do not use
// I/O, such as the ones run with ExecRestricted, do not need them.
//
// As in most interpreters of this kind, the PC is not incremented in a single
// place: each opcode deals with the PC as needed.
package vm
