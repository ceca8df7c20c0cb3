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

// Package asm provides utility functions to assemble and disassemble Intcode.
//
// Supported assembler mnemonics:
//
//	opcode	asm	alias	operands	description
//	------	---	-----	--------	-------------------------------------------
//	1	add		a b d		store a + b at d
//	2	mul		a b d		store a * b at d
//	3	in		d		store the next input value at d
//	4	out		a		output a
//	5	jnz	jt	a b		jump to b if a != 0
//	6	jz	jf	a b		jump to b if a == 0
//	7	lt		a b d		store 1 at d if a < b, 0 otherwise
//	8	eq		a b d		store 1 at d if a == b, 0 otherwise
//	9	arb	rb	a		add a to the relative base
//	99	hlt	halt			halt
//
// Operands:
//
// An operand is a value optionally prefixed by its addressing mode:
//
//	42	position mode: the operand is the value at address 42
//	#42	immediate mode: the operand is 42
//	@42	relative mode: the operand is the value at address 42 + relative base
//
// Destination operands (d above) cannot use immediate mode. Values can be
// integer literals (any syntax accepted by strconv.ParseInt with base 0),
// character literals between single quotes, constant names or label names.
//
// Comments:
//
// A semicolon starts a comment that runs to the end of the line. Comments can
// also be placed between parentheses, i.e. '(' and ')'. The body of such a
// comment must be separated from the enclosing parentheses by a space:
//
//	add a b c	; this is a comment
//	( this is a
//	  multiline comment )
//
// Tokens are separated by white space or commas, so "add #1, #2, 3" is valid.
//
// Data:
//
// Where the parser is expecting an instruction, values are compiled as raw
// data cells. The .dat directive does the same and can be used to emit a
// value whose name would otherwise be taken as a mnemonic:
//
//	:table	1 2 3
//		.dat hlt	( address of label hlt, not opcode 99 )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// values anywhere (without the ':' prefix). Forward references are ok:
//
//	:loop	out counter
//		add counter #-1 counter
//		jnz counter #loop
//		hlt
//	:counter 3
//
// Local labels work in the same way as in the GNU assembler. They are defined
// as a colon followed by a sequence of digits (i.e. :0, :42). They can be
// defined multiple times. References to such labels must be suffixed with
// either a '-' (backward reference to the last definition of this label), or a
// '+' (forward reference to the next definition of this label):
//
//	:1	jnz flag #1+	( jumps to the next :1 )
//		jz flag #1-	( jumps to the previous :1 )
//	:1	hlt
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer literal, named
// constant or character literal.
//
//	.org <value>
//
// places the next instruction at the given address. Skipped cells are zero.
//
//	.dat <value>
//
// compiles the given value as is.
package asm
