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

// The intcode command line tool runs, assembles and disassembles Intcode
// programs.
//
// Usage:
//
//	intcode [--debug] run [options] PROGRAM
//	intcode asm [-o filename] SOURCE
//	intcode disasm [--base N] PROGRAM
//
// run options:
//
//	--input value, -i value
//		  feed value to the program before reading stdin (can be specified multiple times)
//	--set addr=value
//		  patch memory before running (can be specified multiple times)
//	--ascii, -a
//		  ASCII mode: text I/O on stdin/stdout
//	--noraw
//		  disable raw terminal IO in ASCII mode
//	--restricted
//		  only allow the add, mul and hlt instructions
//	--max-steps N
//		  abort after N instructions (0 for no limit)
//	--dump
//		  dump registers and memory upon exit
//	--trace
//		  log every executed instruction to stderr
//
// Programs are read from a file containing a single line of comma separated
// integers.
//
// Unless --input values are given, input values are read from stdin, separated
// by white space or commas, and output values are written to stdout, one per
// line. Once all --input values are consumed, input is read from stdin.
//
// --ascii: programs that communicate with text read one character per input
// instruction and output one character per output instruction. Output values
// outside of the ASCII range are printed as numbers on their own line. If
// stdin is a terminal, it is switched to raw mode so that keystrokes are sent
// to the program as soon as they are typed; CTRL-D ends input. Use --noraw to
// disable this behavior.
//
// --set: the classic noun/verb setup, i.e. placing values at addresses 1 and
// 2 before running, is done with "--set 1=NOUN --set 2=VERB --dump". The
// result can then be read in the dumped memory at address 0.
//
// --debug: prints the VM state and a full stacktrace should the VM fail.
//
// The assembler syntax is described in the documentation of the package
// github.com/db47h/intcode/asm. The output of disasm is valid assembler source.
//
// Most flags can also be set from the environment: INTCODE_DEBUG,
// INTCODE_ASCII, INTCODE_NORAW, INTCODE_MAX_STEPS, INTCODE_TRACE, INTCODE_SET.
package main
