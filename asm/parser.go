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
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	return ch != ',' && (unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch))
}

func isLocal(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// operand state of the instruction being assembled.
type insState struct {
	pc    int       // address of the instruction word
	op    vm.Opcode // opcode
	k     int       // next parameter, 1-indexed
	scale vm.Cell   // mode multiplier for parameter k
}

type parser struct {
	mem    vm.Memory
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	locals map[string]int
	ins    *insState
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]labelSite),
		locals: make(map[string]int),
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrEntry{pos, msg})
	}
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.error(p.pos(), fmt.Sprintf(format, args...))
}

func (p *parser) pos() scanner.Position {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	return pos
}

func (p *parser) write(v vm.Cell) {
	p.mem.Write(vm.Cell(p.pc), v)
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

// localName returns the internal name of a local label reference of the form
// N+ or N-.
func (p *parser) localName(ref string) (string, bool) {
	if len(ref) < 2 {
		return "", false
	}
	n, dir := ref[:len(ref)-1], ref[len(ref)-1]
	if !isLocal(n) || (dir != '+' && dir != '-') {
		return "", false
	}
	cnt := p.locals[n]
	if dir == '+' {
		cnt++
	} else if cnt == 0 {
		p.errorf("backward reference to undefined local label %s", ref)
		return "", true
	}
	return n + "·" + strconv.Itoa(cnt), true
}

func (p *parser) useLabel(name string) {
	if n, ok := p.localName(name); ok {
		if n == "" {
			return
		}
		name = n
	}
	lbl := p.labels[name]
	if lbl == nil {
		// use current position as valid temp position
		lbl = &label{labelSite{p.pos(), -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.pos(), p.pc})
}

func (p *parser) defLabel(name string) {
	if name == "" {
		p.errorf("empty label name")
		return
	}
	if isLocal(name) {
		p.locals[name]++
		name = name + "·" + strconv.Itoa(p.locals[name])
	}
	if cst, ok := p.consts[name]; ok {
		p.errorf("label redefinition: %s, previously defined as a constant here: %s", name, cst.pos)
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.errorf("label redefinition: %s, previous definition here: %s", name, l.pos)
			return
		}
		l.labelSite = labelSite{p.pos(), p.pc}
		return
	}
	p.labels[name] = &label{labelSite{p.pos(), p.pc}, nil}
}

// value converts s to an integer literal, a character literal or a constant.
func (p *parser) value(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.errorf("invalid character literal %s", s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// number scans the next token and returns its value. Labels are not allowed.
func (p *parser) number(directive string) (vm.Cell, bool) {
	if p.s.Scan() != scanner.Ident {
		p.errorf("%s: unexpected end of input", directive)
		return 0, false
	}
	s := p.s.TokenText()
	v, ok := p.value(s)
	if !ok {
		p.errorf("%s: expected integer or constant, got %s", directive, s)
	}
	return v, ok
}

// cell writes a data cell or an operand from token s.
func (p *parser) cell(s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	p.useLabel(s)
	p.write(0)
}

func isDest(op vm.Opcode, k int) bool {
	switch op {
	case vm.OpAdd, vm.OpMul, vm.OpLess, vm.OpEqual:
		return k == 3
	case vm.OpIn:
		return k == 1
	}
	return false
}

func (p *parser) operand(s string) {
	ins := p.ins
	mode := vm.Position
	switch s[0] {
	case '#':
		mode = vm.Immediate
		s = s[1:]
	case '@':
		mode = vm.Relative
		s = s[1:]
	}
	if s == "" {
		p.errorf("missing value for operand %d of %s", ins.k, ins.op)
	} else {
		if mode == vm.Immediate && isDest(ins.op, ins.k) {
			p.errorf("immediate mode not allowed for destination operand of %s", ins.op)
		}
		p.cell(s)
	}
	p.mem[ins.pc] += vm.Cell(mode) * ins.scale
	ins.k++
	ins.scale *= 10
	if ins.k > ins.op.Params() {
		p.ins = nil
	}
}

func (p *parser) skipLine() {
	for ch := p.s.Next(); ch != '\n' && ch != scanner.EOF; ch = p.s.Next() {
	}
}

func (p *parser) skipComment() {
	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if p.s.TokenText() == ")" {
			return
		}
	}
	p.errorf("unterminated comment")
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		if v, ok := p.number(s); ok {
			if v < 0 {
				p.errorf(".org: negative address %d", v)
				return
			}
			p.pc = int(v)
		}
	case ".dat":
		if p.s.Scan() != scanner.Ident {
			p.errorf(".dat: unexpected end of input")
			return
		}
		p.cell(p.s.TokenText())
	case ".equ":
		if p.s.Scan() != scanner.Ident {
			p.errorf(".equ: expected identifier")
			return
		}
		name := p.s.TokenText()
		pos := p.pos()
		if l, ok := p.labels[name]; ok {
			p.errorf(".equ: redefinition of %s, previously defined/used as a label here: %s", name, l.pos)
			return
		}
		if v, ok := p.number(s); ok {
			p.consts[name] = labelSite{pos, int(v)}
		}
	default:
		p.errorf("unknown directive: %s", s)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Memory, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(p.pos(), msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Whitespace = scanner.GoWhitespace | 1<<','
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.errorf("unexpected character %s", strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		switch {
		case s[0] == ';':
			p.skipLine()
			continue
		case s == "(":
			p.skipComment()
			continue
		case p.ins != nil:
			p.operand(s)
			continue
		}
		switch s[0] {
		case ':':
			p.defLabel(s[1:])
		case '.':
			p.directive(s)
		case '#', '@':
			p.errorf("unexpected operand outside of instruction: %s", s)
		default:
			if op, ok := mnemonics[strings.ToLower(s)]; ok {
				p.write(vm.Cell(op))
				if op.Params() > 0 {
					p.ins = &insState{pc: p.pc - 1, op: op, k: 1, scale: 100}
				}
				break
			}
			// raw data
			p.cell(s)
		}
	}
	if p.ins != nil {
		p.errorf("missing operands for %s", p.ins.op)
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "missing label definition for "+n)
			continue
		}
		for _, u := range l.uses {
			p.mem[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		p.errs.sort()
		return nil, p.errs
	}
	return p.mem[:p.size], nil
}
