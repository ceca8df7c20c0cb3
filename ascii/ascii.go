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

// Package ascii provides helpers for running Intcode programs that talk ASCII:
// such programs read and write text one character per value and report
// results that do not fit in the ASCII range as plain integers.
package ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// MaxChar is the largest value treated as a character.
const MaxChar = 127

// IsChar reports whether v is in the ASCII range.
func IsChar(v vm.Cell) bool {
	return v >= 0 && v <= MaxChar
}

// Encode returns the bytes of s as a slice of cells.
func Encode(s string) []vm.Cell {
	cells := make([]vm.Cell, len(s))
	for i := 0; i < len(s); i++ {
		cells[i] = vm.Cell(s[i])
	}
	return cells
}

// Lines encodes the given lines, each one terminated by a newline. It is
// typically used with vm.Values to script programs that expect line oriented
// commands.
func Lines(lines ...string) []vm.Cell {
	var cells []vm.Cell
	for _, l := range lines {
		cells = append(cells, Encode(l)...)
		cells = append(cells, '\n')
	}
	return cells
}

// Decode splits output values into text and non-ASCII values. Values outside
// the ASCII range are returned in rest, in order.
func Decode(cells []vm.Cell) (text string, rest []vm.Cell) {
	var sb strings.Builder
	for _, c := range cells {
		if IsChar(c) {
			sb.WriteByte(byte(c))
		} else {
			rest = append(rest, c)
		}
	}
	return sb.String(), rest
}

// Input returns an input function that yields the bytes read from r, one per
// call. Carriage returns are skipped. It returns io.EOF when r is exhausted.
func Input(r io.Reader) vm.InputFunc {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return func() (vm.Cell, error) {
		for {
			c, err := br.ReadByte()
			if err != nil {
				if err == io.EOF {
					return 0, err
				}
				return 0, errors.Wrap(err, "ascii input")
			}
			if c != '\r' {
				return vm.Cell(c), nil
			}
		}
	}
}

type flusher interface {
	Flush() error
}

// Output returns an output function that writes ASCII values as characters to
// w and any other value as a decimal number on its own line. If w has a
// Flush() error method, it is called after each newline.
func Output(w io.Writer) vm.OutputFunc {
	f, _ := w.(flusher)
	var b []byte
	return func(v vm.Cell) error {
		if IsChar(v) {
			b = append(b[:0], byte(v))
		} else {
			b = strconv.AppendInt(b[:0], int64(v), 10)
			b = append(b, '\n')
		}
		if _, err := w.Write(b); err != nil {
			return errors.Wrap(err, "ascii output")
		}
		if f != nil && b[len(b)-1] == '\n' {
			return errors.Wrap(f.Flush(), "ascii output")
		}
		return nil
	}
}
