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
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Values returns an InputFunc that yields the given values in order, then
// io.EOF.
func Values(v ...Cell) InputFunc {
	return func() (Cell, error) {
		if len(v) == 0 {
			return 0, io.EOF
		}
		n := v[0]
		v = v[1:]
		return n, nil
	}
}

// Constant returns an InputFunc that always yields v.
func Constant(v Cell) InputFunc {
	return func() (Cell, error) { return v, nil }
}

// Collect returns an OutputFunc that appends output values to dst.
func Collect(dst *[]Cell) OutputFunc {
	return func(v Cell) error {
		*dst = append(*dst, v)
		return nil
	}
}

// Discard is an OutputFunc that ignores its input.
func Discard(Cell) error { return nil }

func isSep(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', ',':
		return true
	}
	return false
}

// scanValues is a bufio.SplitFunc splitting input on white space and commas.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSep(rune(data[start])) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSep(rune(data[i])) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// ReadInts returns an InputFunc that reads base 10 integers separated by white
// space or commas from r. It returns io.EOF once r is exhausted.
func ReadInts(r io.Reader) InputFunc {
	s := bufio.NewScanner(r)
	s.Split(scanValues)
	return func() (Cell, error) {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return 0, errors.Wrap(err, "input")
			}
			return 0, io.EOF
		}
		v, err := strconv.ParseInt(s.Text(), 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "input")
		}
		return Cell(v), nil
	}
}

// WriteInts returns an OutputFunc that writes each output value on its own
// line to w.
func WriteInts(w io.Writer) OutputFunc {
	var b []byte
	return func(v Cell) error {
		b = strconv.AppendInt(b[:0], int64(v), 10)
		b = append(b, '\n')
		_, err := w.Write(b)
		return errors.Wrap(err, "output")
	}
}

// Chain returns an InputFunc that reads from each input function in turn.
// When an input function returns io.EOF, the next one is used. Chain returns
// io.EOF once all of them are exhausted.
func Chain(ins ...InputFunc) InputFunc {
	return func() (Cell, error) {
		for len(ins) > 0 {
			v, err := ins[0]()
			if err != io.EOF {
				return v, err
			}
			ins = ins[1:]
		}
		return 0, io.EOF
	}
}
