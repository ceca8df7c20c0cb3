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
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/iox"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Memory is the VM memory. It grows on demand: any access past the end
// extends it with zeros. It never shrinks.
type Memory []Cell

func (m *Memory) grow(addr Cell) error {
	if addr < 0 {
		return &NegativeAddressError{addr}
	}
	if l := Cell(len(*m)); addr >= l {
		*m = append(*m, make([]Cell, addr-l+1)...)
	}
	return nil
}

// Read returns the value at address addr.
//
// Memory is extended up to addr on demand. Addresses past the runtime's
// maximum allocation size make append panic; Instance.Run recovers that
// panic and returns it as an error. Smaller but still huge addresses may
// exhaust available memory, which the runtime treats as a fatal error.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if err := m.grow(addr); err != nil {
		return 0, err
	}
	return (*m)[addr], nil
}

// Write stores v at address addr.
func (m *Memory) Write(addr, v Cell) error {
	if err := m.grow(addr); err != nil {
		return err
	}
	(*m)[addr] = v
	return nil
}

// Clone returns a copy of m that does not share storage with m.
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	c := make(Memory, len(m))
	copy(c, m)
	return c
}

// WriteTo writes m to w in program text format: comma separated values
// followed by a newline.
func (m Memory) WriteTo(w io.Writer) (int64, error) {
	ew := iox.NewErrWriter(w)
	bw := bufio.NewWriter(ew)
	var n int64
	for i, v := range m {
		if i > 0 {
			bw.WriteByte(',')
			n++
		}
		s := strconv.FormatInt(int64(v), 10)
		bw.WriteString(s)
		n += int64(len(s))
	}
	bw.WriteByte('\n')
	n++
	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, ew.Err
}

func (m Memory) String() string {
	var sb strings.Builder
	m.WriteTo(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// Parse reads a program from r. The expected format is a single line of
// comma separated base 10 integers. Whitespace around values is ignored, as is
// a trailing comma.
//
// The name parameter is only used in error messages. If the io.Reader is a
// file, name should be the file name.
func Parse(name string, r io.Reader) (Memory, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	src := string(b)
	if strings.TrimSpace(src) == "" {
		return Memory{}, nil
	}
	mem := make(Memory, 0, strings.Count(src, ",")+1)
	for off, idx := 0, 0; ; idx++ {
		end := strings.IndexByte(src[off:], ',')
		last := end < 0
		if last {
			end = len(src)
		} else {
			end += off
		}
		tok := strings.TrimSpace(src[off:end])
		if last && tok == "" && idx > 0 {
			// trailing comma
			break
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &ParseError{
				Name:   name,
				Index:  idx,
				Offset: off + strings.Index(src[off:end], tok),
				Token:  tok,
				Err:    err,
			}
		}
		mem = append(mem, Cell(v))
		if last {
			break
		}
		off = end + 1
	}
	return mem, nil
}

// ParseString parses a program from the given string.
func ParseString(s string) (Memory, error) {
	return Parse("string", strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	mem, err := Parse(fileName, bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	return mem, nil
}
