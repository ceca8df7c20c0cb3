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

package vm_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMemory_zeroExtend(t *testing.T) {
	m := vm.Memory{1, 2, 3}
	v, err := m.Read(2)
	require.NoError(t, err)
	require.Equal(t, vm.Cell(3), v)
	require.Len(t, m, 3)

	for _, addr := range []vm.Cell{3, 10, 1000} {
		v, err = m.Read(addr)
		require.NoError(t, err)
		require.Equal(t, vm.Cell(0), v)
		require.GreaterOrEqual(t, len(m), int(addr)+1)
	}
	require.Len(t, m, 1001)
	require.Equal(t, vm.Memory{1, 2, 3}, m[:3])

	require.NoError(t, m.Write(2000, -7))
	require.Len(t, m, 2001)
	v, err = m.Read(2000)
	require.NoError(t, err)
	require.Equal(t, vm.Cell(-7), v)
	for _, v := range m[1001:2000] {
		require.Equal(t, vm.Cell(0), v)
	}

	var empty vm.Memory
	require.NoError(t, empty.Write(0, 5))
	require.Equal(t, vm.Memory{5}, empty)
}

func TestMemory_negative(t *testing.T) {
	m := vm.Memory{1}
	_, err := m.Read(-1)
	var e *vm.NegativeAddressError
	require.True(t, errors.As(err, &e))
	require.Equal(t, vm.Cell(-1), e.Addr)
	err = m.Write(-42, 1)
	require.True(t, errors.As(err, &e))
	require.Equal(t, vm.Cell(-42), e.Addr)
	require.Equal(t, vm.Memory{1}, m)
}

func TestMemory_Clone(t *testing.T) {
	m := vm.Memory{1, 2, 3}
	c := m.Clone()
	c[0] = 42
	require.NoError(t, c.Write(10, 1))
	require.Equal(t, vm.Memory{1, 2, 3}, m)
	require.Nil(t, vm.Memory(nil).Clone())
}

func TestMemory_WriteTo(t *testing.T) {
	var sb strings.Builder
	n, err := vm.Memory{1, -2, 30}.WriteTo(&sb)
	require.NoError(t, err)
	require.Equal(t, "1,-2,30\n", sb.String())
	require.Equal(t, int64(sb.Len()), n)
	require.Equal(t, "1,-2,30", vm.Memory{1, -2, 30}.String())
	require.Equal(t, "", vm.Memory{}.String())
}

func TestParse(t *testing.T) {
	tests := [...]struct {
		src string
		mem vm.Memory
	}{
		{"1,9,10,3,2,3,11,0,99,30,40,50\n", vm.Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"  1 , -2,\t3  \r\n", vm.Memory{1, -2, 3}},
		{"104,1125899906842624,99", vm.Memory{104, 1125899906842624, 99}},
		{"1,2,\n", vm.Memory{1, 2}},
		{"42", vm.Memory{42}},
		{"+5,-0", vm.Memory{5, 0}},
		{"", vm.Memory{}},
		{" \n\n", vm.Memory{}},
	}
	for _, test := range tests {
		mem, err := vm.ParseString(test.src)
		require.NoError(t, err, "%q", test.src)
		require.Equal(t, test.mem, mem, "%q", test.src)
	}
}

func TestParse_errors(t *testing.T) {
	tests := [...]struct {
		src    string
		index  int
		offset int
		token  string
	}{
		{"1,x,3", 1, 2, "x"},
		{"1, 2 ,  3.5\n", 2, 8, "3.5"},
		{"1,,2", 1, 2, ""},
		{",1", 0, 0, ""},
		{"1 2,3", 0, 0, "1 2"},
		{"99999999999999999999", 0, 0, "99999999999999999999"},
	}
	for _, test := range tests {
		_, err := vm.Parse("test", strings.NewReader(test.src))
		var e *vm.ParseError
		require.True(t, errors.As(err, &e), "%q: %v", test.src, err)
		require.Equal(t, "test", e.Name)
		require.Equal(t, test.index, e.Index, "%q", test.src)
		require.Equal(t, test.offset, e.Offset, "%q", test.src)
		require.Equal(t, test.token, e.Token, "%q", test.src)
		require.Error(t, errors.Unwrap(e))
		require.Contains(t, e.Error(), strconv.Quote(test.token))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.txt")
	require.NoError(t, os.WriteFile(name, []byte("1,0,0,0,99\n"), 0644))
	mem, err := vm.Load(name)
	require.NoError(t, err)
	require.Equal(t, vm.Memory{1, 0, 0, 0, 99}, mem)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1,zz"), 0644))
	_, err = vm.Load(bad)
	var e *vm.ParseError
	require.True(t, errors.As(err, &e))
	require.Equal(t, bad, e.Name)

	_, err = vm.Load(filepath.Join(dir, "missing"))
	require.True(t, os.IsNotExist(errors.Cause(err)))
}
