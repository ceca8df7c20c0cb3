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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
)

func TestPatch(t *testing.T) {
	mem := vm.Memory{1, 0, 0, 0, 99}
	require.NoError(t, patch(&mem, []string{"1=12", " 2 = 0x2", "6=7"}))
	require.Equal(t, vm.Memory{1, 12, 2, 0, 99, 0, 7}, mem)

	for _, s := range []string{"12", "x=1", "1=y", "-1=5"} {
		require.Error(t, patch(&mem, []string{s}), s)
	}
}

func TestApp_asmDisasmRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.s")
	prog := filepath.Join(dir, "prog.txt")
	require.NoError(t, os.WriteFile(src, []byte("add 1 2 0\nhlt\n"), 0644))

	require.NoError(t, newApp().Run([]string{"intcode", "asm", "-o", prog, src}))
	b, err := os.ReadFile(prog)
	require.NoError(t, err)
	require.Equal(t, "1,1,2,0,99\n", string(b))

	require.NoError(t, newApp().Run([]string{"intcode", "disasm", prog}))
	require.NoError(t, newApp().Run([]string{"intcode", "run", "--restricted", "--set", "1=4", "--set", "2=4", prog}))

	require.Error(t, newApp().Run([]string{"intcode", "run"}))
	require.Error(t, newApp().Run([]string{"intcode", "run", filepath.Join(dir, "missing")}))
	require.Error(t, newApp().Run([]string{"intcode", "run", "--max-steps", "-1", prog}))
}

func TestApp_runErrors(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(prog, []byte("3,0,4,0,99"), 0644))
	// restricted mode rejects I/O instructions
	err := newApp().Run([]string{"intcode", "run", "--restricted", prog})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown opcode 3")

	// --input values are consumed before stdin
	require.NoError(t, newApp().Run([]string{"intcode", "run", "-i", "42", prog}))
}
