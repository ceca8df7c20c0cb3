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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/ascii"
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var debug bool

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "run an Intcode program",
	ArgsUsage: "PROGRAM",
	Flags: []cli.Flag{
		&cli.Int64SliceFlag{Name: "input", Aliases: []string{"i"}, Usage: "feed `value` to the program before reading stdin (can be specified multiple times)"},
		&cli.StringSliceFlag{Name: "set", Usage: "patch memory before running, e.g. --set 1=12 --set 2=2", EnvVars: []string{"INTCODE_SET"}},
		&cli.BoolFlag{Name: "ascii", Aliases: []string{"a"}, Usage: "ASCII mode: text I/O on stdin/stdout", EnvVars: []string{"INTCODE_ASCII"}},
		&cli.BoolFlag{Name: "noraw", Usage: "disable raw terminal IO in ASCII mode", EnvVars: []string{"INTCODE_NORAW"}},
		&cli.BoolFlag{Name: "restricted", Usage: "only allow the add, mul and hlt instructions"},
		&cli.Int64Flag{Name: "max-steps", Usage: "abort after `N` instructions (0 for no limit)", EnvVars: []string{"INTCODE_MAX_STEPS"}},
		&cli.BoolFlag{Name: "dump", Usage: "dump registers and memory upon exit"},
		&cli.BoolFlag{Name: "trace", Usage: "log every executed instruction to stderr", EnvVars: []string{"INTCODE_TRACE"}},
	},
	Action: runProgram,
}

var asmCommand = &cli.Command{
	Name:      "asm",
	Usage:     "assemble a source file to an Intcode program",
	ArgsUsage: "SOURCE",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "o", Usage: "write program to `filename` instead of stdout"},
	},
	Action: assemble,
}

var disasmCommand = &cli.Command{
	Name:      "disasm",
	Usage:     "disassemble an Intcode program",
	ArgsUsage: "PROGRAM",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "base", Usage: "address of the first cell"},
	},
	Action: disassemble,
}

func newLogger(trace bool) (*zap.Logger, error) {
	if !trace {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// patch applies --set addr=value flags to mem.
func patch(mem *vm.Memory, sets []string) error {
	for _, s := range sets {
		a, v, ok := strings.Cut(s, "=")
		if !ok {
			return errors.Errorf("invalid --set %q: expected addr=value", s)
		}
		addr, err := strconv.ParseInt(strings.TrimSpace(a), 0, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid --set %q", s)
		}
		val, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid --set %q", s)
		}
		if err = mem.Write(vm.Cell(addr), vm.Cell(val)); err != nil {
			return errors.Wrapf(err, "invalid --set %q", s)
		}
	}
	return nil
}

func singleArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.Errorf("%s: expected exactly one argument", c.Command.Name)
	}
	return c.Args().First(), nil
}

// eofOnCtrlD turns a CTRL-D typed on a raw terminal into io.EOF.
func eofOnCtrlD(in vm.InputFunc) vm.InputFunc {
	return func() (vm.Cell, error) {
		v, err := in()
		if err == nil && v == 4 {
			return 0, io.EOF
		}
		return v, err
	}
}

func runProgram(c *cli.Context) (err error) {
	name, err := singleArg(c)
	if err != nil {
		return err
	}
	mem, err := vm.Load(name)
	if err != nil {
		return err
	}
	if err = patch(&mem, c.StringSlice("set")); err != nil {
		return err
	}

	log, err := newLogger(c.Bool("trace"))
	if err != nil {
		return errors.Wrap(err, "logger setup failed")
	}
	defer log.Sync()

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	var (
		in  vm.InputFunc
		out vm.OutputFunc
	)
	if c.Bool("ascii") {
		in = ascii.Input(bufio.NewReader(os.Stdin))
		if !c.Bool("noraw") {
			tearDown, err := setRawIO()
			if err == nil {
				defer tearDown()
				in = eofOnCtrlD(in)
			} else {
				log.Debug("raw terminal IO disabled", zap.Error(err))
			}
		}
		out = ascii.Output(stdout)
	} else {
		in = vm.ReadInts(os.Stdin)
		out = vm.WriteInts(stdout)
	}
	if vs := c.Int64Slice("input"); len(vs) > 0 {
		cells := make([]vm.Cell, len(vs))
		for k, v := range vs {
			cells[k] = vm.Cell(v)
		}
		in = vm.Chain(vm.Values(cells...), in)
	}

	opts := []vm.Option{
		vm.Input(in),
		vm.Output(out),
		vm.Logger(log.Named(name)),
		vm.MaxSteps(c.Int64("max-steps")),
	}
	if c.Bool("restricted") {
		opts = append(opts, vm.Restricted())
	}
	i, err := vm.New(mem, opts...)
	if err != nil {
		return err
	}

	err = i.Run()
	stdout.Flush()
	log.Debug("exit", zap.Bool("halted", i.Halted()), zap.Int("pc", i.PC), zap.Int64("steps", i.InstructionCount()))
	if err == io.EOF {
		// input closed: normal exit condition in interactive use
		err = nil
	}
	if err != nil && debug {
		fmt.Fprintf(os.Stderr, "PC: %d, RB: %d, steps: %d\n", i.PC, i.RB(), i.InstructionCount())
	}
	if c.Bool("dump") {
		if e := i.Dump(stdout); err == nil {
			err = e
		}
	}
	return err
}

func assemble(c *cli.Context) error {
	name, err := singleArg(c)
	if err != nil {
		return err
	}
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	mem, err := asm.Assemble(name, bufio.NewReader(f))
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if o := c.String("o"); o != "" {
		of, err := os.Create(o)
		if err != nil {
			return errors.Wrap(err, "create failed")
		}
		defer of.Close()
		w = of
	}
	_, err = mem.WriteTo(w)
	return err
}

func disassemble(c *cli.Context) error {
	name, err := singleArg(c)
	if err != nil {
		return err
	}
	mem, err := vm.Load(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	if err = asm.DisassembleAll(mem, c.Int("base"), w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write failed")
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "intcode",
		Usage: "run, assemble and disassemble Intcode programs",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug diagnostics", EnvVars: []string{"INTCODE_DEBUG"}, Destination: &debug},
		},
		Commands: []*cli.Command{runCommand, asmCommand, disasmCommand},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}
