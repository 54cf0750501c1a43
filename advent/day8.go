package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/recparse"
)

func init() {
	registerDay(8, parseDay8, day8a, day8b)
}

var instructionFactory = recparse.FactoryFuncs[instruction]{
	Accept: func(insn *instruction, field string) error {
		name, arg, ok := strings.Cut(strings.TrimSpace(field), " ")
		if !ok {
			return errors.New("instruction needs an argument")
		}
		op, ok := opcodes[name]
		if !ok {
			return fmt.Errorf("unknown opcode %q", name)
		}
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return err
		}
		*insn = instruction{op: op, arg: n}
		return nil
	},
}

func parseDay8(input string) ([]instruction, error) {
	prog, err := recparse.Parse[instruction](recparse.Lines(), instructionFactory, input)
	if err != nil {
		return nil, err
	}
	for len(prog) > 0 && prog[len(prog)-1].op == opNone {
		prog = prog[:len(prog)-1]
	}
	for i, insn := range prog {
		if insn.op == opNone {
			return nil, fmt.Errorf("line %d: empty instruction", i+1)
		}
	}
	return prog, nil
}

func day8a(prog []instruction) (int64, error) { return eval(prog, false) }
func day8b(prog []instruction) (int64, error) { return eval(prog, true) }
