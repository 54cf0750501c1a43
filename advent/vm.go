package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type opcode uint8

const (
	opNone opcode = iota
	opAcc
	opJmp
	opNop
)

var opcodes = map[string]opcode{
	"acc": opAcc,
	"jmp": opJmp,
	"nop": opNop,
}

func (op opcode) String() string {
	switch op {
	case opAcc:
		return "acc"
	case opJmp:
		return "jmp"
	case opNop:
		return "nop"
	}
	return fmt.Sprintf("opcode(%d)", uint8(op))
}

// flipped swaps jmp and nop. Other opcodes are unchanged.
func (op opcode) flipped() opcode {
	switch op {
	case opJmp:
		return opNop
	case opNop:
		return opJmp
	}
	return op
}

type instruction struct {
	op  opcode
	arg int64
}

func (insn instruction) String() string {
	return fmt.Sprintf("%s %+d", insn.op, insn.arg)
}

var errBadJump = errors.New("jump outside program")

// run executes prog with the opcode at index flip swapped between jmp and
// nop (flip < 0 leaves the program as is). It stops when ip reaches
// len(prog), which is a normal exit, or just before an instruction would run
// a second time. It returns the accumulator and whether the exit was normal.
func run(prog []instruction, flip int) (acc int64, ok bool, err error) {
	visited := make([]bool, len(prog))
	ip := 0
	for ip != len(prog) {
		if ip < 0 || ip > len(prog) {
			return acc, false, fmt.Errorf("%w: ip=%d", errBadJump, ip)
		}
		if visited[ip] {
			return acc, false, nil
		}
		visited[ip] = true
		insn := prog[ip]
		op := insn.op
		if ip == flip {
			op = op.flipped()
		}
		switch op {
		case opAcc:
			acc += insn.arg
			ip++
		case opJmp:
			ip += int(insn.arg)
		case opNop:
			ip++
		default:
			return acc, false, fmt.Errorf("bad instruction %q at %d", insn, ip)
		}
	}
	return acc, true, nil
}

// eval runs prog and returns the accumulator when it stops.
//
// If fix is set, eval repairs the program first: it tries swapping each jmp
// or nop in turn, in program order, and returns the accumulator of the first
// variant which exits normally. If none does, it logs a warning and returns
// the accumulator of the last variant tried.
func eval(prog []instruction, fix bool) (int64, error) {
	if !fix {
		acc, _, err := run(prog, -1)
		return acc, err
	}
	var candidates []int
	for i, insn := range prog {
		if insn.op == opJmp || insn.op == opNop {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		log.Warn().Msg("program has no jmp or nop to repair")
		acc, _, err := run(prog, -1)
		return acc, err
	}
	var acc int64
	for _, t := range candidates {
		var (
			ok  bool
			err error
		)
		acc, ok, err = run(prog, t)
		if err != nil {
			log.Debug().Err(err).Int("flip", t).Msg("repair attempt failed")
			continue
		}
		if ok {
			log.Debug().Int("flip", t).Str("was", prog[t].String()).Msg("repaired program")
			return acc, nil
		}
	}
	log.Warn().Int("candidates", len(candidates)).Msg("no single jmp/nop swap lets the program exit normally")
	return acc, nil
}
