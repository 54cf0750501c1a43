package main

import (
	"bufio"
	"fmt"
	"strings"
)

func init() {
	registerDay(5, parseDay5, day5a, day5b)
}

const (
	passRowBits  = 7
	passSeatBits = 3
)

type boardingPass struct {
	row  int // 0-127
	seat int // 0-7
}

func (bp boardingPass) id() int64 {
	return int64(bp.row*8 + bp.seat)
}

// decodePass decodes a code like "FBFBBFFRLR", which is the row and seat
// written in binary with F/L for 0 and B/R for 1.
func decodePass(code string) (boardingPass, error) {
	var bp boardingPass
	if len(code) != passRowBits+passSeatBits {
		return bp, fmt.Errorf("boarding pass %q: want %d characters", code, passRowBits+passSeatBits)
	}
	for i := 0; i < len(code); i++ {
		var bit int
		switch c := code[i]; {
		case i < passRowBits && c == 'F', i >= passRowBits && c == 'L':
		case i < passRowBits && c == 'B', i >= passRowBits && c == 'R':
			bit = 1
		default:
			return bp, fmt.Errorf("boarding pass %q: bad character %q at %d", code, c, i)
		}
		if i < passRowBits {
			bp.row = bp.row<<1 | bit
		} else {
			bp.seat = bp.seat<<1 | bit
		}
	}
	return bp, nil
}

func (bp boardingPass) encode() string {
	var b strings.Builder
	for i := passRowBits - 1; i >= 0; i-- {
		b.WriteByte("FB"[bp.row>>i&1])
	}
	for i := passSeatBits - 1; i >= 0; i-- {
		b.WriteByte("LR"[bp.seat>>i&1])
	}
	return b.String()
}

func parseDay5(input string) ([]boardingPass, error) {
	var passes []boardingPass
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		bp, err := decodePass(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		passes = append(passes, bp)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return passes, nil
}

func day5a(passes []boardingPass) (int64, error) {
	if len(passes) == 0 {
		return 0, errNoSolution
	}
	maxID := passes[0].id()
	for _, bp := range passes[1:] {
		if id := bp.id(); id > maxID {
			maxID = id
		}
	}
	return maxID, nil
}

// day5b finds the first free seat ID above the lowest ID in use.
func day5b(passes []boardingPass) (int64, error) {
	if len(passes) == 0 {
		return 0, errNoSolution
	}
	taken := make(map[int64]bool)
	minID := passes[0].id()
	for _, bp := range passes {
		id := bp.id()
		taken[id] = true
		if id < minID {
			minID = id
		}
	}
	id := minID + 1
	for taken[id] {
		id++
	}
	return id, nil
}
