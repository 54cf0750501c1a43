package main

import (
	"fmt"
	"math/bits"

	"github.com/cespare/advent2020/recparse"
)

func init() {
	registerDay(6, parseDay6, total(day6a), total(day6b))
}

// answerSet is a set of questions (a-z), one bit per letter.
type answerSet uint32

// A group holds the answers of each person in it.
type group []answerSet

func parseAnswers(s string) (answerSet, error) {
	var a answerSet
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("bad answer %q", c)
		}
		a |= 1 << (c - 'a')
	}
	return a, nil
}

var groupFactory = recparse.FactoryFuncs[group]{
	Accept: func(g *group, field string) error {
		a, err := parseAnswers(field)
		if err != nil {
			return err
		}
		*g = append(*g, a)
		return nil
	},
}

func parseDay6(input string) ([]group, error) {
	return recparse.Parse[group](recparse.Default(), groupFactory, input)
}

// anyone returns the questions answered by anyone in g.
func (g group) anyone() answerSet {
	var a answerSet
	for _, p := range g {
		a |= p
	}
	return a
}

// everyone returns the questions answered by everyone in g.
func (g group) everyone() answerSet {
	if len(g) == 0 {
		return 0
	}
	a := g[0]
	for _, p := range g[1:] {
		a &= p
	}
	return a
}

func day6a(groups []group) int64 {
	var sum int64
	for _, g := range groups {
		sum += int64(bits.OnesCount32(uint32(g.anyone())))
	}
	return sum
}

func day6b(groups []group) int64 {
	var sum int64
	for _, g := range groups {
		sum += int64(bits.OnesCount32(uint32(g.everyone())))
	}
	return sum
}
