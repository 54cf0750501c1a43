package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/recparse"
)

func init() {
	registerDay(7, parseDay7, total(day7a), total(day7b))
}

const myBag = "shiny gold"

type bagCount struct {
	name string
	n    int64
}

type bagRule struct {
	contains    []bagCount
	containedBy []string
}

// A ruleBook is the graph of which bags hold which, kept in both directions.
type ruleBook struct {
	rules map[string]*bagRule
}

func newRuleBook() *ruleBook {
	return &ruleBook{rules: make(map[string]*bagRule)}
}

func (rb *ruleBook) rule(name string) *bagRule {
	r, ok := rb.rules[name]
	if !ok {
		r = new(bagRule)
		rb.rules[name] = r
	}
	return r
}

// addEdge records that outer directly holds n inner bags.
func (rb *ruleBook) addEdge(outer, inner string, n int64) {
	o := rb.rule(outer)
	o.contains = append(o.contains, bagCount{inner, n})
	i := rb.rule(inner)
	i.containedBy = append(i.containedBy, outer)
}

// addRule parses a rule like
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
func (rb *ruleBook) addRule(s string) error {
	container, tail, ok := strings.Cut(s, " contain ")
	if !ok {
		return errors.New(`rule has no " contain "`)
	}
	container = strings.TrimSuffix(container, " bags")
	rb.rule(container)
	for _, clause := range strings.Split(tail, ", ") {
		words := strings.Fields(clause)
		if len(words) == 0 {
			continue
		}
		n, err := strconv.ParseInt(words[0], 10, 64)
		if err != nil {
			// "no other bags."
			continue
		}
		if n < 1 || len(words) < 3 {
			return fmt.Errorf("bad clause %q", clause)
		}
		rb.addEdge(container, words[1]+" "+words[2], n)
	}
	return nil
}

// outerClosure returns every bag which can eventually hold name.
func (rb *ruleBook) outerClosure(name string) map[string]struct{} {
	seen := make(map[string]struct{})
	stack := []string{name}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, ok := rb.rules[b]
		if !ok {
			continue
		}
		for _, outer := range r.containedBy {
			if _, ok := seen[outer]; ok {
				continue
			}
			seen[outer] = struct{}{}
			stack = append(stack, outer)
		}
	}
	delete(seen, name)
	return seen
}

// innerClosure returns every bag which name eventually holds.
func (rb *ruleBook) innerClosure(name string) map[string]struct{} {
	seen := make(map[string]struct{})
	stack := []string{name}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, ok := rb.rules[b]
		if !ok {
			continue
		}
		for _, inner := range r.contains {
			if _, ok := seen[inner.name]; ok {
				continue
			}
			seen[inner.name] = struct{}{}
			stack = append(stack, inner.name)
		}
	}
	delete(seen, name)
	return seen
}

func (rb *ruleBook) countOuterBags(name string) int64 {
	return int64(len(rb.outerClosure(name)))
}

// countInnerBags returns the total number of bags inside name.
func (rb *ruleBook) countInnerBags(name string) int64 {
	memo := make(map[string]int64)
	var count func(string) int64
	count = func(name string) int64 {
		if n, ok := memo[name]; ok {
			return n
		}
		var sum int64
		if r, ok := rb.rules[name]; ok {
			for _, inner := range r.contains {
				sum += inner.n * (1 + count(inner.name))
			}
		}
		memo[name] = sum
		return sum
	}
	return count(name)
}

var ruleBookFactory = recparse.FactoryFuncs[*ruleBook]{
	New: newRuleBook,
	Accept: func(rb **ruleBook, field string) error {
		return (*rb).addRule(field)
	},
}

func parseDay7(input string) (*ruleBook, error) {
	books, err := recparse.Parse[*ruleBook](recparse.Whole(), ruleBookFactory, input)
	if err != nil {
		return nil, err
	}
	return books[0], nil
}

func day7a(rb *ruleBook) int64 { return rb.countOuterBags(myBag) }
func day7b(rb *ruleBook) int64 { return rb.countInnerBags(myBag) }
