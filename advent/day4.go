package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/advent2020/recparse"
)

func init() {
	registerDay(4, parseDay4, total(day4a), total(day4b))
}

// A passport maps field keys (byr, iyr, ...) to their values.
// Absent fields have no entry.
type passport map[string]string

var (
	yearRx   = regexp.MustCompile(`^\d{4}$`)
	heightRx = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hairRx   = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	eyeRx    = regexp.MustCompile(`^(amb|blu|brn|gry|grn|hzl|oth)$`)
	pidRx    = regexp.MustCompile(`^[0-9]{9}$`)
)

// passportRules holds the strict check for each known field.
// A nil rule accepts anything.
var passportRules = map[string]func(string) bool{
	"byr": yearBetween(1920, 2002),
	"iyr": yearBetween(2010, 2020),
	"eyr": yearBetween(2020, 2030),
	"hgt": validHeight,
	"hcl": hairRx.MatchString,
	"ecl": eyeRx.MatchString,
	"pid": pidRx.MatchString,
	"cid": nil,
}

var requiredPassportFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

func yearBetween(lo, hi int) func(string) bool {
	return func(s string) bool {
		if !yearRx.MatchString(s) {
			return false
		}
		n, _ := strconv.Atoi(s)
		return n >= lo && n <= hi
	}
}

func validHeight(s string) bool {
	m := heightRx.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	if m[2] == "cm" {
		return n >= 150 && n <= 193
	}
	return n >= 59 && n <= 76
}

var passportFactory = recparse.FactoryFuncs[passport]{
	New: func() passport { return make(passport) },
	Accept: func(p *passport, field string) error {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return errors.New("passport field is not key:value")
		}
		if _, ok := passportRules[key]; !ok {
			return fmt.Errorf("unknown passport field %q", key)
		}
		(*p)[key] = value
		return nil
	},
}

func parseDay4(input string) ([]passport, error) {
	return recparse.Parse[passport](recparse.Default(), passportFactory, input)
}

// hasRequired reports whether every field but cid is present.
func (p passport) hasRequired() bool {
	for _, key := range requiredPassportFields {
		if _, ok := p[key]; !ok {
			return false
		}
	}
	return true
}

// valid reports whether p has every required field and, if strict, whether
// every field passes its rule.
func (p passport) valid(strict bool) bool {
	if !p.hasRequired() {
		return false
	}
	if !strict {
		return true
	}
	for key, value := range p {
		if rule := passportRules[key]; rule != nil && !rule(value) {
			return false
		}
	}
	return true
}

func countValidPassports(ps []passport, strict bool) int64 {
	var n int64
	for _, p := range ps {
		if p.valid(strict) {
			n++
		}
	}
	return n
}

func day4a(ps []passport) int64 { return countValidPassports(ps, false) }
func day4b(ps []passport) int64 { return countValidPassports(ps, true) }
