package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
)

func init() {
	registerDay(2, parseDay2, total(day2a), total(day2b))
}

type password struct {
	min, max int
	ch       byte
	value    string
}

func parseDay2(input string) ([]password, error) {
	var pws []password
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		pw, err := parsePassword(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		pws = append(pws, pw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pws, nil
}

// parsePassword parses an entry like "1-3 a: abcde".
func parsePassword(s string) (password, error) {
	var pw password
	policy, value, ok := strings.Cut(s, ": ")
	if !ok {
		return pw, fmt.Errorf("bad password entry %q", s)
	}
	bounds, ch, ok := strings.Cut(policy, " ")
	if !ok || len(ch) != 1 {
		return pw, fmt.Errorf("bad policy %q", policy)
	}
	lo, hi, ok := strings.Cut(bounds, "-")
	if !ok {
		return pw, fmt.Errorf("bad policy bounds %q", bounds)
	}
	var err error
	if pw.min, err = strconv.Atoi(lo); err != nil {
		return pw, err
	}
	if pw.max, err = strconv.Atoi(hi); err != nil {
		return pw, err
	}
	if pw.min < 1 || pw.max < pw.min {
		return pw, fmt.Errorf("bad policy bounds %q", bounds)
	}
	pw.ch = ch[0]
	pw.value = value
	return pw, nil
}

func day2a(pws []password) int64 {
	var valid int64
	for _, pw := range pws {
		n := strings.Count(pw.value, string(pw.ch))
		if n >= pw.min && n <= pw.max {
			valid++
		} else {
			log.Debug().Str("password", pretty.Sprint(pw)).Msg("invalid")
		}
	}
	return valid
}

func day2b(pws []password) int64 {
	var valid int64
	for _, pw := range pws {
		if pw.max > len(pw.value) {
			log.Debug().Str("password", pretty.Sprint(pw)).Msg("short password")
			continue
		}
		if (pw.value[pw.min-1] == pw.ch) != (pw.value[pw.max-1] == pw.ch) {
			valid++
		} else {
			log.Debug().Str("password", pretty.Sprint(pw)).Msg("invalid")
		}
	}
	return valid
}
