// Package recparse splits record-oriented text into records and fields.
//
// A record is a run of lines terminated by a record separator (by default a
// blank line). Each non-empty line of a record is split by a field separator
// and every field is handed to a Factory, which decides what a record is.
package recparse

import (
	"fmt"
	"strings"
)

const (
	DefaultRecordSep = "\n\n"
	DefaultFieldSep  = " "

	// eofSep never occurs in puzzle input, so a Parser using it treats the
	// entire input as a single record.
	eofSep = "\x00EOF\x00"
)

// A Factory constructs records and feeds fields into them.
type Factory[R any] interface {
	NewRecord() R
	AcceptField(r *R, field string) error
}

// FactoryFuncs adapts a pair of functions to a Factory.
type FactoryFuncs[R any] struct {
	New    func() R
	Accept func(r *R, field string) error
}

func (f FactoryFuncs[R]) NewRecord() R {
	if f.New == nil {
		var r R
		return r
	}
	return f.New()
}

func (f FactoryFuncs[R]) AcceptField(r *R, field string) error {
	return f.Accept(r, field)
}

// A Parser holds the separators used to split input.
// An empty separator means the default.
type Parser struct {
	RecordSep string
	FieldSep  string
}

// Default returns a Parser for blank-line separated records of
// space-separated fields.
func Default() Parser {
	return Parser{RecordSep: DefaultRecordSep, FieldSep: DefaultFieldSep}
}

// Lines returns a Parser which makes each line its own record holding a
// single field.
func Lines() Parser {
	return Parser{RecordSep: "\n", FieldSep: "\n"}
}

// Whole returns a Parser which makes the whole input one record with one
// field per non-empty line.
func Whole() Parser {
	return Parser{RecordSep: eofSep, FieldSep: "\n"}
}

func (p Parser) seps() (rec, field string) {
	rec, field = p.RecordSep, p.FieldSep
	if rec == "" {
		rec = DefaultRecordSep
	}
	if field == "" {
		field = DefaultFieldSep
	}
	return rec, field
}

// Parse splits input into records using p and builds each one with f.
//
// Records are returned in input order. The text left over after the last
// record separator always becomes a final record, even if it is empty, so
// the number of records is one more than the number of separators in the
// input (after ensuring it ends in a newline).
//
// Parse itself never fails; an error from f.AcceptField stops parsing and is
// returned annotated with the record number and field.
func Parse[R any](p Parser, f Factory[R], input string) ([]R, error) {
	recSep, fieldSep := p.seps()
	var (
		records []R
		buf     strings.Builder
	)
	for _, line := range lines(input) {
		buf.WriteString(line)
		buf.WriteByte('\n')
		if strings.HasSuffix(buf.String(), recSep) {
			r, err := parseRecord(f, buf.String(), fieldSep)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", len(records)+1, err)
			}
			records = append(records, r)
			buf.Reset()
		}
	}
	r, err := parseRecord(f, buf.String(), fieldSep)
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", len(records)+1, err)
	}
	return append(records, r), nil
}

func parseRecord[R any](f Factory[R], s, fieldSep string) (R, error) {
	r := f.NewRecord()
	for _, line := range lines(s) {
		if line == "" {
			continue
		}
		for _, field := range strings.Split(line, fieldSep) {
			if err := f.AcceptField(&r, field); err != nil {
				return r, fmt.Errorf("field %q: %w", field, err)
			}
		}
	}
	return r, nil
}

// lines splits s into lines. A final newline does not start another line
// and a trailing \r is removed from each line.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	ls := strings.Split(s, "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}

// Strings returns the default Factory, whose records are the list of their
// fields.
func Strings() Factory[[]string] {
	return FactoryFuncs[[]string]{
		Accept: func(r *[]string, field string) error {
			*r = append(*r, field)
			return nil
		},
	}
}
