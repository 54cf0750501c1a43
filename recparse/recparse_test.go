package recparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDefault(t *testing.T) {
	input := "hey:22 we:21\nlike:12 to:29 party:99\n\nhey:99\nwe:182\ndoo:88\n"
	got, err := Parse(Default(), Strings(), input)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"hey:22", "we:21", "like:12", "to:29", "party:99"},
		{"hey:99", "we:182", "doo:88"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}
}

func TestParseTrailingRecord(t *testing.T) {
	for _, tt := range []struct {
		p     Parser
		input string
		want  [][]string
	}{
		{Default(), "", [][]string{nil}},
		{Default(), "a\n\n", [][]string{{"a"}, nil}},
		{Default(), "a b", [][]string{{"a", "b"}}},
		{Lines(), "nop +0\nacc +1\n", [][]string{{"nop +0"}, {"acc +1"}, nil}},
		{Lines(), "nop +0\nacc +1", [][]string{{"nop +0"}, {"acc +1"}, nil}},
		{Whole(), "x y\nz\n", [][]string{{"x y", "z"}}},
		{Parser{}, "a b\r\n\r\nc\r\n", [][]string{{"a", "b"}, {"c"}}},
	} {
		got, err := Parse(tt.p, Strings(), tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %s", tt.input, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParseRecordCount(t *testing.T) {
	for _, tt := range []struct {
		p     Parser
		input string
	}{
		{Default(), "a\nb\n\nc\n\nd e\nf\n"},
		{Default(), "a\n\n\nb\n"},
		{Default(), "\n\n\n\n"},
		{Lines(), "1\n2\n3"},
		{Parser{RecordSep: ";\n", FieldSep: ","}, "a,b;\nc;\nd,e,f\n"},
		{Whole(), "one\ntwo\n\nthree\n"},
	} {
		recSep, fieldSep := tt.p.seps()
		var fields []string
		f := FactoryFuncs[int]{
			Accept: func(n *int, field string) error {
				*n++
				fields = append(fields, field)
				return nil
			},
		}
		got, err := Parse[int](tt.p, f, tt.input)
		if err != nil {
			t.Fatal(err)
		}
		normalized := tt.input
		if !strings.HasSuffix(normalized, "\n") {
			normalized += "\n"
		}
		if want := strings.Count(normalized, recSep) + 1; len(got) != want {
			t.Errorf("Parse(%q): got %d records; want %d", tt.input, len(got), want)
		}
		for _, field := range fields {
			if strings.Contains(field, recSep) || strings.Contains(field, fieldSep) {
				t.Errorf("Parse(%q): field %q contains a separator", tt.input, field)
			}
		}
	}
}

func TestParseFieldOrder(t *testing.T) {
	var seen []string
	f := FactoryFuncs[struct{}]{
		Accept: func(_ *struct{}, field string) error {
			seen = append(seen, field)
			return nil
		},
	}
	if _, err := Parse[struct{}](Default(), f, "a b\nc\n\nd\ne f\n"); err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c", "d", "e", "f"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("field order (-want +got):\n%s", diff)
	}
}

func TestParseFactoryError(t *testing.T) {
	errBad := errors.New("bad field")
	f := FactoryFuncs[[]string]{
		Accept: func(r *[]string, field string) error {
			if field == "x" {
				return errBad
			}
			*r = append(*r, field)
			return nil
		},
	}
	_, err := Parse[[]string](Default(), f, "a b\n\nc x\n")
	if !errors.Is(err, errBad) {
		t.Fatalf("got err %v; want %v", err, errBad)
	}
	if want := `record 2: field "x": bad field`; err.Error() != want {
		t.Errorf("got %q; want %q", err, want)
	}
}
