package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const day2Example = `1-3 a: abcde
1-3 b: cdefg
2-9 c: ccccccccc
`

func TestParseDay2(t *testing.T) {
	got, err := parseDay2(day2Example)
	if err != nil {
		t.Fatal(err)
	}
	want := []password{
		{1, 3, 'a', "abcde"},
		{1, 3, 'b', "cdefg"},
		{2, 9, 'c', "ccccccccc"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(password{})); diff != "" {
		t.Errorf("parseDay2 (-want +got):\n%s", diff)
	}

	for _, input := range []string{
		"1-3 a abcde",
		"1:3 a: abcde",
		"1-3 ab: abcde",
		"x-3 a: abcde",
		"0-3 a: abcde",
		"4-3 a: abcde",
	} {
		if _, err := parseDay2(input); err == nil {
			t.Errorf("parseDay2(%q): got nil error", input)
		}
	}
}

func TestDay2(t *testing.T) {
	pws, err := parseDay2(day2Example)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := day2a(pws), int64(2); got != want {
		t.Errorf("day2a: got %d; want %d", got, want)
	}
	if got, want := day2b(pws), int64(1); got != want {
		t.Errorf("day2b: got %d; want %d", got, want)
	}
}

func TestDay2bShortPassword(t *testing.T) {
	pws := []password{
		{1, 5, 'a', "abc"},
		{1, 3, 'a', "abc"},
	}
	if got, want := day2b(pws), int64(1); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}
