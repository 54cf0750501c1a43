package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const day4Example = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

const day4Invalid = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const day4Valid = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func TestParseDay4(t *testing.T) {
	ps, err := parseDay4(day4Example)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 4 {
		t.Fatalf("got %d passports; want 4", len(ps))
	}
	want := passport{
		"hcl": "#cfa07d",
		"eyr": "2025",
		"pid": "166559648",
		"iyr": "2011",
		"ecl": "brn",
		"hgt": "59in",
	}
	if diff := cmp.Diff(want, ps[3]); diff != "" {
		t.Errorf("last passport (-want +got):\n%s", diff)
	}

	for _, input := range []string{"byr1920", "foo:bar"} {
		if _, err := parseDay4(input); err == nil {
			t.Errorf("parseDay4(%q): got nil error", input)
		}
	}
}

func TestDay4(t *testing.T) {
	for _, tt := range []struct {
		name         string
		input        string
		wantA, wantB int64
	}{
		{"example", day4Example, 2, 2},
		{"invalid", day4Invalid, 4, 0},
		{"valid", day4Valid, 4, 4},
	} {
		ps, err := parseDay4(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := day4a(ps); got != tt.wantA {
			t.Errorf("%s: day4a: got %d; want %d", tt.name, got, tt.wantA)
		}
		if got := day4b(ps); got != tt.wantB {
			t.Errorf("%s: day4b: got %d; want %d", tt.name, got, tt.wantB)
		}
	}
}

func TestPassportRules(t *testing.T) {
	for _, tt := range []struct {
		field, value string
		want         bool
	}{
		{"byr", "2002", true},
		{"byr", "2003", false},
		{"byr", "1920", true},
		{"byr", "02002", false},
		{"iyr", "2010", true},
		{"iyr", "2021", false},
		{"eyr", "2030", true},
		{"eyr", "2019", false},
		{"hgt", "60in", true},
		{"hgt", "190cm", true},
		{"hgt", "190in", false},
		{"hgt", "190", false},
		{"hgt", "149cm", false},
		{"hgt", "99999999999999999999cm", false},
		{"hcl", "#123abc", true},
		{"hcl", "#123abz", false},
		{"hcl", "123abc", false},
		{"hcl", "#123abcd", false},
		{"ecl", "brn", true},
		{"ecl", "wat", false},
		{"pid", "000000001", true},
		{"pid", "0123456789", false},
	} {
		if got := passportRules[tt.field](tt.value); got != tt.want {
			t.Errorf("%s:%s: got %t; want %t", tt.field, tt.value, got, tt.want)
		}
	}
}
