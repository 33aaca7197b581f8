package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_splitCommands(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "  \t ", nil},
		{"single expression", "1 2 3", []string{"1 2 3"}},
		{"definition then use", ": d 2 * ; 3 d", []string{": d 2 * ;", "3 d"}},
		{"expression before definition", "1 : a 2 ; : b 3 ; b a",
			[]string{"1", ": a 2 ;", ": b 3 ;", "b a"}},
		{"unterminated definition kept whole", ": bad", []string{": bad"}},
		{"newlines inside a definition", ": d\n 2 * ;\nd", []string{": d\n 2 * ;", "d"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, splitCommands(tc.in)); diff != "" {
				t.Errorf("splitCommands(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func Test_parseCommand(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		want    command
		wantErr error
	}{
		{"empty expression", "", command{tokens: []token{}}, nil},
		{"expression", "1 dup", command{tokens: []token{{num: 1}, {word: "dup"}}}, nil},
		{"definition", ": double 2 * ;",
			command{name: "double", tokens: []token{{num: 2}, {word: "*"}}}, nil},
		{"empty body", ": nop ;", command{name: "nop", tokens: []token{}}, nil},
		{"missing semicolon", ": bad", command{}, ErrInvalidWord},
		{"numeric name", ": 1 2 ;", command{}, ErrInvalidWord},
		{"bare colon", ":", command{}, ErrInvalidWord},
		{"colon semicolon", ": ;", command{}, ErrInvalidWord},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCommand(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("parseCommand(%q) error: %v, want %v", tc.in, err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(command{}), cmpTokens); diff != "" {
				t.Errorf("parseCommand(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}
