package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpTokens = cmp.AllowUnexported(token{})

func Test_tokenize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []token
	}{
		{"empty", "", []token{}},
		{"numbers", "1 -2 30", []token{{num: 1}, {num: -2}, {num: 30}}},
		{"words fold case", "DUP Swap dRoP", []token{{word: "dup"}, {word: "swap"}, {word: "drop"}}},
		{"mixed", "1 dup +", []token{{num: 1}, {word: "dup"}, {word: "+"}}},
		{"odd whitespace", " 1\t2\n3 ", []token{{num: 1}, {num: 2}, {num: 3}}},
		{"non numeric pieces are words", "1x 2-3 --4", []token{{word: "1x"}, {word: "2-3"}, {word: "--4"}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tokenize(tc.in), cmpTokens); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func Test_tokensString(t *testing.T) {
	if got := tokensString(tokenize("1 Dup -3 +")); got != "1 dup -3 +" {
		t.Errorf("unexpected round trip: %q", got)
	}
}
