package main

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// suiteCase is one entry of testdata/eval.yaml: a black box evaluation
// scenario run against a fresh VM, inputs fed through separate Eval calls.
type suiteCase struct {
	Name  string   `yaml:"name"`
	Input []string `yaml:"input"`
	Want  []int    `yaml:"want"`
	Error string   `yaml:"error"`
}

var suiteErrors = map[string]error{
	"division by zero":   ErrDivisionByZero,
	"stack underflow":    ErrStackUnderflow,
	"unknown word":       ErrUnknownWord,
	"invalid word":       ErrInvalidWord,
	"expansion overflow": ErrExpansionOverflow,
}

func Test_suite(t *testing.T) {
	data, err := os.ReadFile("testdata/eval.yaml")
	if err != nil {
		t.Fatalf("reading suite: %v", err)
	}
	var cases []suiteCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decoding suite: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			vm := New()
			var evalErr error
			for _, input := range tc.Input {
				if evalErr = vm.Eval(input); evalErr != nil {
					break
				}
			}

			if tc.Error != "" {
				want, ok := suiteErrors[tc.Error]
				if !ok {
					t.Fatalf("suite names unknown error kind %q", tc.Error)
				}
				if !errors.Is(evalErr, want) {
					t.Fatalf("expected error %q, got %v", tc.Error, evalErr)
				}
			} else if evalErr != nil {
				t.Fatalf("unexpected error: %v", evalErr)
			}

			want := tc.Want
			if want == nil {
				want = []int{}
			}
			if diff := cmp.Diff(want, append([]int{}, vm.Stack()...)); diff != "" {
				t.Errorf("stack mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
