package main

import "io"

// New creates a VM with an empty stack and the eight builtin words
// installed.
func New(opts ...VMOption) *VM {
	var vm VM
	vm.init()
	vm.apply(opts...)
	return &vm
}

// Eval splits input into commands on `:`/`;` boundaries and evaluates each
// in order, stopping at and returning the first error. Side effects of
// commands completed earlier in the same call persist, error or not.
func (vm *VM) Eval(input string) error {
	for _, cmd := range splitCommands(input) {
		if err := vm.evalCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Stack returns the current stack contents, bottom to top. The slice is a
// view owned by the VM, valid until the next Eval.
func (vm *VM) Stack() []int { return vm.stack }

func WithInput(r io.Reader) VMOption    { return withInput(r) }
func WithOutput(w io.Writer) VMOption   { return withOutput(w) }
func WithTee(w io.Writer) VMOption      { return withTee(w) }
func WithPrompt(prompt string) VMOption { return withPrompt(prompt) }

// WithExpansionLimit bounds how many tokens a single definition may process
// while expanding, guarding against runaway macro growth.
func WithExpansionLimit(limit int) VMOption { return withExpandLimit(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
