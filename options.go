package main

import (
	"bytes"
	"io"
)

type VMOption interface{ apply(vm *VM) }

var defaults = []VMOption{
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
}

func (vm *VM) apply(opts ...VMOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(vm)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type promptOption string
type expandLimitOption int

func withInput(r io.Reader) inputOption           { return inputOption{r} }
func withOutput(w io.Writer) outputOption         { return outputOption{w} }
func withTee(w io.Writer) teeOption               { return teeOption{w} }
func withPrompt(prompt string) promptOption       { return promptOption(prompt) }
func withExpandLimit(limit int) expandLimitOption { return expandLimitOption(limit) }

func (i inputOption) apply(vm *VM) {
	vm.in = i.Reader
	if cl, ok := i.Reader.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = newWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = multiWriteFlusher(vm.out, newWriteFlusher(o.Writer))
}

func (p promptOption) apply(vm *VM) {
	vm.prompt = string(p)
}

func (lim expandLimitOption) apply(vm *VM) {
	if lim > 0 {
		vm.expandLimit = int(lim)
	}
}
