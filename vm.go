package main

import "errors"

// Evaluation errors. Every failure returned by Eval is, or wraps, one of
// these.
var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUnknownWord       = errors.New("unknown word")
	ErrInvalidWord       = errors.New("invalid word")
	ErrExpansionOverflow = errors.New("expansion overflow")
)

// VM is a Forth-like interpreter: a data stack of ints, a table of
// operations seeded with the eight builtins, and a FIFO queue of raw
// definitions awaiting expansion. State persists across Eval calls; an
// error leaves the VM usable, only incomplete.
type VM struct {
	ioCore

	stack   []int
	ops     map[string]operation
	pending []definition

	prompt      string
	expandLimit int
}

const defaultExpandLimit = 1 << 16

func (vm *VM) init() {
	vm.ops = make(map[string]operation, len(builtins))
	for _, builtin := range builtins {
		vm.ops[builtin.name] = operation{code: builtin.code}
	}
	vm.expandLimit = defaultExpandLimit
}

func (vm *VM) push(val int) {
	vm.stack = append(vm.stack, val)
}

func (vm *VM) pop() (val int) {
	i := len(vm.stack) - 1
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val
}

// pop1 and pop2 check for underflow before popping anything, keeping the
// stack intact when an operation fails short of operands.

func (vm *VM) pop1() (int, error) {
	if len(vm.stack) < 1 {
		return 0, ErrStackUnderflow
	}
	return vm.pop(), nil
}

func (vm *VM) pop2() (a, b int, err error) {
	if len(vm.stack) < 2 {
		return 0, 0, ErrStackUnderflow
	}
	a, b = vm.pop(), vm.pop()
	return a, b, nil
}

func (vm *VM) evalCommand(input string) error {
	cmd, err := parseCommand(input)
	if err != nil {
		return err
	}
	if cmd.isDefinition() {
		if vm.logfn != nil {
			vm.logf("queue %v { %v }", cmd.name, tokensString(cmd.tokens))
		}
		vm.pending = append(vm.pending, definition{cmd.name, cmd.tokens})
		return nil
	}
	return vm.evalExpression(cmd.tokens)
}

// evalExpression consumes a token worklist left to right: a number pushes
// its value, a primitive executes immediately against the stack, and a user
// definition splices its body onto the front of the worklist for continued
// processing. The first error aborts the rest of the expression; stack
// mutations from earlier in the sequence persist.
func (vm *VM) evalExpression(tokens []token) error {
	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]
		if tok.isNum() {
			vm.push(tok.num)
			continue
		}
		op, err := vm.resolve(tok.word)
		if err != nil {
			return err
		}
		if op.code == opUser {
			tokens = spliceFront(tokens, op.body)
			continue
		}
		vm.logf("exec %v -- %v", tok.word, vm.stack)
		if err := opTable[op.code](vm); err != nil {
			return err
		}
	}
	return nil
}
