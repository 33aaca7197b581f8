package main

// An operation is a table entry: one of the eight primitive codes, or
// opUser carrying the flattened body of a user definition. An installed
// body contains only number tokens and words naming primitives; executing
// it never needs further indirection through the table.
type operation struct {
	code opCode
	body []token
}

type opCode int

const (
	opAdd opCode = iota // +     binary integer operation on the stack
	opSub               // -     binary integer operation on the stack
	opMul               // *     binary integer operation on the stack
	opDiv               // /     binary integer operation on the stack
	opDup               // dup   copy the top of the stack
	opDrop              // drop  discard the top of the stack
	opSwap              // swap  exchange the top two stack values
	opOver              // over  copy up the second stack value

	opUser // a fully expanded user definition
)

// The eight builtin words seeded into every new table. Definitions may
// shadow any of them; lookups always prefer the freshest entry.
var builtins = [...]struct {
	name string
	code opCode
}{
	{"+", opAdd},
	{"-", opSub},
	{"*", opMul},
	{"/", opDiv},
	{"dup", opDup},
	{"drop", opDrop},
	{"swap", opSwap},
	{"over", opOver},
}

var opTable [opUser]func(vm *VM) error

func init() {
	opTable = [...]func(vm *VM) error{
		(*VM).add,
		(*VM).sub,
		(*VM).mul,
		(*VM).div,
		(*VM).dup,
		(*VM).drop,
		(*VM).swap,
		(*VM).over,
	}
}

// Operands pop in LIFO order, a first and then b; underflow checks precede
// every pop, so a failing primitive leaves the stack untouched.

// Symbol   Name   Function
//    +     add    pop top 2 elements of the stack, add, push
func (vm *VM) add() error {
	a, b, err := vm.pop2()
	if err != nil {
		return err
	}
	vm.push(b + a)
	return nil
}

// Symbol   Name   Function
//    -     sub    pop top 2 elements of the stack, subtract, push
func (vm *VM) sub() error {
	a, b, err := vm.pop2()
	if err != nil {
		return err
	}
	vm.push(b - a)
	return nil
}

// Symbol   Name   Function
//    *     mul    pop top 2 elements of the stack, multiply, push
func (vm *VM) mul() error {
	a, b, err := vm.pop2()
	if err != nil {
		return err
	}
	vm.push(b * a)
	return nil
}

// Symbol   Name   Function
//    /     div    pop top 2 elements of the stack, divide truncating, push;
//                 a zero divisor fails before anything pops
func (vm *VM) div() error {
	if len(vm.stack) < 2 {
		return ErrStackUnderflow
	}
	if vm.stack[len(vm.stack)-1] == 0 {
		return ErrDivisionByZero
	}
	a, b := vm.pop(), vm.pop()
	vm.push(b / a)
	return nil
}

// Name   Function
// dup    pop the top element, push it back twice
func (vm *VM) dup() error {
	a, err := vm.pop1()
	if err != nil {
		return err
	}
	vm.push(a)
	vm.push(a)
	return nil
}

// Name   Function
// drop   pop the top element and discard it
func (vm *VM) drop() error {
	_, err := vm.pop1()
	return err
}

// Name   Function
// swap   pop a, pop b, push a, push b
func (vm *VM) swap() error {
	a, b, err := vm.pop2()
	if err != nil {
		return err
	}
	vm.push(a)
	vm.push(b)
	return nil
}

// Name   Function
// over   pop a, pop b, push b, push a, push b
func (vm *VM) over() error {
	a, b, err := vm.pop2()
	if err != nil {
		return err
	}
	vm.push(b)
	vm.push(a)
	vm.push(b)
	return nil
}
