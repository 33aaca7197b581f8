/* Package main: goforth -- a small FORTH-flavored stack calculator

FORTH is a language mostly familiar to users of "small" machines: a data
stack, a handful of primitives, and a dictionary of user defined _words_
that are indistinguishable from the built-in ones once defined.

goforth interprets a pure arithmetic dialect of that family. There are
eight primitives:

	+ - * /      binary integer operations, truncating division
	dup drop     copy or discard the top of the stack
	swap over    rearrange the top of the stack

and one defining form:

	: name body ;

which associates name with a body of words and literals. Words are case
insensitive, numbers are signed machine ints, and there is no control flow,
no floating point, and no memory model -- definitions are macros, not
procedures.

That last point is the interesting one. A defined word does not execute by
call and return: its body is expanded -- spliced into the instruction
stream where the word appears, with nested user words expanded in turn
until only literals and primitives remain. Definitions queue up raw and
only expand when a word is next looked up, so within one batch of input a
redefinition always wins:

	: foo dup + ;
	: foo dup * ;
	3 foo            ( 9, not 6 )

Expansion resolves nested words against the dictionary as it stands when
the definition drains, so redefining a helper after the fact does not
retroactively change words that were already expanded against the old one.

The interpreter is a library (New, Eval, Stack) wearing a thin REPL (Run,
main). Errors -- division by zero, stack underflow, unknown or invalid
words -- abort the current command but never poison the interpreter: the
stack and dictionary keep whatever state earlier commands established.
*/
package main
