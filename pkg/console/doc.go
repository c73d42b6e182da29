// Package console implements validate.Terminal on the process's terminal.
//
// Lines are read from stdin. Cursor control goes to stderr, the same
// stream prompts are printed on, so stdout stays free for results:
//
//	age=$(conval ask --kind int32 --prompt "Age")
//
// still erases and re-prompts on the terminal while only the accepted
// value reaches the variable.
//
// The cursor position is obtained with a Device Status Report (ESC[6n):
// stdin is switched to raw mode just long enough to read the
// ESC[row;colR reply. Anything typed ahead of the reply is kept and
// returned by the next ReadLine.
//
// When stdin or stderr is not a terminal (pipes, CI, tests) the console
// is non-interactive: CursorPosition returns ErrNotTerminal and cursor
// moves and overwrites are dropped, so piped output is never polluted
// with escape sequences.
package console
