package validate

import (
	"errors"
	"io"

	"github.com/mattn/go-runewidth"
)

type move struct{ col, row int }

// fakeTerminal replays scripted lines and tracks the cursor the way an
// echoing console would: each line read leaves the cursor at column 0 of
// the next row.
type fakeTerminal struct {
	lines     []string
	col, row  int
	writes    []string
	moves     []move
	cursorErr error
}

func newFakeTerminal(col, row int, lines ...string) *fakeTerminal {
	return &fakeTerminal{lines: lines, col: col, row: row}
}

func (f *fakeTerminal) ReadLine() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	f.row++
	f.col = 0
	return line, nil
}

func (f *fakeTerminal) CursorPosition() (int, int, error) {
	if f.cursorErr != nil {
		return 0, 0, f.cursorErr
	}
	return f.col, f.row, nil
}

func (f *fakeTerminal) SetCursorPosition(col, row int) error {
	if f.cursorErr != nil {
		return f.cursorErr
	}
	f.col, f.row = col, row
	f.moves = append(f.moves, move{col, row})
	return nil
}

func (f *fakeTerminal) Write(s string) error {
	f.writes = append(f.writes, s)
	f.col += runewidth.StringWidth(s)
	return nil
}

var errNoCursor = errors.New("no cursor")
