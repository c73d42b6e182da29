package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/aec"
	"golang.org/x/term"
)

// ErrNotTerminal is returned for cursor queries on a non-interactive console.
var ErrNotTerminal = errors.New("not a terminal")

// cursorReport asks the terminal for the cursor position (DSR 6).
const cursorReport = "\x1b[6n"

// Console reads lines from stdin and moves the cursor on stderr.
type Console struct {
	fd          int
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	pending     []byte
}

// New returns a console on the process's stdin and stderr.
func New() *Console {
	fd := int(os.Stdin.Fd())
	errFd := os.Stderr.Fd()
	return &Console{
		fd:          fd,
		reader:      bufio.NewReader(os.Stdin),
		out:         colorable.NewColorableStderr(),
		interactive: term.IsTerminal(fd) && (isatty.IsTerminal(errFd) || isatty.IsCygwinTerminal(errFd)),
	}
}

// NewWithIO returns a non-interactive console on arbitrary streams.
func NewWithIO(in io.Reader, out io.Writer) *Console {
	return &Console{
		fd:     -1,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Interactive reports whether cursor control is available.
func (c *Console) Interactive() bool {
	return c.interactive
}

// Out returns the stream prompts and cursor control are written to.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine reads up to and excluding the next newline. A final line
// without a newline is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	if i := bytes.IndexByte(c.pending, '\n'); i >= 0 {
		line := string(c.pending[:i])
		c.pending = c.pending[i+1:]
		return strings.TrimRight(line, "\r"), nil
	}

	line, err := c.reader.ReadString('\n')
	if len(c.pending) > 0 {
		line = string(c.pending) + line
		c.pending = nil
	}
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// CursorPosition queries the terminal for the zero-based cursor position.
func (c *Console) CursorPosition() (int, int, error) {
	if !c.interactive {
		return 0, 0, ErrNotTerminal
	}

	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(c.fd, state) }()

	if _, err := io.WriteString(c.out, cursorReport); err != nil {
		return 0, 0, fmt.Errorf("request cursor position: %w", err)
	}
	return c.readCursorReport()
}

// SetCursorPosition moves the cursor to a zero-based column and row.
func (c *Console) SetCursorPosition(col, row int) error {
	if !c.interactive {
		return nil
	}
	if col < 0 || row < 0 {
		return fmt.Errorf("cursor position out of range: col=%d row=%d", col, row)
	}
	_, err := io.WriteString(c.out, aec.Position(uint(row+1), uint(col+1)).String())
	return err
}

// Write writes s at the cursor.
func (c *Console) Write(s string) error {
	if !c.interactive {
		return nil
	}
	_, err := io.WriteString(c.out, s)
	return err
}

// readCursorReport consumes input up to the ESC[row;colR reply. Bytes
// preceding the reply were typed by the user and are kept for ReadLine.
func (c *Console) readCursorReport() (int, int, error) {
	var buf []byte
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			c.pending = append(c.pending, buf...)
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		buf = append(buf, b)
		if b != 'R' {
			continue
		}

		i := bytes.LastIndex(buf, []byte("\x1b["))
		if i < 0 {
			continue
		}
		col, row, err := parseCursorReport(buf[i:])
		if err != nil {
			continue
		}
		c.pending = append(c.pending, buf[:i]...)
		return col, row, nil
	}
}

// parseCursorReport parses ESC[row;colR into zero-based col and row.
func parseCursorReport(b []byte) (int, int, error) {
	var row, col int
	if _, err := fmt.Sscanf(string(b), "\x1b[%d;%dR", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("malformed cursor report %q: %w", b, err)
	}
	if row < 1 || col < 1 {
		return 0, 0, fmt.Errorf("malformed cursor report %q", b)
	}
	return col - 1, row - 1, nil
}
