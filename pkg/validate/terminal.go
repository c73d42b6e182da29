package validate

// Terminal is the console surface the readers need. Columns and rows are
// zero-based.
type Terminal interface {
	// ReadLine blocks until a full line is available and returns it
	// without the trailing newline.
	ReadLine() (string, error)

	// CursorPosition reports the current cursor column and row.
	CursorPosition() (col, row int, err error)

	// SetCursorPosition moves the cursor.
	SetCursorPosition(col, row int) error

	// Write writes characters at the cursor, overwriting what is there.
	Write(s string) error
}
