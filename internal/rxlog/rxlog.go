// internal/rxlog/rxlog.go
package rxlog

import (
	"fmt"
	"os"
	"time"
)

// HeaderLayout matches the session header timestamp.
const HeaderLayout = "2006-01-02 15:04:05.000000"

// File is an append-only text log.
// Every call opens, writes and closes the file. No handle is kept,
// so concurrent appends rely on O_APPEND semantics only.
type File struct {
	Path string
}

// New returns a log bound to path.
func New(path string) *File {
	return &File{Path: path}
}

// Header writes the session separator: a blank line, then
// "New log starting <date> <time>".
func (f *File) Header(now time.Time) error {
	return f.write("\nNew log starting " + now.Format(HeaderLayout) + "\n")
}

// Append writes line followed by a newline.
func (f *File) Append(line string) error {
	return f.write(line + "\n")
}

func (f *File) write(s string) error {
	if f == nil || f.Path == "" {
		return fmt.Errorf("rxlog: no path configured")
	}

	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("rxlog: open: %w", err)
	}

	if _, err := fh.WriteString(s); err != nil {
		_ = fh.Close()
		return fmt.Errorf("rxlog: write: %w", err)
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("rxlog: close: %w", err)
	}
	return nil
}
