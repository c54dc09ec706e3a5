package journal

import (
	"errors"
	"fmt"

	"github.com/faizmokh/daysplit/internal/calendar"
)

// ErrNoSegment is returned when content is written before any segment is open.
var ErrNoSegment = errors.New("no segment open")

// ErrDayNotFound is returned when no split file exists for the requested date.
var ErrDayNotFound = errors.New("no journal for date")

// DateParseError reports an entry header whose timestamp could not be read.
type DateParseError struct {
	Line int
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("line %d: cannot read entry date from %q", e.Line, e.Text)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// DirectoryCreateError reports a day directory that could not be created.
type DirectoryCreateError struct {
	Line int
	Date calendar.Date
	Path string
	Err  error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("line %d: cannot create directory %s for %s", e.Line, e.Path, e.Date)
}

func (e *DirectoryCreateError) Unwrap() error {
	return e.Err
}

// WriteError reports a day file that could not be opened, written or closed.
type WriteError struct {
	Line int
	Date calendar.Date
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: cannot %s %s for %s", e.Line, e.Op, e.Path, e.Date)
	}
	return fmt.Sprintf("cannot %s %s for %s", e.Op, e.Path, e.Date)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// OrderingWarning records content that appeared before the first entry header
// and was skipped.
type OrderingWarning struct {
	Line int
	Text string
}

func (w OrderingWarning) Error() string {
	return fmt.Sprintf("line %d: content before first entry header skipped: %q", w.Line, w.Text)
}
