package journal

import (
	"bufio"
	"errors"
	"os"

	"github.com/faizmokh/daysplit/internal/calendar"
	"github.com/faizmokh/daysplit/internal/files"
)

// SegmentWriter owns the single day file currently being written. A nil
// segment means no header has been seen yet.
type SegmentWriter struct {
	manager *files.Manager
	current *segment
}

type segment struct {
	date calendar.Date
	path string
	file *os.File
	buf  *bufio.Writer
}

// NewSegmentWriter wires a writer that lays files out through manager.
func NewSegmentWriter(manager *files.Manager) *SegmentWriter {
	return &SegmentWriter{manager: manager}
}

// Current returns the date of the open segment, if any.
func (w *SegmentWriter) Current() (calendar.Date, bool) {
	if w.current == nil {
		return calendar.Date{}, false
	}
	return w.current.date, true
}

// Path returns the file path of the open segment, or "" when idle.
func (w *SegmentWriter) Path() string {
	if w.current == nil {
		return ""
	}
	return w.current.path
}

// Switch makes date the open segment. It is a no-op when date is already
// open; otherwise the previous segment is closed and the day file is created
// afresh, replacing anything a previous run left there. It reports whether a
// new segment was opened.
func (w *SegmentWriter) Switch(date calendar.Date) (bool, error) {
	if w.manager == nil {
		return false, errors.New("segment writer not initialized with file manager")
	}
	if cur, ok := w.Current(); ok && cur == date {
		return false, nil
	}

	if err := w.Close(); err != nil {
		return false, err
	}

	path := w.manager.DayPath(date)
	if _, err := w.manager.EnsureDayDir(date); err != nil {
		return false, &DirectoryCreateError{Date: date, Path: w.manager.DayDir(date), Err: err}
	}

	file, err := w.manager.CreateDayFile(date)
	if err != nil {
		return false, &WriteError{Date: date, Path: path, Op: "open", Err: err}
	}

	w.current = &segment{
		date: date,
		path: path,
		file: file,
		buf:  bufio.NewWriter(file),
	}
	return true, nil
}

// WriteLine appends text and a newline to the open segment.
func (w *SegmentWriter) WriteLine(text string) error {
	if w.current == nil {
		return ErrNoSegment
	}
	if _, err := w.current.buf.WriteString(text); err != nil {
		return w.current.fail("write", err)
	}
	if err := w.current.buf.WriteByte('\n'); err != nil {
		return w.current.fail("write", err)
	}
	return nil
}

// Close flushes and releases the open segment. The handle is released even
// when the flush fails. Closing an idle writer does nothing.
func (w *SegmentWriter) Close() error {
	seg := w.current
	if seg == nil {
		return nil
	}
	w.current = nil

	flushErr := seg.buf.Flush()
	closeErr := seg.file.Close()
	switch {
	case flushErr != nil:
		return seg.fail("flush", flushErr)
	case closeErr != nil:
		return seg.fail("close", closeErr)
	}
	return nil
}

func (s *segment) fail(op string, err error) error {
	return &WriteError{Date: s.date, Path: s.path, Op: op, Err: err}
}
