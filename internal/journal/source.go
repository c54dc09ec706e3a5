package journal

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource reads an export one line at a time, keeping count of where it is.
// Lines of any length are supported.
type LineSource struct {
	reader *bufio.Reader
	line   int
	text   string
	err    error
}

// NewLineSource returns a source ready to read lines from r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{reader: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at end of input or on a
// read error; check Err afterwards.
func (s *LineSource) Next() bool {
	if s.err != nil || s.reader == nil {
		return false
	}

	raw, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
			return false
		}
		// Final line without a terminator still counts.
		if raw == "" {
			s.reader = nil
			return false
		}
		s.reader = nil
	}

	s.line++
	raw = strings.TrimSuffix(raw, "\n")
	s.text = strings.TrimSuffix(raw, "\r")
	return true
}

// Text returns the current line without its terminator.
func (s *LineSource) Text() string {
	return s.text
}

// Line returns the 1-based number of the current line.
func (s *LineSource) Line() int {
	return s.line
}

// Err returns the first non-EOF read error.
func (s *LineSource) Err() error {
	return s.err
}
