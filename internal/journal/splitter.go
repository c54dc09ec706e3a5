package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/faizmokh/daysplit/internal/calendar"
	"github.com/faizmokh/daysplit/internal/files"
)

// DateParser turns a header timestamp into the date it belongs to.
type DateParser func(payload string) (calendar.Date, error)

// Splitter partitions a journal export into one Markdown file per day.
type Splitter struct {
	manager *files.Manager
	log     zerolog.Logger
	parse   DateParser
}

// Option customizes a Splitter.
type Option func(*Splitter)

// WithLogger routes diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Splitter) {
		s.log = log
	}
}

// WithDateParser replaces calendar.Parse for header timestamps.
func WithDateParser(parse DateParser) Option {
	return func(s *Splitter) {
		if parse != nil {
			s.parse = parse
		}
	}
}

// NewSplitter wires a splitter writing beneath manager's root.
func NewSplitter(manager *files.Manager, opts ...Option) *Splitter {
	s := &Splitter{
		manager: manager,
		log:     zerolog.Nop(),
		parse:   calendar.Parse,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SplitFile opens the export at path and splits it.
func (s *Splitter) SplitFile(ctx context.Context, path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open export: %w", err)
	}
	defer file.Close()

	return s.Split(ctx, file)
}

// Split reads the export line by line. Each header whose date differs from
// the open segment closes it and opens the day file for the new date; body
// lines are appended to the open segment and photo references are rewritten
// as Markdown images. Header lines themselves are not written. The first
// fatal error stops the run; segments closed before it stay intact.
func (s *Splitter) Split(ctx context.Context, r io.Reader) (res Result, err error) {
	if s == nil || s.manager == nil {
		return Result{}, errors.New("splitter not initialized with file manager")
	}

	writer := NewSegmentWriter(s.manager)
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	src := NewLineSource(r)
	for src.Next() {
		lineNo, line := src.Line(), src.Text()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("split stopped before line %d: %w", lineNo, ctxErr)
		}
		res.LinesRead++

		kind := Classify(line)
		if kind == KindHeader {
			res.HeaderLines++
			if err := s.switchSegment(writer, &res, lineNo, line); err != nil {
				return res, err
			}
			continue
		}

		if _, open := writer.Current(); !open {
			warning := OrderingWarning{Line: lineNo, Text: line}
			res.LinesSkipped++
			res.Warnings = append(res.Warnings, warning)
			s.log.Warn().Int("line", lineNo).Str("text", line).Msg("content before first entry header skipped")
			continue
		}

		out := line
		if kind == KindPhoto {
			out = RewritePhoto(PhotoToken(line))
			res.Photos++
		}
		if err := writer.WriteLine(out); err != nil {
			return res, atLine(err, lineNo)
		}
		res.LinesWritten++
	}

	if err := src.Err(); err != nil {
		return res, fmt.Errorf("read export after line %d: %w", src.Line(), err)
	}
	return res, writer.Close()
}

func (s *Splitter) switchSegment(writer *SegmentWriter, res *Result, lineNo int, line string) error {
	date, err := s.parse(HeaderPayload(line))
	if err != nil {
		return &DateParseError{Line: lineNo, Text: line, Err: err}
	}

	opened, err := writer.Switch(date)
	if err != nil {
		return atLine(err, lineNo)
	}
	if !opened {
		return nil
	}

	if slices.Contains(res.Opened, date) {
		s.log.Warn().
			Int("line", lineNo).
			Str("date", date.String()).
			Str("path", writer.Path()).
			Msg("date reappears out of order; earlier entries for this day are replaced")
	}
	res.Opened = append(res.Opened, date)
	s.log.Debug().
		Int("line", lineNo).
		Str("date", date.String()).
		Str("path", writer.Path()).
		Msg("segment opened")
	return nil
}

// atLine stamps the input line number onto segment errors.
func atLine(err error, line int) error {
	var dirErr *DirectoryCreateError
	if errors.As(err, &dirErr) {
		dirErr.Line = line
		return dirErr
	}
	var writeErr *WriteError
	if errors.As(err, &writeErr) {
		writeErr.Line = line
		return writeErr
	}
	return err
}
