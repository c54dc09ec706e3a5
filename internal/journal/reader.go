package journal

import (
	"context"
	"errors"
	"io/fs"

	"github.com/faizmokh/daysplit/internal/calendar"
	"github.com/faizmokh/daysplit/internal/files"
)

// Reader loads day files produced by a Splitter.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Day returns the stored journal for the provided date.
func (r *Reader) Day(ctx context.Context, date calendar.Date) (Day, error) {
	if r == nil || r.manager == nil {
		return Day{}, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return Day{}, err
	}

	data, err := r.manager.ReadDay(date)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Day{}, ErrDayNotFound
		}
		return Day{}, err
	}

	return Day{
		Date:    date,
		Path:    r.manager.DayPath(date),
		Content: string(data),
	}, nil
}

// Days lists every date with a day file, oldest first.
func (r *Reader) Days(ctx context.Context) ([]calendar.Date, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.manager.ListDays()
}

// DaysBetween returns the stored dates between start and end, inclusive. A
// zero start or end leaves that side open.
func (r *Reader) DaysBetween(ctx context.Context, start, end calendar.Date) ([]calendar.Date, error) {
	days, err := r.Days(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []calendar.Date
	for _, d := range days {
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if !end.IsZero() && end.Before(d) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered, nil
}
