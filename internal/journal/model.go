package journal

import "github.com/faizmokh/daysplit/internal/calendar"

// LineKind categorizes a line of the export.
type LineKind uint8

const (
	// KindPlain is entry body text, copied through verbatim.
	KindPlain LineKind = iota
	// KindHeader starts a new entry and carries its timestamp.
	KindHeader
	// KindPhoto references an attached image by filename.
	KindPhoto
)

func (k LineKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindPhoto:
		return "photo"
	default:
		return "plain"
	}
}

// Result summarizes one split run.
type Result struct {
	LinesRead    int
	HeaderLines  int
	LinesWritten int
	LinesSkipped int
	Photos       int

	// Opened lists every segment open in order, including reopenings of a
	// date seen earlier in the export.
	Opened []calendar.Date

	Warnings []OrderingWarning
}

// Days returns the distinct dates written, in first-seen order.
func (r Result) Days() []calendar.Date {
	seen := make(map[calendar.Date]struct{}, len(r.Opened))
	var days []calendar.Date
	for _, d := range r.Opened {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return days
}

// Day is the stored content of one split file.
type Day struct {
	Date    calendar.Date
	Path    string
	Content string
}
