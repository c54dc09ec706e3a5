package cli

import (
	"github.com/faizmokh/daysplit/internal/calendar"
)

func resolveDate(dateFlag string) (calendar.Date, error) {
	if dateFlag == "" {
		return calendar.Today(), nil
	}
	return calendar.ParseISO(dateFlag)
}

func resolveOptionalDate(dateFlag string) (calendar.Date, error) {
	if dateFlag == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseISO(dateFlag)
}

func plural(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}
