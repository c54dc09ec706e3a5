package journal

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/daysplit/internal/calendar"
)

func TestSegmentWriterLifecycle(t *testing.T) {
	mgr := newTestManager(t)
	w := NewSegmentWriter(mgr)

	if _, open := w.Current(); open {
		t.Fatalf("new writer should be idle")
	}
	if err := w.WriteLine("orphan"); !errors.Is(err, ErrNoSegment) {
		t.Fatalf("WriteLine while idle error = %v, want ErrNoSegment", err)
	}

	d1 := calendar.Date{Year: 2005, Month: time.February, Day: 14}
	d2 := calendar.Date{Year: 2005, Month: time.February, Day: 15}

	opened, err := w.Switch(d1)
	if err != nil || !opened {
		t.Fatalf("Switch(d1) = %v, %v", opened, err)
	}
	if w.Path() != mgr.DayPath(d1) {
		t.Fatalf("Path() = %q, want %q", w.Path(), mgr.DayPath(d1))
	}
	if err := w.WriteLine("one"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}

	opened, err = w.Switch(d1)
	if err != nil || opened {
		t.Fatalf("Switch to the open date = %v, %v; want no-op", opened, err)
	}

	if _, err := w.Switch(d2); err != nil {
		t.Fatalf("Switch(d2): %v", err)
	}
	// d1 is closed and flushed as soon as d2 opens.
	data, err := os.ReadFile(mgr.DayPath(d1))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "one\n" {
		t.Fatalf("d1 contents = %q, want %q", data, "one\n")
	}

	if err := w.WriteLine("two"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, open := w.Current(); open {
		t.Fatalf("writer should be idle after Close")
	}

	data, err = os.ReadFile(mgr.DayPath(d2))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "two\n" {
		t.Fatalf("d2 contents = %q, want %q", data, "two\n")
	}
}

func TestLineSource(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	src := NewLineSource(strings.NewReader("first\r\n\n" + long + "\nlast"))

	var got []string
	for src.Next() {
		got = append(got, src.Text())
	}
	if err := src.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	want := []string{"first", "", long, "last"}
	if len(got) != len(want) {
		t.Fatalf("read %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %.20q, want %.20q", i+1, got[i], want[i])
		}
	}
	if src.Line() != 4 {
		t.Fatalf("Line() = %d, want 4", src.Line())
	}
	if src.Next() {
		t.Fatalf("Next() after EOF returned true")
	}
}
