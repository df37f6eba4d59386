package portal

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestWeekDatesStartOnMonday(t *testing.T) {
	cases := []struct {
		now    time.Time
		offset int
		monday string
	}{
		{day(2025, time.October, 10), 0, "2025-10-06"},
		{day(2025, time.October, 12), 0, "2025-10-06"},
		{day(2025, time.October, 6), 0, "2025-10-06"},
		{day(2025, time.October, 10), 1, "2025-10-13"},
		{day(2025, time.October, 10), -1, "2025-09-29"},
	}
	for _, tc := range cases {
		week := WeekDates(tc.now, tc.offset)
		if len(week) != 7 {
			t.Fatalf("week has %d days", len(week))
		}
		if got := week[0].Format(isoDate); got != tc.monday {
			t.Errorf("WeekDates(%s, %d)[0] = %s, want %s", tc.now.Format(isoDate), tc.offset, got, tc.monday)
		}
		if week[0].Weekday() != time.Monday || week[6].Weekday() != time.Sunday {
			t.Errorf("week runs %s..%s", week[0].Weekday(), week[6].Weekday())
		}
	}
}

func TestClassesForDate(t *testing.T) {
	entries := DemoDataset().Records.Timetable

	if got := ClassesForDate(entries, day(2025, time.October, 10)); len(got) != 4 {
		t.Fatalf("exact date = %d classes, want 4", len(got))
	}
	// a later Friday matches on the weekday name
	if got := ClassesForDate(entries, day(2025, time.October, 17)); len(got) != 4 {
		t.Fatalf("weekday match = %d classes, want 4", len(got))
	}
	if got := ClassesForDate(entries, day(2025, time.October, 11)); len(got) != 2 {
		t.Fatalf("saturday = %d classes, want 2", len(got))
	}
	got := ClassesForDate(entries, day(2025, time.October, 13))
	if got == nil || len(got) != 0 {
		t.Fatalf("monday = %v, want empty slice", got)
	}
}

func TestWeekMarksToday(t *testing.T) {
	entries := DemoDataset().Records.Timetable
	now := day(2025, time.October, 10)

	week := Week(entries, now, 0)
	today := 0
	for _, d := range week {
		if d.IsToday {
			today++
			if d.Date != "2025-10-10" || len(d.Classes) != 4 {
				t.Fatalf("today = %+v", d)
			}
		}
	}
	if today != 1 {
		t.Fatalf("%d days marked today", today)
	}
	for _, d := range Week(entries, now, 1) {
		if d.IsToday {
			t.Fatalf("next week should not contain today")
		}
	}
	if td := Today(entries, now); td.Day != "Friday" || len(td.Classes) != 4 {
		t.Fatalf("Today = %+v", td)
	}
}
