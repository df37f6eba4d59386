package portal

import (
	"strings"
	"time"

	"feebank/internal/models"
)

const isoDate = "2006-01-02"

// WeekDates returns the seven days of the Monday-based week containing now,
// shifted by offset weeks.
func WeekDates(now time.Time, offset int) []time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Sunday belongs to the week that started six days earlier
	back := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -back+7*offset)
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// ClassesForDate returns the classes of the first timetable entry whose ISO
// date or weekday name matches date.
func ClassesForDate(entries []models.TimetableEntry, date time.Time) []models.ClassSlot {
	iso := date.Format(isoDate)
	weekday := date.Weekday().String()
	for _, e := range entries {
		if e.Date == iso || strings.EqualFold(e.DayOfWeek, weekday) {
			out := make([]models.ClassSlot, len(e.Classes))
			copy(out, e.Classes)
			return out
		}
	}
	return []models.ClassSlot{}
}

type DaySchedule struct {
	Date    string             `json:"date"`
	Day     string             `json:"day"`
	IsToday bool               `json:"is_today"`
	Classes []models.ClassSlot `json:"classes"`
}

// Week lays the timetable over the week selected by offset.
func Week(entries []models.TimetableEntry, now time.Time, offset int) []DaySchedule {
	today := now.Format(isoDate)
	days := WeekDates(now, offset)
	out := make([]DaySchedule, 0, len(days))
	for _, d := range days {
		iso := d.Format(isoDate)
		out = append(out, DaySchedule{
			Date:    iso,
			Day:     d.Weekday().String(),
			IsToday: iso == today,
			Classes: ClassesForDate(entries, d),
		})
	}
	return out
}

// Today returns the schedule for the current day.
func Today(entries []models.TimetableEntry, now time.Time) DaySchedule {
	return DaySchedule{
		Date:    now.Format(isoDate),
		Day:     now.Weekday().String(),
		IsToday: true,
		Classes: ClassesForDate(entries, now),
	}
}
