package portal

import (
	"context"
	"errors"

	"feebank/internal/models"
)

var ErrStudentNotFound = errors.New("student not found")

// Records is the read-only part of a student's portal data.
type Records struct {
	Student      models.Student             `json:"student"`
	FeeSchedule  []models.FeeInstallment    `json:"fee_schedule"`
	Transactions []models.Transaction       `json:"transactions"`
	Attendance   []models.Attendance        `json:"attendance"`
	Performance  models.AcademicPerformance `json:"performance"`
	Subjects     []models.Subject           `json:"subjects"`
	Timetable    []models.TimetableEntry    `json:"timetable"`
	Upcoming     []models.UpcomingClass     `json:"upcoming_classes"`
	Updates      []models.Update            `json:"updates"`
	Assignments  []models.Assignment        `json:"assignments"`
}

// Dataset is everything the portal knows about one student.
type Dataset struct {
	Records      Records
	Feedback     []models.Feedback
	Undertakings []models.AttendanceUndertaking
}

// Source supplies portal data. Records never change once loaded; feedback and
// undertakings grow through student submissions.
type Source interface {
	Records(ctx context.Context, studentID string) (*Records, error)
	Feedback(ctx context.Context, studentID string) ([]models.Feedback, error)
	AddFeedback(ctx context.Context, studentID string, fb models.Feedback) error
	Undertakings(ctx context.Context, studentID string) ([]models.AttendanceUndertaking, error)
	// AddUndertaking stores u and assigns its ID.
	AddUndertaking(ctx context.Context, u *models.AttendanceUndertaking) error
}
