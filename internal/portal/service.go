package portal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"feebank/internal/models"
)

// recentUpdates is how many updates the dashboard shows.
const recentUpdates = 3

type studentChecker interface {
	KnownStudent(ctx context.Context, studentID string) (bool, error)
}

// Service builds the dashboard views for a student. Read-only records are
// loaded once per student and cached.
type Service struct {
	source Source
	log    *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	loaders map[string]*Loader[*Records]
}

func NewService(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:  source,
		log:     logger,
		now:     time.Now,
		loaders: make(map[string]*Loader[*Records]),
	}
}

func (s *Service) loader(studentID string) *Loader[*Records] {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.loaders[studentID]
	if !ok {
		l = NewLoader(func(ctx context.Context) (*Records, error) {
			return s.source.Records(ctx, studentID)
		})
		s.loaders[studentID] = l
	}
	return l
}

func (s *Service) records(ctx context.Context, studentID string) (*Records, error) {
	rec, err := s.loader(studentID).Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrStudentNotFound) {
			s.log.Warn("load portal records failed", zap.String("student_id", studentID), zap.Error(err))
		}
		return nil, err
	}
	return rec, nil
}

// LoadState reports the state of the records cache for studentID.
func (s *Service) LoadState(studentID string) LoadState {
	return s.loader(studentID).State()
}

// Refresh drops the cached records of studentID.
func (s *Service) Refresh(studentID string) {
	s.loader(studentID).Reset()
}

// KnownStudent reports whether the source holds data for studentID.
func (s *Service) KnownStudent(ctx context.Context, studentID string) bool {
	if checker, ok := s.source.(studentChecker); ok {
		known, err := checker.KnownStudent(ctx, studentID)
		if err != nil {
			s.log.Warn("student lookup failed", zap.String("student_id", studentID), zap.Error(err))
			return false
		}
		return known
	}
	_, err := s.source.Records(ctx, studentID)
	return err == nil
}

type Dashboard struct {
	Student     models.Student             `json:"student"`
	Fees        FeeSummary                 `json:"fees"`
	Performance models.AcademicPerformance `json:"performance"`
	Assignments AssignmentSummary          `json:"assignments"`
	Today       DaySchedule                `json:"today"`
	Upcoming    []models.UpcomingClass     `json:"upcoming_classes"`
	Updates     []models.Update            `json:"recent_updates"`
}

func (s *Service) Dashboard(ctx context.Context, studentID string) (*Dashboard, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	updates := rec.Updates
	if len(updates) > recentUpdates {
		updates = updates[:recentUpdates]
	}
	return &Dashboard{
		Student:     rec.Student,
		Fees:        SummarizeFees(rec.FeeSchedule),
		Performance: rec.Performance,
		Assignments: SummarizeAssignments(rec.Assignments),
		Today:       Today(rec.Timetable, s.now()),
		Upcoming:    rec.Upcoming,
		Updates:     append([]models.Update{}, updates...),
	}, nil
}

func (s *Service) Student(ctx context.Context, studentID string) (*models.Student, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	student := rec.Student
	return &student, nil
}

type FeesView struct {
	Schedule []models.FeeInstallment `json:"schedule"`
	Summary  FeeSummary              `json:"summary"`
}

func (s *Service) Fees(ctx context.Context, studentID string) (*FeesView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &FeesView{
		Schedule: append([]models.FeeInstallment{}, rec.FeeSchedule...),
		Summary:  SummarizeFees(rec.FeeSchedule),
	}, nil
}

type TransactionsView struct {
	Transactions []models.Transaction `json:"transactions"`
	Summary      TransactionSummary   `json:"summary"`
}

func (s *Service) Transactions(ctx context.Context, studentID string, f TransactionFilter) (*TransactionsView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &TransactionsView{
		Transactions: FilterTransactions(rec.Transactions, f),
		Summary:      SummarizeTransactions(rec.Transactions),
	}, nil
}

type AttendanceView struct {
	Month       string                     `json:"month"`
	Records     []models.Attendance        `json:"records"`
	Summary     AttendanceSummary          `json:"summary"`
	Performance models.AcademicPerformance `json:"performance"`
}

func (s *Service) Attendance(ctx context.Context, studentID, month string) (*AttendanceView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if month == "" {
		month = All
	}
	filtered := FilterAttendance(rec.Attendance, month)
	return &AttendanceView{
		Month:       month,
		Records:     filtered,
		Summary:     SummarizeAttendance(filtered),
		Performance: rec.Performance,
	}, nil
}

type TimetableView struct {
	Offset   int                    `json:"week_offset"`
	Week     []DaySchedule          `json:"week"`
	Today    DaySchedule            `json:"today"`
	Upcoming []models.UpcomingClass `json:"upcoming_classes"`
}

func (s *Service) Timetable(ctx context.Context, studentID string, offset int) (*TimetableView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &TimetableView{
		Offset:   offset,
		Week:     Week(rec.Timetable, now, offset),
		Today:    Today(rec.Timetable, now),
		Upcoming: append([]models.UpcomingClass{}, rec.Upcoming...),
	}, nil
}

type SubjectRef struct {
	Code string `json:"subject_code"`
	Name string `json:"subject_name"`
}

type LecturesView struct {
	Subjects []SubjectRef   `json:"subjects"`
	Lectures []Lecture      `json:"lectures"`
	Summary  LectureSummary `json:"summary"`
}

func (s *Service) Lectures(ctx context.Context, studentID string, f LectureFilter) (*LecturesView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	subjects := make([]SubjectRef, 0, len(rec.Subjects))
	for _, sub := range rec.Subjects {
		subjects = append(subjects, SubjectRef{Code: sub.SubjectCode, Name: sub.SubjectName})
	}
	return &LecturesView{
		Subjects: subjects,
		Lectures: FilterLectures(rec.Subjects, f),
		Summary:  SummarizeLectures(FilterLectures(rec.Subjects, LectureFilter{})),
	}, nil
}

type AssignmentItem struct {
	models.Assignment
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

type AssignmentsView struct {
	Assignments []AssignmentItem  `json:"assignments"`
	Summary     AssignmentSummary `json:"summary"`
}

func (s *Service) Assignments(ctx context.Context, studentID string, f AssignmentFilter) (*AssignmentsView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	filtered := FilterAssignments(rec.Assignments, f)
	items := make([]AssignmentItem, 0, len(filtered))
	for _, a := range filtered {
		item := AssignmentItem{Assignment: a}
		if a.Status == models.AssignmentPending {
			if days, ok := DaysRemaining(a.DueDate, now); ok {
				item.DaysRemaining = &days
			}
		}
		items = append(items, item)
	}
	return &AssignmentsView{
		Assignments: items,
		Summary:     SummarizeAssignments(rec.Assignments),
	}, nil
}

type UpdatesView struct {
	Updates []models.Update `json:"updates"`
	Counts  map[string]int  `json:"counts"`
}

func (s *Service) Updates(ctx context.Context, studentID string, f UpdateFilter) (*UpdatesView, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &UpdatesView{
		Updates: FilterUpdates(rec.Updates, f),
		Counts:  CountUpdates(rec.Updates),
	}, nil
}

type FeedbackView struct {
	Feedback []models.Feedback `json:"feedback"`
	Stats    FeedbackStats     `json:"stats"`
}

func (s *Service) Feedback(ctx context.Context, studentID string, f FeedbackFilter) (*FeedbackView, error) {
	if _, err := s.records(ctx, studentID); err != nil {
		return nil, err
	}
	all, err := s.source.Feedback(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &FeedbackView{
		Feedback: FilterFeedback(all, f),
		Stats:    SummarizeFeedback(all),
	}, nil
}

type UndertakingsView struct {
	Undertakings []models.AttendanceUndertaking `json:"undertakings"`
	Summary      UndertakingSummary             `json:"summary"`
}

func (s *Service) Undertakings(ctx context.Context, studentID, status string) (*UndertakingsView, error) {
	if _, err := s.records(ctx, studentID); err != nil {
		return nil, err
	}
	all, err := s.source.Undertakings(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &UndertakingsView{
		Undertakings: FilterUndertakings(all, status),
		Summary:      SummarizeUndertakings(all),
	}, nil
}

// SubmitFeedback validates and stores a feedback entry.
func (s *Service) SubmitFeedback(ctx context.Context, studentID string, fb models.Feedback) (*models.Feedback, error) {
	if _, err := s.records(ctx, studentID); err != nil {
		return nil, err
	}
	fb.Semester = strings.TrimSpace(fb.Semester)
	fb.Subject = strings.TrimSpace(fb.Subject)
	fb.Faculty = strings.TrimSpace(fb.Faculty)
	fb.Comments = strings.TrimSpace(fb.Comments)
	fb.Suggestions = strings.TrimSpace(fb.Suggestions)
	if err := validateStruct(fb); err != nil {
		return nil, err
	}
	if err := s.source.AddFeedback(ctx, studentID, fb); err != nil {
		return nil, err
	}
	s.log.Info("feedback submitted", zap.String("student_id", studentID), zap.String("subject", fb.Subject))
	return &fb, nil
}

// SubmitUndertaking validates and stores a new attendance undertaking. The
// student fields, submission date and pending status are filled in here.
func (s *Service) SubmitUndertaking(ctx context.Context, studentID string, u models.AttendanceUndertaking) (*models.AttendanceUndertaking, error) {
	rec, err := s.records(ctx, studentID)
	if err != nil {
		return nil, err
	}
	u.ID = 0
	u.StudentID = studentID
	u.StudentName = rec.Student.PersonalInfo.Name
	u.Semester = strings.TrimSpace(u.Semester)
	u.Subject = strings.TrimSpace(u.Subject)
	u.FromDate = strings.TrimSpace(u.FromDate)
	u.ToDate = strings.TrimSpace(u.ToDate)
	u.Reason = strings.TrimSpace(u.Reason)
	u.SubmissionDate = s.now().Format(isoDate)
	u.Status = models.UndertakingPending
	u.Remarks = nil
	u.DocumentURL = nil
	if err := validateStruct(u); err != nil {
		return nil, err
	}
	if err := s.source.AddUndertaking(ctx, &u); err != nil {
		return nil, err
	}
	s.log.Info("attendance undertaking submitted", zap.String("student_id", studentID), zap.Int("id", u.ID))
	return &u, nil
}
