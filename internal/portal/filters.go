package portal

import (
	"math"
	"strings"
	"time"

	"feebank/internal/models"
)

// All selects every record in a status, type or month filter.
const All = "all"

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func selects(filter, value string) bool {
	return filter == "" || strings.EqualFold(filter, All) || strings.EqualFold(filter, value)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type AssignmentFilter struct {
	Status string
	Search string
}

func FilterAssignments(in []models.Assignment, f AssignmentFilter) []models.Assignment {
	out := []models.Assignment{}
	for _, a := range in {
		if !selects(f.Status, string(a.Status)) {
			continue
		}
		if f.Search != "" && !containsFold(a.Title, f.Search) && !containsFold(a.Subject, f.Search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

type AssignmentSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Submitted int `json:"submitted"`
	Overdue   int `json:"overdue"`
}

func SummarizeAssignments(in []models.Assignment) AssignmentSummary {
	s := AssignmentSummary{Total: len(in)}
	for _, a := range in {
		switch a.Status {
		case models.AssignmentPending:
			s.Pending++
		case models.AssignmentSubmitted:
			s.Submitted++
		case models.AssignmentOverdue:
			s.Overdue++
		}
	}
	return s
}

// DaysRemaining counts calendar days from now until due (2006-01-02).
// Past due dates give a negative count.
func DaysRemaining(due string, now time.Time) (int, bool) {
	d, err := time.ParseInLocation("2006-01-02", due, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(d.Sub(today).Hours() / 24)), true
}

type TransactionFilter struct {
	Status string
	Search string
}

func FilterTransactions(in []models.Transaction, f TransactionFilter) []models.Transaction {
	out := []models.Transaction{}
	for _, t := range in {
		if !selects(f.Status, t.TransactionDetails.Status) {
			continue
		}
		if f.Search != "" && !containsFold(t.TransactionID, f.Search) &&
			!containsFold(t.TransactionDetails.Description, f.Search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

type TransactionSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	Successful  int     `json:"successful"`
	Failed      int     `json:"failed"`
	Pending     int     `json:"pending"`
	SuccessRate float64 `json:"success_rate"`
}

func SummarizeTransactions(in []models.Transaction) TransactionSummary {
	s := TransactionSummary{Count: len(in)}
	for _, t := range in {
		switch strings.ToLower(t.TransactionDetails.Status) {
		case "success":
			s.Successful++
			s.TotalAmount += t.TransactionDetails.Amount
		case "failed":
			s.Failed++
		case "pending":
			s.Pending++
		}
	}
	if s.Count > 0 {
		s.SuccessRate = round1(float64(s.Successful) * 100 / float64(s.Count))
	}
	return s
}

type FeeSummary struct {
	Total            float64 `json:"total"`
	Paid             float64 `json:"paid"`
	Pending          float64 `json:"pending"`
	PaidInstallments int     `json:"paid_installments"`
	Installments     int     `json:"installments"`
}

func SummarizeFees(in []models.FeeInstallment) FeeSummary {
	s := FeeSummary{Installments: len(in)}
	for _, f := range in {
		s.Total += f.Amount
		if f.Status == models.FeePaid {
			s.Paid += f.Amount
			s.PaidInstallments++
		}
	}
	s.Pending = s.Total - s.Paid
	return s
}

type FeedbackFilter struct {
	Subject string
	Search  string
}

func FilterFeedback(in []models.Feedback, f FeedbackFilter) []models.Feedback {
	out := []models.Feedback{}
	for _, fb := range in {
		if !selects(f.Subject, fb.Subject) {
			continue
		}
		if f.Search != "" && !containsFold(fb.Subject, f.Search) && !containsFold(fb.Faculty, f.Search) {
			continue
		}
		out = append(out, fb)
	}
	return out
}

type FeedbackStats struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
	FiveStar      int     `json:"five_star"`
	WithComments  int     `json:"with_comments"`
}

func SummarizeFeedback(in []models.Feedback) FeedbackStats {
	s := FeedbackStats{Count: len(in)}
	total := 0
	for _, fb := range in {
		total += fb.Rating
		if fb.Rating == 5 {
			s.FiveStar++
		}
		if strings.TrimSpace(fb.Comments) != "" {
			s.WithComments++
		}
	}
	if s.Count > 0 {
		s.AverageRating = round1(float64(total) / float64(s.Count))
	}
	return s
}

// Lecture is one downloadable resource with the subject it belongs to.
type Lecture struct {
	models.Resource
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Faculty     string `json:"faculty"`
}

type LectureFilter struct {
	SubjectCode string
	Search      string
}

func FilterLectures(subjects []models.Subject, f LectureFilter) []Lecture {
	out := []Lecture{}
	for _, sub := range subjects {
		if !selects(f.SubjectCode, sub.SubjectCode) {
			continue
		}
		for _, r := range sub.Resources {
			if f.Search != "" && !containsFold(r.Title, f.Search) && !containsFold(sub.SubjectName, f.Search) {
				continue
			}
			out = append(out, Lecture{
				Resource:    r,
				SubjectCode: sub.SubjectCode,
				SubjectName: sub.SubjectName,
				Faculty:     sub.Faculty.Name,
			})
		}
	}
	return out
}

type LectureSummary struct {
	Total     int `json:"total"`
	PDF       int `json:"pdf"`
	Video     int `json:"video"`
	Documents int `json:"documents"`
}

func SummarizeLectures(in []Lecture) LectureSummary {
	s := LectureSummary{Total: len(in)}
	for _, l := range in {
		switch strings.ToLower(l.Type) {
		case "pdf":
			s.PDF++
		case "mp4":
			s.Video++
		case "pptx", "docx":
			s.Documents++
		}
	}
	return s
}

type UpdateFilter struct {
	Type   string
	Search string
}

func FilterUpdates(in []models.Update, f UpdateFilter) []models.Update {
	out := []models.Update{}
	for _, u := range in {
		if !selects(f.Type, u.Type) {
			continue
		}
		if f.Search != "" && !containsFold(u.Title, f.Search) && !containsFold(u.Message, f.Search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// CountUpdates counts updates per type.
func CountUpdates(in []models.Update) map[string]int {
	counts := map[string]int{"info": 0, "success": 0, "warning": 0, "error": 0}
	for _, u := range in {
		counts[u.Type]++
	}
	return counts
}

func FilterUndertakings(in []models.AttendanceUndertaking, status string) []models.AttendanceUndertaking {
	out := []models.AttendanceUndertaking{}
	for _, u := range in {
		if selects(status, string(u.Status)) {
			out = append(out, u)
		}
	}
	return out
}

type UndertakingSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func SummarizeUndertakings(in []models.AttendanceUndertaking) UndertakingSummary {
	s := UndertakingSummary{Total: len(in)}
	for _, u := range in {
		switch u.Status {
		case models.UndertakingPending:
			s.Pending++
		case models.UndertakingApproved:
			s.Approved++
		case models.UndertakingRejected:
			s.Rejected++
		}
	}
	return s
}

// FilterAttendance keeps records whose session date (02-Jan-2006) falls in
// month, given as a three letter name such as "Jul". Records with an
// unparseable date only survive the "all" filter.
func FilterAttendance(in []models.Attendance, month string) []models.Attendance {
	out := []models.Attendance{}
	for _, a := range in {
		if month == "" || strings.EqualFold(month, All) {
			out = append(out, a)
			continue
		}
		d, err := time.Parse("02-Jan-2006", a.SessionDetails.Date)
		if err != nil {
			continue
		}
		if strings.EqualFold(d.Month().String()[:3], month) {
			out = append(out, a)
		}
	}
	return out
}

type AttendanceSummary struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

func SummarizeAttendance(in []models.Attendance) AttendanceSummary {
	s := AttendanceSummary{Total: len(in)}
	for _, a := range in {
		if strings.EqualFold(a.AttendanceStatus.Status, "P") {
			s.Present++
		} else {
			s.Absent++
		}
	}
	if s.Total > 0 {
		s.Percentage = round1(float64(s.Present) * 100 / float64(s.Total))
	}
	return s
}
