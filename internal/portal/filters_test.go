package portal

import (
	"testing"
	"time"
)

func TestFilterAssignments(t *testing.T) {
	all := DemoDataset().Records.Assignments

	pending := FilterAssignments(all, AssignmentFilter{Status: "pending"})
	if len(pending) != 2 || pending[0].ID != 1 || pending[1].ID != 4 {
		t.Fatalf("pending filter = %+v", pending)
	}
	if got := FilterAssignments(all, AssignmentFilter{Status: All}); len(got) != len(all) {
		t.Fatalf("all filter returned %d, want %d", len(got), len(all))
	}
	cloud := FilterAssignments(all, AssignmentFilter{Search: "CLOUD"})
	if len(cloud) != 1 || cloud[0].ID != 2 {
		t.Fatalf("search filter = %+v", cloud)
	}

	sum := SummarizeAssignments(all)
	if sum != (AssignmentSummary{Total: 5, Pending: 2, Submitted: 2, Overdue: 1}) {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2023, 10, 10, 15, 0, 0, 0, time.UTC)
	if days, ok := DaysRemaining("2023-10-15", now); !ok || days != 5 {
		t.Fatalf("future due = %d, %v", days, ok)
	}
	if days, ok := DaysRemaining("2023-10-05", now); !ok || days != -5 {
		t.Fatalf("past due = %d, %v", days, ok)
	}
	if _, ok := DaysRemaining("15/10/2023", now); ok {
		t.Fatalf("expected malformed date to be rejected")
	}
}

func TestTransactionsAndFees(t *testing.T) {
	rec := DemoDataset().Records

	got := FilterTransactions(rec.Transactions, TransactionFilter{Search: "installment 2"})
	if len(got) != 1 || got[0].TransactionID != "186636_X9T72nRku0yC4Jo3hh" {
		t.Fatalf("search = %+v", got)
	}
	if got := FilterTransactions(rec.Transactions, TransactionFilter{Status: "failed"}); len(got) != 0 {
		t.Fatalf("failed filter = %+v", got)
	}

	ts := SummarizeTransactions(rec.Transactions)
	if ts.Count != 2 || ts.Successful != 2 || ts.TotalAmount != 50340 || ts.SuccessRate != 100 {
		t.Fatalf("transaction summary = %+v", ts)
	}

	fs := SummarizeFees(rec.FeeSchedule)
	want := FeeSummary{Total: 100680, Paid: 50340, Pending: 50340, PaidInstallments: 2, Installments: 4}
	if fs != want {
		t.Fatalf("fee summary = %+v, want %+v", fs, want)
	}
}

func TestFeedbackFilterAndStats(t *testing.T) {
	all := DemoDataset().Feedback

	if got := FilterFeedback(all, FeedbackFilter{Search: "sharma"}); len(got) != 1 || got[0].Subject != "Operating Systems" {
		t.Fatalf("search = %+v", got)
	}
	if got := FilterFeedback(all, FeedbackFilter{Subject: "Cloud Computing"}); len(got) != 1 {
		t.Fatalf("subject filter = %+v", got)
	}

	stats := SummarizeFeedback(all)
	if stats != (FeedbackStats{Count: 5, AverageRating: 4.2, FiveStar: 2, WithComments: 5}) {
		t.Fatalf("stats = %+v", stats)
	}
	if empty := SummarizeFeedback(nil); empty.AverageRating != 0 {
		t.Fatalf("empty stats = %+v", empty)
	}
}

func TestLectures(t *testing.T) {
	subjects := DemoDataset().Records.Subjects

	all := FilterLectures(subjects, LectureFilter{})
	if len(all) != 3 {
		t.Fatalf("lectures = %d, want 3", len(all))
	}
	if all[0].SubjectCode != "UGCA 1931" || all[0].Faculty != "PARIKA JAIRATH" {
		t.Fatalf("first lecture = %+v", all[0])
	}
	if sum := SummarizeLectures(all); sum != (LectureSummary{Total: 3, PDF: 2, Documents: 1}) {
		t.Fatalf("summary = %+v", sum)
	}
	if got := FilterLectures(subjects, LectureFilter{SubjectCode: "UGCA 1936"}); len(got) != 1 {
		t.Fatalf("subject filter = %+v", got)
	}
	if got := FilterLectures(subjects, LectureFilter{Search: "mining"}); len(got) != 2 {
		t.Fatalf("search by subject name = %+v", got)
	}
}

func TestUpdatesAndUndertakings(t *testing.T) {
	ds := DemoDataset()

	counts := CountUpdates(ds.Records.Updates)
	if counts["info"] != 3 || counts["success"] != 2 || counts["warning"] != 2 || counts["error"] != 1 {
		t.Fatalf("counts = %v", counts)
	}
	if got := FilterUpdates(ds.Records.Updates, UpdateFilter{Type: "warning"}); len(got) != 2 {
		t.Fatalf("type filter = %+v", got)
	}
	if got := FilterUpdates(ds.Records.Updates, UpdateFilter{Search: "placement"}); len(got) != 1 || got[0].ID != 6 {
		t.Fatalf("search = %+v", got)
	}

	if got := FilterUndertakings(ds.Undertakings, "approved"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("status filter = %+v", got)
	}
	if sum := SummarizeUndertakings(ds.Undertakings); sum != (UndertakingSummary{Total: 3, Pending: 1, Approved: 1, Rejected: 1}) {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestAttendanceByMonth(t *testing.T) {
	all := DemoDataset().Records.Attendance

	if got := FilterAttendance(all, "jul"); len(got) != 2 {
		t.Fatalf("july = %d, want 2", len(got))
	}
	if got := FilterAttendance(all, "Aug"); len(got) != 0 {
		t.Fatalf("august = %d, want 0", len(got))
	}
	sum := SummarizeAttendance(FilterAttendance(all, All))
	if sum != (AttendanceSummary{Total: 2, Present: 1, Absent: 1, Percentage: 50}) {
		t.Fatalf("summary = %+v", sum)
	}
}
