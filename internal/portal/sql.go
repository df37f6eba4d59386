package portal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feebank/internal/models"
)

const (
	kindStudent     = "student"
	kindFee         = "fee_installment"
	kindTransaction = "transaction"
	kindAttendance  = "attendance"
	kindPerformance = "performance"
	kindSubject     = "subject"
	kindTimetable   = "timetable"
	kindUpcoming    = "upcoming_class"
	kindUpdate      = "update"
	kindAssignment  = "assignment"
)

// SQLSource reads portal data from the tables created by storage.Migrate.
// Read-only records are stored as JSON payloads keyed by kind and position.
type SQLSource struct {
	db *sql.DB
}

func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

type recordRow struct {
	kind    string
	seq     int
	payload any
}

func datasetRows(rec *Records) []recordRow {
	rows := []recordRow{
		{kind: kindStudent, payload: rec.Student},
		{kind: kindPerformance, payload: rec.Performance},
	}
	for i, v := range rec.FeeSchedule {
		rows = append(rows, recordRow{kindFee, i, v})
	}
	for i, v := range rec.Transactions {
		rows = append(rows, recordRow{kindTransaction, i, v})
	}
	for i, v := range rec.Attendance {
		rows = append(rows, recordRow{kindAttendance, i, v})
	}
	for i, v := range rec.Subjects {
		rows = append(rows, recordRow{kindSubject, i, v})
	}
	for i, v := range rec.Timetable {
		rows = append(rows, recordRow{kindTimetable, i, v})
	}
	for i, v := range rec.Upcoming {
		rows = append(rows, recordRow{kindUpcoming, i, v})
	}
	for i, v := range rec.Updates {
		rows = append(rows, recordRow{kindUpdate, i, v})
	}
	for i, v := range rec.Assignments {
		rows = append(rows, recordRow{kindAssignment, i, v})
	}
	return rows
}

// Seed stores ds when the database holds no records for its student yet.
// It reports whether anything was written.
func (s *SQLSource) Seed(ctx context.Context, ds *Dataset) (bool, error) {
	studentID := ds.Records.Student.StudentID
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM portal_records WHERE student_id = ?`, studentID).Scan(&count); err != nil {
		return false, fmt.Errorf("count portal records: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, row := range datasetRows(&ds.Records) {
		payload, err := json.Marshal(row.payload)
		if err != nil {
			return false, fmt.Errorf("encode %s record: %w", row.kind, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO portal_records (kind, student_id, seq, payload) VALUES (?, ?, ?, ?)`,
			row.kind, studentID, row.seq, string(payload)); err != nil {
			return false, fmt.Errorf("insert %s record: %w", row.kind, err)
		}
	}
	now := time.Now().UTC()
	for _, fb := range ds.Feedback {
		if err := insertFeedback(ctx, tx, studentID, fb, now); err != nil {
			return false, err
		}
	}
	for i := range ds.Undertakings {
		u := ds.Undertakings[i]
		if _, err := insertUndertaking(ctx, tx, &u); err != nil {
			return false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}

func (s *SQLSource) Records(ctx context.Context, studentID string) (*Records, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, payload FROM portal_records WHERE student_id = ? ORDER BY kind, seq`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query portal records: %w", err)
	}
	defer rows.Close()

	rec := &Records{}
	found := false
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("scan portal record: %w", err)
		}
		if err := decodeRecord(rec, kind, []byte(payload)); err != nil {
			return nil, err
		}
		if kind == kindStudent {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portal records: %w", err)
	}
	if !found {
		return nil, ErrStudentNotFound
	}
	return rec, nil
}

func decodeRecord(rec *Records, kind string, payload []byte) error {
	var err error
	switch kind {
	case kindStudent:
		err = json.Unmarshal(payload, &rec.Student)
	case kindPerformance:
		err = json.Unmarshal(payload, &rec.Performance)
	case kindFee:
		rec.FeeSchedule, err = appendDecoded(rec.FeeSchedule, payload)
	case kindTransaction:
		rec.Transactions, err = appendDecoded(rec.Transactions, payload)
	case kindAttendance:
		rec.Attendance, err = appendDecoded(rec.Attendance, payload)
	case kindSubject:
		rec.Subjects, err = appendDecoded(rec.Subjects, payload)
	case kindTimetable:
		rec.Timetable, err = appendDecoded(rec.Timetable, payload)
	case kindUpcoming:
		rec.Upcoming, err = appendDecoded(rec.Upcoming, payload)
	case kindUpdate:
		rec.Updates, err = appendDecoded(rec.Updates, payload)
	case kindAssignment:
		rec.Assignments, err = appendDecoded(rec.Assignments, payload)
	default:
		// unknown kinds are left for newer readers
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode %s record: %w", kind, err)
	}
	return nil
}

func appendDecoded[T any](dst []T, payload []byte) ([]T, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return dst, err
	}
	return append(dst, v), nil
}

// KnownStudent reports whether records exist for studentID.
func (s *SQLSource) KnownStudent(ctx context.Context, studentID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM portal_records WHERE student_id = ? AND kind = ? LIMIT 1`,
		studentID, kindStudent).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup student: %w", err)
	}
	return true, nil
}

func (s *SQLSource) Feedback(ctx context.Context, studentID string) ([]models.Feedback, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT semester, subject, faculty, rating, comments, suggestions
		 FROM feedback WHERE student_id = ? ORDER BY id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	out := []models.Feedback{}
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.Semester, &fb.Subject, &fb.Faculty, &fb.Rating, &fb.Comments, &fb.Suggestions); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return out, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertFeedback(ctx context.Context, db execer, studentID string, fb models.Feedback, at time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO feedback (student_id, semester, subject, faculty, rating, comments, suggestions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		studentID, fb.Semester, fb.Subject, fb.Faculty, fb.Rating, fb.Comments, fb.Suggestions, at)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (s *SQLSource) AddFeedback(ctx context.Context, studentID string, fb models.Feedback) error {
	return insertFeedback(ctx, s.db, studentID, fb, time.Now().UTC())
}

func (s *SQLSource) Undertakings(ctx context.Context, studentID string) ([]models.AttendanceUndertaking, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, student_id, student_name, semester, subject, from_date, to_date, reason,
		        submission_date, status, remarks, document_url
		 FROM attendance_undertakings WHERE student_id = ? ORDER BY id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query undertakings: %w", err)
	}
	defer rows.Close()

	out := []models.AttendanceUndertaking{}
	for rows.Next() {
		var (
			u           models.AttendanceUndertaking
			status      string
			remarks     sql.NullString
			documentURL sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.StudentID, &u.StudentName, &u.Semester, &u.Subject,
			&u.FromDate, &u.ToDate, &u.Reason, &u.SubmissionDate, &status, &remarks, &documentURL); err != nil {
			return nil, fmt.Errorf("scan undertaking: %w", err)
		}
		u.Status = models.UndertakingStatus(status)
		if remarks.Valid {
			u.Remarks = &remarks.String
		}
		if documentURL.Valid {
			u.DocumentURL = &documentURL.String
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate undertakings: %w", err)
	}
	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func insertUndertaking(ctx context.Context, db execer, u *models.AttendanceUndertaking) (int64, error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO attendance_undertakings
		 (student_id, student_name, semester, subject, from_date, to_date, reason, submission_date, status, remarks, document_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.StudentID, u.StudentName, u.Semester, u.Subject, u.FromDate, u.ToDate, u.Reason,
		u.SubmissionDate, string(u.Status), nullString(u.Remarks), nullString(u.DocumentURL))
	if err != nil {
		return 0, fmt.Errorf("insert undertaking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("undertaking id: %w", err)
	}
	return id, nil
}

func (s *SQLSource) AddUndertaking(ctx context.Context, u *models.AttendanceUndertaking) error {
	id, err := insertUndertaking(ctx, s.db, u)
	if err != nil {
		return err
	}
	u.ID = int(id)
	return nil
}
