package models

// Student is the profile shown on the dashboard.
type Student struct {
	StudentID    string       `json:"student_id"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	AcademicInfo AcademicInfo `json:"academic_info"`
	EncryptedID  string       `json:"encrypted_id"`
}

type PersonalInfo struct {
	Name         string `json:"name"`
	DOB          string `json:"dob"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Guardian     string `json:"guardian"`
	ProfilePhoto string `json:"profile_photo"`
}

type AcademicInfo struct {
	Course             string `json:"course"`
	CurrentSemester    string `json:"current_semester"`
	AdmissionYear      int    `json:"admission_year"`
	ExpectedGraduation int    `json:"expected_graduation"`
	Institution        string `json:"institution"`
}

type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

type FeeInstallment struct {
	InstallmentNumber int       `json:"installment_number"`
	InstallmentName   string    `json:"installment_name"`
	DueDate           string    `json:"due_date"`
	Amount            float64   `json:"amount"`
	Status            FeeStatus `json:"status"`
	PaymentDate       string    `json:"payment_date,omitempty"`
}

type Transaction struct {
	TransactionID      string             `json:"transaction_id"`
	StudentID          string             `json:"student_id"`
	TransactionDetails TransactionDetails `json:"transaction_details"`
	PaymentGateway     PaymentGateway     `json:"payment_gateway"`
	Receipt            Receipt            `json:"receipt"`
}

type TransactionDetails struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Type        string  `json:"type"`
	Status      string  `json:"status"` // Success, Failed, Pending
	Description string  `json:"description"`
}

type PaymentGateway struct {
	Gateway              string  `json:"gateway"`
	GatewayTransactionID string  `json:"gateway_transaction_id"`
	ProcessingFee        float64 `json:"processing_fee"`
}

type Receipt struct {
	ReceiptID   string `json:"receipt_id"`
	DownloadURL string `json:"download_url"`
	GeneratedAt string `json:"generated_at"`
}

type Attendance struct {
	AttendanceID     string           `json:"attendance_id"`
	StudentID        string           `json:"student_id"`
	SessionDetails   SessionDetails   `json:"session_details"`
	SubjectInfo      SubjectInfo      `json:"subject_info"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
}

type SessionDetails struct {
	Date         string `json:"date"` // 29-Jul-2023
	Period       string `json:"period"`
	Duration     int    `json:"duration"`
	AcademicYear string `json:"academic_year"`
}

type SubjectInfo struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Semester    string `json:"semester"`
	Faculty     string `json:"faculty"`
}

type AttendanceStatus struct {
	Status   string `json:"status"` // P or A
	MarkedBy string `json:"marked_by"`
	MarkedAt string `json:"marked_at"`
	Notes    string `json:"notes"`
}

type AcademicPerformance struct {
	TotalClasses          int                 `json:"total_classes"`
	Attended              int                 `json:"attended"`
	Percentage            float64             `json:"percentage"`
	SubjectWiseAttendance []SubjectAttendance `json:"subject_wise_attendance"`
}

type SubjectAttendance struct {
	Subject    string  `json:"subject"`
	Attended   int     `json:"attended"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Subject struct {
	SubjectCode string     `json:"subject_code"`
	SubjectName string     `json:"subject_name"`
	Semester    string     `json:"semester"`
	Credits     int        `json:"credits"`
	Faculty     Faculty    `json:"faculty"`
	Schedule    Schedule   `json:"schedule"`
	Resources   []Resource `json:"resources"`
}

type Faculty struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}

type Schedule struct {
	Theory    *ScheduleSlot `json:"theory"`
	Practical *ScheduleSlot `json:"practical"`
}

type ScheduleSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Room string `json:"room"`
}

type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"` // pdf, pptx, docx, mp4
	Size        string `json:"size"`
	UploadDate  string `json:"upload_date"`
	DownloadURL string `json:"download_url"`
}

type TimetableEntry struct {
	Date      string      `json:"date"` // 2006-01-02
	DayOfWeek string      `json:"day_of_week"`
	Classes   []ClassSlot `json:"classes"`
}

type ClassSlot struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Faculty string `json:"faculty"`
	Room    string `json:"room"`
	Type    string `json:"type"` // Theory, Practical, Lab, Tutorial
}

type UpcomingClass struct {
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Date    string `json:"date"`
	Room    string `json:"room"`
	Faculty string `json:"faculty"`
}

type Update struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"` // info, success, warning, error
	Date    string `json:"date"`
	Sender  string `json:"sender"`
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentOverdue   AssignmentStatus = "overdue"
)

type Assignment struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Subject        string           `json:"subject"`
	DueDate        string           `json:"due_date"`
	SubmissionDate *string          `json:"submission_date"`
	Status         AssignmentStatus `json:"status"`
	DownloadURL    string           `json:"download_url"`
	SubmissionURL  *string          `json:"submission_url"`
	Faculty        string           `json:"faculty"`
	MaxMarks       int              `json:"max_marks"`
	Weightage      int              `json:"weightage"`
}

type Feedback struct {
	Semester    string `json:"semester" validate:"notblank"`
	Subject     string `json:"subject" validate:"notblank"`
	Faculty     string `json:"faculty" validate:"notblank"`
	Rating      int    `json:"rating" validate:"min=1,max=5"`
	Comments    string `json:"comments" validate:"notblank,max=1000"`
	Suggestions string `json:"suggestions" validate:"max=1000"`
}

type UndertakingStatus string

const (
	UndertakingPending  UndertakingStatus = "pending"
	UndertakingApproved UndertakingStatus = "approved"
	UndertakingRejected UndertakingStatus = "rejected"
)

type AttendanceUndertaking struct {
	ID             int               `json:"id"`
	StudentID      string            `json:"student_id"`
	StudentName    string            `json:"student_name"`
	Semester       string            `json:"semester" validate:"notblank"`
	Subject        string            `json:"subject" validate:"notblank"`
	FromDate       string            `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate         string            `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason         string            `json:"reason" validate:"notblank,max=500"`
	SubmissionDate string            `json:"submission_date"`
	Status         UndertakingStatus `json:"status"`
	Remarks        *string           `json:"remarks"`
	DocumentURL    *string           `json:"document_url"`
}
