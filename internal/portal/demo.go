package portal

import "feebank/internal/models"

// DemoStudentID identifies the student of the demo dataset.
const DemoStudentID = "2023BCA1711"

func strPtr(s string) *string { return &s }

// DemoDataset returns the demo student's portal data. Every call builds fresh
// slices, so callers may keep and mutate the result.
func DemoDataset() *Dataset {
	return &Dataset{
		Records: Records{
			Student: models.Student{
				StudentID: DemoStudentID,
				PersonalInfo: models.PersonalInfo{
					Name:         "VINAYAK",
					DOB:          "15 March, 2002",
					Contact:      "9876543210",
					Email:        "VINAYAK@GMAIL.COM",
					Address:      "123, TECH PARK, BANGALORE, KARNATAKA 560001",
					Guardian:     "RAJESH SHARMA",
					ProfilePhoto: "/images/student-avatar.jpg",
				},
				AcademicInfo: models.AcademicInfo{
					Course:             "BCA-2023-2026",
					CurrentSemester:    "SEM-V (25-26)",
					AdmissionYear:      2023,
					ExpectedGraduation: 2026,
					Institution:        "PCTE GROUP OF INSTITUTES",
				},
				EncryptedID: "Y5T83nRku0yC4Jo3gg",
			},
			FeeSchedule: []models.FeeInstallment{
				{InstallmentNumber: 1, InstallmentName: "1st Installment", DueDate: "2024-10-15", Amount: 25170, Status: models.FeePaid, PaymentDate: "2024-08-03"},
				{InstallmentNumber: 2, InstallmentName: "2nd Installment", DueDate: "2024-12-15", Amount: 25170, Status: models.FeePaid, PaymentDate: "2024-12-10"},
				{InstallmentNumber: 3, InstallmentName: "3rd Installment", DueDate: "2025-03-15", Amount: 25170, Status: models.FeePending},
				{InstallmentNumber: 4, InstallmentName: "4th Installment", DueDate: "2025-06-15", Amount: 25170, Status: models.FeePending},
			},
			Transactions: []models.Transaction{
				{
					TransactionID: "186635_Y5T83nRku0yC4Jo3gg",
					StudentID:     DemoStudentID,
					TransactionDetails: models.TransactionDetails{
						Date: "03/08/2025", Amount: 25170, Currency: "INR", Type: "Credit Card",
						Status: "Success", Description: "Fee Payment - Installment 1",
					},
					PaymentGateway: models.PaymentGateway{Gateway: "Credit Card Processor", GatewayTransactionID: "CC_186635", ProcessingFee: 50},
					Receipt:        models.Receipt{ReceiptID: "2004624", DownloadURL: "/Download/FeeReceipt?id=2004624", GeneratedAt: "2025-08-03T14:30:00Z"},
				},
				{
					TransactionID: "186636_X9T72nRku0yC4Jo3hh",
					StudentID:     DemoStudentID,
					TransactionDetails: models.TransactionDetails{
						Date: "10/12/2025", Amount: 25170, Currency: "INR", Type: "UPI",
						Status: "Success", Description: "Fee Payment - Installment 2",
					},
					PaymentGateway: models.PaymentGateway{Gateway: "UPI Processor", GatewayTransactionID: "UPI_186636", ProcessingFee: 0},
					Receipt:        models.Receipt{ReceiptID: "2004625", DownloadURL: "/Download/FeeReceipt?id=2004625", GeneratedAt: "2025-12-10T16:45:00Z"},
				},
			},
			Attendance: []models.Attendance{
				{
					AttendanceID:     "ATT_001",
					StudentID:        DemoStudentID,
					SessionDetails:   models.SessionDetails{Date: "29-Jul-2023", Period: "IV(12:30 to 13:30)", Duration: 60, AcademicYear: "2023-2024"},
					SubjectInfo:      models.SubjectInfo{SubjectCode: "UGCA 1931", SubjectName: "Data Warehouse and Mining", Semester: "SEM-V (25-26)", Faculty: "PARIKA JAIRATH"},
					AttendanceStatus: models.AttendanceStatus{Status: "P", MarkedBy: "faculty_001", MarkedAt: "2023-07-29T12:30:00Z"},
				},
				{
					AttendanceID:     "ATT_002",
					StudentID:        DemoStudentID,
					SessionDetails:   models.SessionDetails{Date: "30-Jul-2023", Period: "II(09:00 to 10:00)", Duration: 60, AcademicYear: "2023-2024"},
					SubjectInfo:      models.SubjectInfo{SubjectCode: "UGCA 1936", SubjectName: "Cloud Computing", Semester: "SEM-V (25-26)", Faculty: "HIMANSHU SINGH"},
					AttendanceStatus: models.AttendanceStatus{Status: "A", MarkedBy: "faculty_002", MarkedAt: "2023-07-30T09:00:00Z", Notes: "Student absent"},
				},
			},
			Performance: models.AcademicPerformance{
				TotalClasses: 120,
				Attended:     101,
				Percentage:   84.2,
				SubjectWiseAttendance: []models.SubjectAttendance{
					{Subject: "Data Warehouse and Mining", Attended: 15, Total: 18, Percentage: 83.3},
					{Subject: "Cloud Computing", Attended: 16, Total: 18, Percentage: 88.9},
					{Subject: "Web Designing", Attended: 14, Total: 16, Percentage: 87.5},
				},
			},
			Subjects: []models.Subject{
				{
					SubjectCode: "UGCA 1931",
					SubjectName: "Data Warehouse and Mining",
					Semester:    "SEM-V",
					Credits:     4,
					Faculty:     models.Faculty{Name: "PARIKA JAIRATH", Department: "Computer Science", Contact: "parika.j@pcte.edu"},
					Schedule:    models.Schedule{Theory: &models.ScheduleSlot{Day: "Friday", Time: "09:00-10:00", Room: "Room_101"}},
					Resources: []models.Resource{
						{Title: "Introduction to Data Mining", Type: "pptx", Size: "2.5MB", UploadDate: "2024-08-15", DownloadURL: "/content/dwm/intro.pptx"},
						{Title: "Data Warehouse Concepts", Type: "pdf", Size: "1.8MB", UploadDate: "2024-08-20", DownloadURL: "/content/dwm/concepts.pdf"},
					},
				},
				{
					SubjectCode: "UGCA 1936",
					SubjectName: "Cloud Computing",
					Semester:    "SEM-V",
					Credits:     4,
					Faculty:     models.Faculty{Name: "HIMANSHU SINGH", Department: "Computer Science", Contact: "himanshu.s@pcte.edu"},
					Schedule:    models.Schedule{Theory: &models.ScheduleSlot{Day: "Friday", Time: "10:05-11:05", Room: "Lab_201"}},
					Resources: []models.Resource{
						{Title: "Cloud Architecture Basics", Type: "pdf", Size: "3.2MB", UploadDate: "2024-08-18", DownloadURL: "/content/cc/architecture.pdf"},
					},
				},
			},
			Timetable: []models.TimetableEntry{
				{
					Date:      "2025-10-10",
					DayOfWeek: "Friday",
					Classes: []models.ClassSlot{
						{Time: "09:00-10:00", Subject: "DATA WAREHOUSE AND MINING", Faculty: "PARIKA JAIRATH", Room: "Room_101", Type: "Theory"},
						{Time: "10:05-11:05", Subject: "CLOUD COMPUTING", Faculty: "HIMANSHU SINGH", Room: "Lab_201", Type: "Theory"},
						{Time: "11:15-12:15", Subject: "WEB DESIGNING", Faculty: "RAJEEV KUMAR", Room: "Lab_302", Type: "Practical"},
						{Time: "12:30-13:30", Subject: "DATA WAREHOUSE AND MINING", Faculty: "PARIKA JAIRATH", Room: "Room_101", Type: "Theory"},
					},
				},
				{
					Date:      "2025-10-11",
					DayOfWeek: "Saturday",
					Classes: []models.ClassSlot{
						{Time: "09:00-10:00", Subject: "OPERATING SYSTEMS", Faculty: "ANITA SHARMA", Room: "Room_205", Type: "Theory"},
						{Time: "10:05-11:05", Subject: "SOFTWARE ENGINEERING", Faculty: "VIKAS MEHTA", Room: "Room_103", Type: "Theory"},
					},
				},
			},
			Upcoming: []models.UpcomingClass{
				{Subject: "DATA WAREHOUSE AND MINING", Time: "09:00-10:00", Date: "2025-10-10", Room: "Room_101", Faculty: "PARIKA JAIRATH"},
				{Subject: "CLOUD COMPUTING", Time: "10:05-11:05", Date: "2025-10-10", Room: "Lab_201", Faculty: "HIMANSHU SINGH"},
			},
			Updates: []models.Update{
				{ID: 1, Title: "Assignment Submission Reminder", Message: "Please submit your Data Mining assignment by tomorrow, 11:59 PM. Late submissions will not be accepted.", Type: "warning", Date: "2023-10-06", Sender: "Dr. Rajesh Kumar"},
				{ID: 2, Title: "Fee Payment Confirmation", Message: "Your 2nd installment payment has been received successfully. Receipt is available in the transactions section.", Type: "success", Date: "2023-10-05", Sender: "Accounts Department"},
				{ID: 3, Title: "Class Schedule Change", Message: "Tomorrow's Database Management class has been rescheduled to 2:00 PM in Room 301.", Type: "info", Date: "2023-10-04", Sender: "Academic Office"},
				{ID: 4, Title: "Exam Results Published", Message: "Your mid-term examination results have been published. Please check the academic performance section.", Type: "success", Date: "2023-10-03", Sender: "Examination Department"},
				{ID: 5, Title: "Library Book Due Date", Message: "You have 2 library books due for return by October 10, 2023. Please return them to avoid late fees.", Type: "warning", Date: "2023-10-02", Sender: "Library"},
				{ID: 6, Title: "Placement Drive Registration", Message: "Registration for the upcoming placement drive is now open. Please register by October 15, 2023.", Type: "info", Date: "2023-10-01", Sender: "Placement Cell"},
				{ID: 7, Title: "System Maintenance Notice", Message: "The student portal will be unavailable on October 8, 2023, from 10:00 AM to 2:00 PM for maintenance.", Type: "error", Date: "2023-09-30", Sender: "IT Department"},
				{ID: 8, Title: "Workshop on AI and Machine Learning", Message: "A workshop on AI and Machine Learning is scheduled for October 12, 2023. Registration is mandatory.", Type: "info", Date: "2023-09-29", Sender: "Computer Science Department"},
			},
			Assignments: []models.Assignment{
				{ID: 1, Title: "Data Mining Case Study", Description: "Analyze the provided dataset and identify patterns using data mining techniques.", Subject: "Data Warehouse and Mining", DueDate: "2023-10-15", Status: models.AssignmentPending, DownloadURL: "/content/assignments/dm_case_study.pdf", Faculty: "PARIKA JAIRATH", MaxMarks: 100, Weightage: 20},
				{ID: 2, Title: "Cloud Architecture Design", Description: "Design a scalable cloud architecture for a e-commerce platform.", Subject: "Cloud Computing", DueDate: "2023-10-10", SubmissionDate: strPtr("2023-10-08"), Status: models.AssignmentSubmitted, DownloadURL: "/content/assignments/cloud_architecture.pdf", SubmissionURL: strPtr("/submissions/student_001/cloud_architecture.zip"), Faculty: "HIMANSHU SINGH", MaxMarks: 100, Weightage: 15},
				{ID: 3, Title: "Web Development Project", Description: "Create a responsive website using HTML, CSS, and JavaScript.", Subject: "Web Designing", DueDate: "2023-10-05", Status: models.AssignmentOverdue, DownloadURL: "/content/assignments/web_project.pdf", Faculty: "RAJEEV KUMAR", MaxMarks: 100, Weightage: 25},
				{ID: 4, Title: "Operating Systems Research Paper", Description: "Write a research paper on recent advancements in operating systems.", Subject: "Operating Systems", DueDate: "2023-10-20", Status: models.AssignmentPending, DownloadURL: "/content/assignments/os_research.pdf", Faculty: "ANITA SHARMA", MaxMarks: 100, Weightage: 10},
				{ID: 5, Title: "Software Engineering Documentation", Description: "Create comprehensive documentation for a software project.", Subject: "Software Engineering", DueDate: "2023-10-12", SubmissionDate: strPtr("2023-10-10"), Status: models.AssignmentSubmitted, DownloadURL: "/content/assignments/se_documentation.pdf", SubmissionURL: strPtr("/submissions/student_001/se_documentation.docx"), Faculty: "VIKAS MEHTA", MaxMarks: 100, Weightage: 15},
			},
		},
		Feedback: []models.Feedback{
			{Semester: "SEM-V (25-26)", Subject: "Data Warehouse and Mining", Faculty: "PARIKA JAIRATH", Rating: 5, Comments: "Excellent teaching style with practical examples. The course content is well-structured and relevant.", Suggestions: "More hands-on lab sessions would be beneficial."},
			{Semester: "SEM-V (25-26)", Subject: "Cloud Computing", Faculty: "HIMANSHU SINGH", Rating: 4, Comments: "Good coverage of cloud concepts. The demonstrations were helpful in understanding complex topics.", Suggestions: "Include more case studies from real-world implementations."},
			{Semester: "SEM-IV (24-25)", Subject: "Web Designing", Faculty: "RAJEEV KUMAR", Rating: 4, Comments: "Practical approach to web design. The projects helped in applying theoretical knowledge.", Suggestions: "More focus on responsive design techniques."},
			{Semester: "SEM-IV (24-25)", Subject: "Operating Systems", Faculty: "ANITA SHARMA", Rating: 3, Comments: "Theoretical concepts were explained well, but practical implementation was limited.", Suggestions: "Include more practical lab sessions with OS internals."},
			{Semester: "SEM-III (23-24)", Subject: "Software Engineering", Faculty: "VIKAS MEHTA", Rating: 5, Comments: "Comprehensive coverage of software development lifecycle. The group project was very insightful.", Suggestions: "Introduce more modern development methodologies like DevOps."},
		},
		Undertakings: []models.AttendanceUndertaking{
			{ID: 1, StudentID: DemoStudentID, StudentName: "VINAYAK", Semester: "SEM-V (25-26)", Subject: "Data Warehouse and Mining", FromDate: "2023-09-15", ToDate: "2023-09-17", Reason: "Medical emergency - was admitted to hospital for treatment.", SubmissionDate: "2023-09-20", Status: models.UndertakingApproved, Remarks: strPtr("Approved with medical certificate."), DocumentURL: strPtr("/documents/attendance_undertaking_001.pdf")},
			{ID: 2, StudentID: DemoStudentID, StudentName: "VINAYAK", Semester: "SEM-V (25-26)", Subject: "Cloud Computing", FromDate: "2023-10-01", ToDate: "2023-10-02", Reason: "Family emergency - had to attend to a family member in need.", SubmissionDate: "2023-10-03", Status: models.UndertakingPending},
			{ID: 3, StudentID: DemoStudentID, StudentName: "VINAYAK", Semester: "SEM-IV (24-25)", Subject: "Web Designing", FromDate: "2023-05-10", ToDate: "2023-05-12", Reason: "Participated in a national level technical symposium.", SubmissionDate: "2023-05-15", Status: models.UndertakingRejected, Remarks: strPtr("Insufficient documentation provided.")},
		},
	}
}
