package knowledge

import "strings"

// Entry is one FAQ question with its canned answer.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type General struct {
	Name        string `json:"name"`
	Established string `json:"established"`
	Location    string `json:"location"`
	Campus      string `json:"campus"`
	Affiliation string `json:"affiliation"`
	Approval    string `json:"approval"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
}

type Program struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Duration        string   `json:"duration"`
	Specializations []string `json:"specializations,omitempty"`
	Eligibility     string   `json:"eligibility"`
	Seats           int      `json:"seats"`
}

type Admissions struct {
	Process   string   `json:"process"`
	Criteria  string   `json:"criteria"`
	Documents []string `json:"documents"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Website   string   `json:"website"`
}

type Library struct {
	Name       string `json:"name"`
	Books      string `json:"books"`
	Journals   string `json:"journals"`
	EResources string `json:"e_resources"`
	Timing     string `json:"timing"`
}

type Facilities struct {
	Campus  []string `json:"campus"`
	Library Library  `json:"library"`
	Labs    []string `json:"labs"`
}

type FacultyInfo struct {
	Strength       string `json:"strength"`
	Qualifications string `json:"qualifications"`
	Ratio          string `json:"ratio"`
	Development    string `json:"development"`
}

type Placements struct {
	HighestPackage string   `json:"highest_package"`
	AveragePackage string   `json:"average_package"`
	Companies      []string `json:"companies"`
	Training       string   `json:"training"`
}

type StudentLife struct {
	Clubs        []string `json:"clubs"`
	Events       []string `json:"events"`
	Achievements []string `json:"achievements"`
}

type Contact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Facts is the structured fact table about the college.
type Facts struct {
	General     General     `json:"general"`
	Programs    []Program   `json:"programs"`
	Admissions  Admissions  `json:"admissions"`
	Facilities  Facilities  `json:"facilities"`
	Faculty     FacultyInfo `json:"faculty"`
	Placements  Placements  `json:"placements"`
	StudentLife StudentLife `json:"student_life"`
	Contact     Contact     `json:"contact"`
}

// Base is the read-only knowledge base shared by every conversation.
// Its accessors hand out copies, so a Base is safe for concurrent use.
type Base struct {
	facts   Facts
	faq     []Entry
	context string
}

// Default returns the built-in knowledge base.
func Default() *Base {
	return &Base{
		facts:   defaultFacts(),
		faq:     defaultFAQ(),
		context: strings.TrimSpace(defaultSystemContext),
	}
}

// FAQ returns the FAQ entries in match order.
func (b *Base) FAQ() []Entry {
	out := make([]Entry, len(b.faq))
	copy(out, b.faq)
	return out
}

// Facts returns a deep copy of the fact table.
func (b *Base) Facts() Facts {
	f := b.facts
	f.Programs = make([]Program, len(b.facts.Programs))
	for i, p := range b.facts.Programs {
		p.Specializations = cloneStrings(p.Specializations)
		f.Programs[i] = p
	}
	f.Admissions.Documents = cloneStrings(b.facts.Admissions.Documents)
	f.Facilities.Campus = cloneStrings(b.facts.Facilities.Campus)
	f.Facilities.Labs = cloneStrings(b.facts.Facilities.Labs)
	f.Placements.Companies = cloneStrings(b.facts.Placements.Companies)
	f.StudentLife.Clubs = cloneStrings(b.facts.StudentLife.Clubs)
	f.StudentLife.Events = cloneStrings(b.facts.StudentLife.Events)
	f.StudentLife.Achievements = cloneStrings(b.facts.StudentLife.Achievements)
	return f
}

// Program looks up a program by its short code (mba, bba, bca, bcom).
func (b *Base) Program(code string) (Program, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, p := range b.facts.Programs {
		if p.Code == code {
			p.Specializations = cloneStrings(p.Specializations)
			return p, true
		}
	}
	return Program{}, false
}

// SystemContext is the fixed block of facts prepended to every generative prompt.
func (b *Base) SystemContext() string {
	return b.context
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func defaultFacts() Facts {
	return Facts{
		General: General{
			Name:        "Punjab College of Technical Education",
			Established: "2004",
			Location:    "Baddowal, Ludhiana, Punjab, India",
			Campus:      "Sprawling 5-acre lush green campus",
			Affiliation: "Punjab Technical University (PTU), Jalandhar",
			Approval:    "All India Council for Technical Education (AICTE)",
			Vision:      "To emerge as a center of excellence in technical and management education",
			Mission:     "To impart quality education and develop competent professionals with ethical values",
		},
		Programs: []Program{
			{
				Code:     "mba",
				Name:     "Master of Business Administration (MBA)",
				Duration: "2 years",
				Specializations: []string{
					"Marketing",
					"Finance",
					"Human Resource Management",
					"Information Technology",
					"International Business",
					"Business Analytics",
				},
				Eligibility: "Graduation with minimum 50% marks",
				Seats:       180,
			},
			{Code: "bba", Name: "Bachelor of Business Administration (BBA)", Duration: "3 years", Eligibility: "10+2 with minimum 50% marks", Seats: 120},
			{Code: "bca", Name: "Bachelor of Computer Applications (BCA)", Duration: "3 years", Eligibility: "10+2 with Mathematics", Seats: 60},
			{Code: "bcom", Name: "Bachelor of Commerce (B.Com Honors)", Duration: "3 years", Eligibility: "10+2 with Commerce", Seats: 60},
		},
		Admissions: Admissions{
			Process:  "Admission through merit basis and counseling",
			Criteria: "Based on qualifying examination and entrance test",
			Documents: []string{
				"10th and 12th mark sheets",
				"Graduation mark sheets (for PG courses)",
				"Character certificate",
				"Migration certificate",
				"Passport size photographs",
				"ID proof",
			},
			Phone:   "+91-161-2824165, +91-161-2824166",
			Email:   "admissions@pcte.edu.in",
			Website: "www.pcte.edu.in",
		},
		Facilities: Facilities{
			Campus: []string{
				"Well-equipped classrooms with projectors",
				"Computer labs with latest configuration",
				"Central library with 20,000+ books",
				"Seminar halls and conference rooms",
				"Sports facilities",
				"Cafeteria",
				"Transportation facility",
				"Hostel facility for boys and girls",
				"Wi-Fi enabled campus",
				"24/7 power backup",
			},
			Library: Library{
				Name:       "Central Library",
				Books:      "20,000+ books",
				Journals:   "100+ national and international journals",
				EResources: "Access to various e-journals and databases",
				Timing:     "9:00 AM to 5:00 PM (Monday to Saturday)",
			},
			Labs: []string{
				"Computer Lab with 120 systems",
				"Language Lab",
				"Business Analytics Lab",
				"Financial Trading Lab",
			},
		},
		Faculty: FacultyInfo{
			Strength:       "50+ qualified faculty members",
			Qualifications: "Most faculty members have PhD and industry experience",
			Ratio:          "1:15 student-faculty ratio",
			Development:    "Regular faculty development programs and workshops",
		},
		Placements: Placements{
			HighestPackage: "12 LPA",
			AveragePackage: "4.5 LPA",
			Companies: []string{
				"ICICI Bank", "HDFC Bank", "Axis Bank", "Amazon", "Flipkart", "Wipro", "Infosys",
				"TCS", "Reliance", "Asian Paints", "Havells", "Nestle", "Coca-Cola",
			},
			Training: "Regular training sessions, workshops, and mock interviews",
		},
		StudentLife: StudentLife{
			Clubs: []string{
				"Management Club",
				"IT Club",
				"Cultural Club",
				"Sports Club",
				"Entrepreneurship Development Cell",
				"Photography Club",
			},
			Events: []string{
				"Annual Tech Fest 'TechFest'",
				"Cultural Fest 'Udaan'",
				"Sports Meet",
				"Management Conclave",
				"Industry Expert Sessions",
			},
			Achievements: []string{
				"University positions in academics",
				"Winners in various inter-college competitions",
				"Excellent placement records",
			},
		},
		Contact: Contact{
			Address: "Punjab College of Technical Education, Baddowal, Ludhiana - 141007, Punjab, India",
			Phone:   "+91-161-2824165, +91-161-2824166",
			Fax:     "+91-161-2824167",
			Email:   "info@pcte.edu.in",
			Website: "www.pcte.edu.in",
		},
	}
}

func defaultFAQ() []Entry {
	return []Entry{
		{
			Question: "What courses are offered at PCTE?",
			Answer:   "PCTE offers MBA, BBA, BCA, and B.Com (Honors) programs.",
		},
		{
			Question: "How can I apply for admission to PCTE?",
			Answer:   "You can apply through the college website or visit the admission office in person. Admissions are based on merit and counseling.",
		},
		{
			Question: "What is the placement record of PCTE?",
			Answer:   "PCTE has an excellent placement record with the highest package of 12 LPA and average package of 4.5 LPA. Top companies like ICICI Bank, Amazon, Wipro, and TCS visit the campus.",
		},
		{
			Question: "Does PCTE provide hostel facilities?",
			Answer:   "Yes, PCTE provides separate hostel facilities for both boys and girls with all necessary amenities.",
		},
		{
			Question: "What is the faculty strength at PCTE?",
			Answer:   "PCTE has 50+ qualified faculty members with most having PhD and industry experience. The student-faculty ratio is 1:15.",
		},
		{
			Question: "What are the library timings at PCTE?",
			Answer:   "The central library is open from 9:00 AM to 5:00 PM from Monday to Saturday.",
		},
		{
			Question: "Does PCTE have transportation facilities?",
			Answer:   "Yes, PCTE provides transportation facilities from various parts of Ludhiana and surrounding areas.",
		},
		{
			Question: "What is the campus size of PCTE?",
			Answer:   "PCTE has a sprawling 5-acre lush green campus with modern infrastructure and facilities.",
		},
	}
}
