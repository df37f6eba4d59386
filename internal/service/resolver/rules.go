package resolver

import (
	"strings"
	"unicode"

	"feebank/internal/knowledge"
)

const (
	RedirectReply = "I'm specifically designed to help with information about PCTE (Punjab College of Technical Education). I can assist you with details about courses, admissions, facilities, placements, and more. Would you like to know something specific about PCTE?"

	DefaultReply = "I can help you with information about PCTE's courses, admissions, facilities, placements, and more. Could you please be more specific about what you'd like to know? You can also contact the college directly at +91-161-2824165 for more details."

	programsReply = "PCTE offers the following programs:\n• MBA (2 years)\n• BBA (3 years)\n• BCA (3 years)\n• B.Com Honors (3 years)\n\nWhich program would you like to know more about?"
	mbaReply      = "PCTE offers a 2-year MBA program with specializations in Marketing, Finance, HR, IT, International Business, and Business Analytics. The eligibility is graduation with minimum 50% marks and there are 180 seats available."
	bbaReply      = "PCTE offers a 3-year BBA program with eligibility of 10+2 with minimum 50% marks. There are 120 seats available."
	bcaReply      = "PCTE offers a 3-year BCA program with eligibility of 10+2 with Mathematics. There are 60 seats available."
	bcomReply     = "PCTE offers a 3-year B.Com (Honors) program with eligibility of 10+2 with Commerce. There are 60 seats available."

	admissionReply = "To apply for admission to PCTE:\n1. Visit the college website or admission office\n2. Fill out the application form\n3. Submit required documents (mark sheets, certificates, etc.)\n4. Admissions are based on merit and counseling\n\nFor more details, contact: +91-161-2824165 or admissions@pcte.edu.in"

	placementReply = "PCTE has an excellent placement record:\n• Highest Package: 12 LPA\n• Average Package: 4.5 LPA\n• Top Recruiters: ICICI Bank, HDFC Bank, Amazon, Flipkart, Wipro, Infosys, TCS, and many more\n• Regular training sessions and mock interviews are conducted"

	libraryReply    = "PCTE's central library has 20,000+ books, 100+ national and international journals, and access to various e-resources. It's open from 9:00 AM to 5:00 PM (Monday to Saturday)."
	hostelReply     = "PCTE provides separate hostel facilities for both boys and girls with all necessary amenities including Wi-Fi, mess, and 24/7 security."
	facilitiesReply = "PCTE offers excellent facilities including well-equipped classrooms, computer labs, central library, seminar halls, sports facilities, cafeteria, transportation, and hostel facilities."

	contactReply = "PCTE Contact Information:\n📍 Address: Punjab College of Technical Education, Baddowal, Ludhiana - 141007, Punjab, India\n📞 Phone: +91-161-2824165, +91-161-2824166\n📧 Email: info@pcte.edu.in\n🌐 Website: www.pcte.edu.in"
)

// Keywords is the relevance allowlist. A query mentioning none of them is out of domain.
var Keywords = []string{
	"pcte", "punjab college", "admission", "course", "fee", "placement",
	"faculty", "library", "hostel", "campus", "bba", "mba", "bca", "bcom",
	"ludhiana", "baddowal", "college", "university", "ptu", "technical education",
}

// Relevant reports whether the query mentions at least one allowlisted keyword.
func Relevant(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Query is the pre-lowered form of a user query handed to rules.
type Query struct {
	Lower      string
	Normalized string // lowercase words separated by single spaces
}

func newQuery(raw string) Query {
	lower := strings.ToLower(raw)
	return Query{Lower: lower, Normalized: normalize(lower)}
}

func (q Query) has(words ...string) bool {
	for _, w := range words {
		if strings.Contains(q.Lower, w) {
			return true
		}
	}
	return false
}

// Rule is one (predicate, responder) pair of the fallback table.
type Rule struct {
	Name    string
	Match   func(Query) bool
	Respond func(Query) string
}

// Rules returns the ordered fallback table. The first matching rule answers.
func Rules(kb *knowledge.Base) []Rule {
	faq := kb.FAQ()
	questions := make([]string, len(faq))
	for i, entry := range faq {
		questions[i] = normalize(entry.Question)
	}
	matchFAQ := func(q Query) (knowledge.Entry, bool) {
		for i, question := range questions {
			if faqMatches(q.Normalized, question) {
				return faq[i], true
			}
		}
		return knowledge.Entry{}, false
	}

	return []Rule{
		{
			Name: "faq",
			Match: func(q Query) bool {
				_, ok := matchFAQ(q)
				return ok
			},
			Respond: func(q Query) string {
				entry, _ := matchFAQ(q)
				return entry.Answer
			},
		},
		{
			Name:    "programs",
			Match:   func(q Query) bool { return q.has("course", "program") },
			Respond: programAnswer(kb),
		},
		{
			Name:    "admission",
			Match:   func(q Query) bool { return q.has("admission", "apply") },
			Respond: fixed(admissionReply),
		},
		{
			Name:    "placement",
			Match:   func(q Query) bool { return q.has("placement", "job", "package") },
			Respond: fixed(placementReply),
		},
		{
			Name:    "facilities",
			Match:   func(q Query) bool { return q.has("facility", "library", "hostel") },
			Respond: facilitiesAnswer,
		},
		{
			Name:    "contact",
			Match:   func(q Query) bool { return q.has("contact", "address", "location") },
			Respond: fixed(contactReply),
		},
	}
}

func fixed(reply string) func(Query) string {
	return func(Query) string { return reply }
}

var programReplies = []struct {
	code    string
	aliases []string
	reply   string
}{
	{"mba", []string{"mba"}, mbaReply},
	{"bba", []string{"bba"}, bbaReply},
	{"bca", []string{"bca"}, bcaReply},
	{"bcom", []string{"bcom", "b.com"}, bcomReply},
}

// programAnswer answers for the first program the query names, provided the
// knowledge base still offers it, and lists all programs otherwise.
func programAnswer(kb *knowledge.Base) func(Query) string {
	return func(q Query) string {
		for _, p := range programReplies {
			if !q.has(p.aliases...) {
				continue
			}
			if _, ok := kb.Program(p.code); ok {
				return p.reply
			}
		}
		return programsReply
	}
}

func facilitiesAnswer(q Query) string {
	switch {
	case q.has("library"):
		return libraryReply
	case q.has("hostel"):
		return hostelReply
	default:
		return facilitiesReply
	}
}

// faqMatches accepts a query that contains the whole question, or a query of at
// least two words that appears inside the question.
func faqMatches(query, question string) bool {
	if query == "" || question == "" {
		return false
	}
	if strings.Contains(query, question) {
		return true
	}
	return len(strings.Fields(query)) >= 2 && strings.Contains(question, query)
}

func normalize(s string) string {
	s = strings.ToLower(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}
