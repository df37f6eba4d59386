package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"feebank/internal/knowledge"
	"feebank/internal/models"
	"feebank/internal/service/ai"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	delay   time.Duration
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestOutOfDomainQueryIsRedirectedWithoutCalls(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	r := New(knowledge.Default(), gen, Options{})

	for _, q := range []string{"What's the weather today?", "tell me a joke", "who won the match"} {
		res := r.ResolveDetailed(context.Background(), q)
		if res.Text != RedirectReply {
			t.Fatalf("query %q: expected redirect, got %q", q, res.Text)
		}
		if res.Source != models.SourceRedirect || res.Degraded() {
			t.Fatalf("query %q: unexpected source %q", q, res.Source)
		}
	}
	if gen.callCount() != 0 {
		t.Fatalf("expected zero generator calls, got %d", gen.callCount())
	}
}

func TestFAQAnswerWithoutCredential(t *testing.T) {
	r := New(knowledge.Default(), nil, Options{})
	for _, entry := range knowledge.Default().FAQ() {
		query := "Hi, " + entry.Question
		if got := r.Resolve(context.Background(), query); got != entry.Answer {
			t.Fatalf("query %q: expected faq answer %q, got %q", query, entry.Answer, got)
		}
	}
}

func TestFAQMatchesPartialQuestion(t *testing.T) {
	r := New(knowledge.Default(), nil, Options{})
	got := r.Resolve(context.Background(), "faculty strength at PCTE")
	if !strings.HasPrefix(got, "PCTE has 50+ qualified faculty members") {
		t.Fatalf("unexpected answer: %q", got)
	}
}

func TestFAQMatchesTwoWordQuery(t *testing.T) {
	kb := knowledge.Default()
	var want string
	for _, entry := range kb.FAQ() {
		if strings.Contains(entry.Question, "campus size") {
			want = entry.Answer
		}
	}
	if want == "" {
		t.Fatalf("campus size question missing from the FAQ")
	}
	r := New(kb, nil, Options{})
	if got := r.Resolve(context.Background(), "campus size"); got != want {
		t.Fatalf("Resolve(campus size) = %q, want %q", got, want)
	}
	if got := r.Resolve(context.Background(), "campus"); got != DefaultReply {
		t.Fatalf("single word matched an faq entry: %q", got)
	}
}

func TestGenerativeReplyIsTrimmedVerbatim(t *testing.T) {
	gen := &fakeGenerator{reply: "\n  PCTE offers four programs.  \n"}
	r := New(knowledge.Default(), gen, Options{})
	query := "Tell me about MBA at PCTE"

	res := r.ResolveDetailed(context.Background(), query)
	if res.Text != "PCTE offers four programs." || res.Source != models.SourceGenerative {
		t.Fatalf("unexpected resolution: %+v", res)
	}
	if gen.callCount() != 1 {
		t.Fatalf("expected one call, got %d", gen.callCount())
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, knowledge.Default().SystemContext()) {
		t.Fatalf("prompt missing context block")
	}
	if !strings.Contains(prompt, "User Query: "+query) || !strings.HasSuffix(prompt, "\n\nResponse:") {
		t.Fatalf("prompt not shaped as expected: %q", prompt[len(prompt)-60:])
	}
}

func TestGeneratorFailureFallsBack(t *testing.T) {
	query := "What courses does PCTE offer?"
	gen := &fakeGenerator{err: errors.New("Error 429: quota exceeded")}
	withFailure := New(knowledge.Default(), gen, Options{})
	withoutKey := New(knowledge.Default(), nil, Options{})

	res := withFailure.ResolveDetailed(context.Background(), query)
	want := withoutKey.Resolve(context.Background(), query)
	if res.Text != want {
		t.Fatalf("failure path should match credential-less path:\n%q\n%q", res.Text, want)
	}
	if !res.Degraded() || res.Failure != ai.FailureRateLimited {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestEmptyCompletionFallsBack(t *testing.T) {
	r := New(knowledge.Default(), &fakeGenerator{reply: "   "}, Options{})
	res := r.ResolveDetailed(context.Background(), "pcte hostel")
	if res.Text != hostelReply || res.Failure != ai.FailureMalformed {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestTimeoutBoundsGeneratorCall(t *testing.T) {
	gen := &fakeGenerator{reply: "late", delay: time.Second}
	r := New(knowledge.Default(), gen, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	res := r.ResolveDetailed(context.Background(), "PCTE placement package")
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("timeout not applied")
	}
	if res.Text != placementReply || res.Failure != ai.FailureTimeout {
		t.Fatalf("unexpected resolution: %+v", res)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	gen := &fakeGenerator{reply: "Same answer"}
	r := New(knowledge.Default(), gen, Options{})
	first := r.Resolve(context.Background(), "pcte library")
	second := r.Resolve(context.Background(), "pcte library")
	if first != second {
		t.Fatalf("expected identical replies, got %q and %q", first, second)
	}

	fallback := New(knowledge.Default(), nil, Options{})
	if fallback.Resolve(context.Background(), "bca course") != fallback.Resolve(context.Background(), "bca course") {
		t.Fatalf("fallback replies differ between calls")
	}
}

func TestCoursesExample(t *testing.T) {
	r := New(knowledge.Default(), nil, Options{})
	got := r.Resolve(context.Background(), "What courses does PCTE offer?")
	if !strings.HasPrefix(got, "PCTE offers the following programs:") {
		t.Fatalf("unexpected reply: %q", got)
	}
	for _, p := range []string{"MBA", "BBA", "BCA", "B.Com Honors"} {
		if !strings.Contains(got, p) {
			t.Fatalf("reply missing %s: %q", p, got)
		}
	}
}

func TestFallbackRuleOrder(t *testing.T) {
	r := New(knowledge.Default(), nil, Options{})
	cases := []struct {
		query string
		want  string
	}{
		{"mba course details", mbaReply},
		{"bba program", bbaReply},
		{"bca course", bcaReply},
		{"b.com program", bcomReply},
		{"program list", programsReply},
		{"admission process", admissionReply},
		{"how do I apply", admissionReply},
		{"placement stats", placementReply},
		{"salary package", placementReply},
		{"library hours", libraryReply},
		{"hostel rooms", hostelReply},
		{"sports facility", facilitiesReply},
		{"contact number", contactReply},
		{"campus location", contactReply},
		{"pcte", DefaultReply},
		// course wins over admission when both appear
		{"admission for mba course", mbaReply},
	}
	for _, tc := range cases {
		if got := r.Fallback(tc.query); got != tc.want {
			t.Errorf("Fallback(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestRelevant(t *testing.T) {
	if !Relevant("Where is BADDOWAL?") {
		t.Fatalf("keyword match must be case-insensitive")
	}
	if !Relevant("fees due") {
		t.Fatalf("substring match expected for fee")
	}
	if Relevant("what's the weather today?") {
		t.Fatalf("unexpected relevance")
	}
}

func TestRulesAreNamedInOrder(t *testing.T) {
	var names []string
	for _, rule := range Rules(knowledge.Default()) {
		names = append(names, rule.Name)
	}
	want := "faq,programs,admission,placement,facilities,contact"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("rule order = %s, want %s", got, want)
	}
}
