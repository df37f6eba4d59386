package resolver

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"feebank/internal/knowledge"
	"feebank/internal/models"
	"feebank/internal/service/ai"
)

// Resolution is a reply together with how it was produced.
type Resolution struct {
	Text    string             `json:"text"`
	Source  models.ReplySource `json:"source"`
	Failure ai.FailureKind     `json:"failure,omitempty"`
}

// Degraded reports whether an in-domain query was answered without the generator.
func (r Resolution) Degraded() bool {
	return r.Source == models.SourceFallback
}

type Options struct {
	// Timeout bounds a single generator call. Zero leaves only the caller's deadline.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Resolver maps one query to one reply. It holds no per-call state, so a
// single Resolver serves every conversation.
type Resolver struct {
	kb      *knowledge.Base
	gen     ai.Generator
	rules   []Rule
	timeout time.Duration
	logger  *zap.Logger
}

// New builds a resolver. gen may be nil, which keeps the resolver in fallback
// mode permanently. Pass a nil interface, not a typed nil pointer.
func New(kb *knowledge.Base, gen ai.Generator, opts Options) *Resolver {
	if kb == nil {
		kb = knowledge.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		kb:      kb,
		gen:     gen,
		rules:   Rules(kb),
		timeout: opts.Timeout,
		logger:  logger,
	}
}

// GenerativeEnabled reports whether a generator is configured.
func (r *Resolver) GenerativeEnabled() bool {
	return r.gen != nil
}

// Resolve returns the reply text for query. It never fails.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	return r.ResolveDetailed(ctx, query).Text
}

// ResolveDetailed runs the relevance gate, then the generator, then the
// fallback rules, stopping at the first step that produces a reply.
func (r *Resolver) ResolveDetailed(ctx context.Context, query string) Resolution {
	query = strings.TrimSpace(query)
	if !Relevant(query) {
		return Resolution{Text: RedirectReply, Source: models.SourceRedirect}
	}
	if r.gen == nil {
		return Resolution{Text: r.Fallback(query), Source: models.SourceFallback, Failure: ai.FailureNoCredential}
	}

	text, err := r.generate(ctx, query)
	if err != nil {
		kind := ai.Classify(err)
		r.logger.Warn("generative reply failed, answering from fallback rules",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return Resolution{Text: r.Fallback(query), Source: models.SourceFallback, Failure: kind}
	}
	return Resolution{Text: text, Source: models.SourceGenerative}
}

func (r *Resolver) generate(ctx context.Context, query string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	text, err := r.gen.Generate(ctx, r.Prompt(query))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ai.ErrEmptyCompletion
	}
	return text, nil
}

// Prompt concatenates the system context block with the raw query.
func (r *Resolver) Prompt(query string) string {
	return r.kb.SystemContext() + "\n\nUser Query: " + query + "\n\nResponse:"
}

// Fallback answers from the local rule table without any network access.
func (r *Resolver) Fallback(query string) string {
	q := newQuery(query)
	for _, rule := range r.rules {
		if rule.Match(q) {
			return rule.Respond(q)
		}
	}
	return DefaultReply
}
