package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"feebank/internal/config"
)

type fakeChatModel struct {
	reply string
	err   error
	input []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{Role: schema.Assistant, Content: f.reply}, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func TestNewGeneratorWithoutKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), "gemini", config.ProviderConfig{Model: "gemini-2.0-flash"})
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, err := NewGenerator(context.Background(), "llama", config.ProviderConfig{APIKey: "k"})
	if err == nil || errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected invalid provider error, got %v", err)
	}
}

func TestGenerateSendsSingleUserMessage(t *testing.T) {
	fake := &fakeChatModel{reply: "  answer  "}
	gen := NewChatGenerator(fake, "gemini", "test-model")

	got, err := gen.Generate(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "  answer  " {
		t.Fatalf("completion should be returned untouched, got %q", got)
	}
	if len(fake.input) != 1 || fake.input[0].Role != schema.User || fake.input[0].Content != "prompt text" {
		t.Fatalf("unexpected model input: %+v", fake.input)
	}
	if gen.Provider() != "gemini" || gen.Model() != "test-model" {
		t.Fatalf("unexpected generator identity")
	}
}

func TestGenerateEmptyCompletion(t *testing.T) {
	gen := NewChatGenerator(&fakeChatModel{reply: " \n"}, "openai", "m")
	if _, err := gen.Generate(context.Background(), "p"); !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestGenerateWrapsModelError(t *testing.T) {
	gen := NewChatGenerator(&fakeChatModel{err: context.DeadlineExceeded}, "claude", "m")
	_, err := gen.Generate(context.Background(), "p")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped deadline error, got %v", err)
	}
	if Classify(err) != FailureTimeout {
		t.Fatalf("expected timeout kind, got %s", Classify(err))
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want FailureKind
	}{
		{nil, FailureNone},
		{ErrNoCredential, FailureNoCredential},
		{fmt.Errorf("generate completion: %w", context.Canceled), FailureCanceled},
		{ErrEmptyCompletion, FailureMalformed},
		{errors.New("Error 429: Resource has been exhausted (e.g. check quota)."), FailureRateLimited},
		{errors.New("Error 403, Message: API key not valid"), FailureUnauthorized},
		{errors.New("invalid character '<' looking for beginning of value"), FailureMalformed},
		{errors.New("dial tcp: lookup example.invalid: no such host"), FailureTransport},
		{errors.New("Error 500, Message: internal"), FailureProvider},
	}
	for _, tc := range cases {
		if got := Classify(tc.err); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
