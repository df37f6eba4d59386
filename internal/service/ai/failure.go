package ai

import (
	"context"
	"errors"
	"net"
	"strings"
)

// FailureKind groups generator failures for operator logs.
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureNoCredential FailureKind = "no_credential"
	FailureTimeout      FailureKind = "timeout"
	FailureCanceled     FailureKind = "canceled"
	FailureRateLimited  FailureKind = "rate_limited"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureMalformed    FailureKind = "malformed"
	FailureTransport    FailureKind = "transport"
	FailureProvider     FailureKind = "provider"
)

// Classify maps a generator error to a FailureKind. Provider SDKs surface HTTP
// status only inside their messages, so those are matched textually.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	switch {
	case errors.Is(err, ErrNoCredential):
		return FailureNoCredential
	case errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, context.Canceled):
		return FailureCanceled
	case errors.Is(err, ErrEmptyCompletion):
		return FailureMalformed
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureTransport
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "429", "rate limit", "resource_exhausted", "quota"):
		return FailureRateLimited
	case containsAny(msg, "401", "403", "unauthorized", "permission_denied", "api key", "unauthenticated"):
		return FailureUnauthorized
	case containsAny(msg, "unmarshal", "invalid character", "unexpected end of json", "malformed"):
		return FailureMalformed
	case containsAny(msg, "connection refused", "no such host", "connection reset", "eof"):
		return FailureTransport
	}
	return FailureProvider
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
