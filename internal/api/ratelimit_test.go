package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestRateLimiterSlidingWindow(t *testing.T) {
	now := time.Date(2025, time.October, 10, 9, 0, 0, 0, time.UTC)
	l := newRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatalf("first two hits should pass")
	}
	if l.Allow("a") {
		t.Fatalf("third hit inside the window should be rejected")
	}
	if !l.Allow("b") {
		t.Fatalf("keys are limited independently")
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Fatalf("hits outside the window should be forgotten")
	}
}

func TestRateLimiterPrunesIdleClients(t *testing.T) {
	now := time.Date(2025, time.October, 10, 9, 0, 0, 0, time.UTC)
	l := newRateLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i <= maxTrackedClients; i++ {
		l.Allow(fmt.Sprintf("client-%d", i))
	}
	now = now.Add(2 * time.Minute)
	l.Allow("fresh")
	if got := len(l.hits); got != 1 {
		t.Fatalf("tracked clients = %d, want 1", got)
	}
}

func TestChatMessagesAreRateLimited(t *testing.T) {
	srv := newTestServerWithOptions(t, nil, Options{ChatRateLimit: 2})
	id := srv.chats.Create().ID()
	path := "/api/chat/conversations/" + id + "/messages"

	for i := 0; i < 2; i++ {
		assertStatus(t, doJSONRequest(t, srv.router, http.MethodPost, path, map[string]string{"text": "pcte fees"}, nil), http.StatusOK)
	}
	assertStatus(t, doJSONRequest(t, srv.router, http.MethodPost, path, map[string]string{"text": "pcte fees"}, nil), http.StatusTooManyRequests)
}

func TestChatRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	srv := newTestServerWithOptions(t, nil, Options{ChatRateLimit: 2})
	id := srv.chats.Create().ID()
	path := "/api/chat/conversations/" + id + "/messages"

	allowed := 0
	for i := 0; i < 10; i++ {
		headers := map[string]string{"X-Forwarded-For": fmt.Sprintf("1.2.3.%d", i)}
		if doJSONRequest(t, srv.router, http.MethodPost, path, map[string]string{"text": "pcte fees"}, headers).Code == http.StatusOK {
			allowed++
		}
	}
	if allowed != 2 {
		t.Fatalf("allowed %d requests with rotating forwarded headers, want 2", allowed)
	}
}

func TestChatRateLimitUsesForwardedForFromTrustedProxy(t *testing.T) {
	// httptest requests arrive from 192.0.2.1
	srv := newTestServerWithOptions(t, nil, Options{ChatRateLimit: 1, TrustedProxies: []string{"192.0.2.1"}})
	id := srv.chats.Create().ID()
	path := "/api/chat/conversations/" + id + "/messages"

	for i := 0; i < 3; i++ {
		headers := map[string]string{"X-Forwarded-For": fmt.Sprintf("1.2.3.%d", i)}
		assertStatus(t, doJSONRequest(t, srv.router, http.MethodPost, path, map[string]string{"text": "pcte fees"}, headers), http.StatusOK)
	}
	repeat := map[string]string{"X-Forwarded-For": "1.2.3.0"}
	assertStatus(t, doJSONRequest(t, srv.router, http.MethodPost, path, map[string]string{"text": "pcte fees"}, repeat), http.StatusTooManyRequests)
}

func TestCreateConversationIsRateLimited(t *testing.T) {
	srv := newTestServerWithOptions(t, nil, Options{ChatRateLimit: 3})

	for i := 0; i < 3; i++ {
		assertStatus(t, doJSONRequest(t, srv.router, http.MethodPost, "/api/chat/conversations", nil, nil), http.StatusCreated)
	}
	assertStatus(t, doJSONRequest(t, srv.router, http.MethodPost, "/api/chat/conversations", nil, nil), http.StatusTooManyRequests)
	if got := srv.chats.Len(); got != 3 {
		t.Fatalf("conversations = %d, want 3", got)
	}
}
