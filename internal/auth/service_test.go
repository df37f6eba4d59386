package auth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"feebank/internal/config"
	"feebank/internal/models"
	"feebank/internal/redis"
)

func TestLoginValidateLogout(t *testing.T) {
	svc := NewService(NewMemoryStore(nil), time.Hour)
	ctx := context.Background()

	session, err := svc.Login(ctx, "vinayak", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token == "" || session.StudentID != DemoStudentID || session.Username != "vinayak" {
		t.Fatalf("unexpected session: %+v", session)
	}

	got, err := svc.Validate(ctx, session.Token)
	if err != nil || got.StudentID != DemoStudentID {
		t.Fatalf("Validate: %+v %v", got, err)
	}
	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Validate(ctx, session.Token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}
	if err := svc.Logout(ctx, "unknown"); err != nil {
		t.Fatalf("logout of unknown token should be a no-op: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(NewMemoryStore(nil), time.Hour)
	for _, tc := range []struct{ user, pass string }{
		{"", "secret1"},
		{"   ", "secret1"},
		{"vinayak", "12345"},
	} {
		if _, err := svc.Login(context.Background(), tc.user, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.user, tc.pass, err)
		}
	}
}

func TestLoginBindsKnownStudent(t *testing.T) {
	svc := NewService(NewMemoryStore(nil), time.Hour).WithStudentLookup(func(_ context.Context, id string) bool {
		return id == "2022MBA0042"
	})
	session, err := svc.Login(context.Background(), "2022mba0042", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.StudentID != "2022MBA0042" {
		t.Fatalf("expected known student id, got %s", session.StudentID)
	}
	other, err := svc.Login(context.Background(), "guest", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if other.StudentID != DemoStudentID {
		t.Fatalf("expected demo student id, got %s", other.StudentID)
	}
}

func TestValidateExpiredSession(t *testing.T) {
	store := NewMemoryStore(nil)
	svc := NewService(store, 10*time.Millisecond)
	session, err := svc.Login(context.Background(), "vinayak", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := svc.Validate(context.Background(), session.Token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, err := store.Load(context.Background(), session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expired session not purged")
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore(nil)
	now := time.Now().UTC()
	_ = store.Save(context.Background(), &models.Session{Token: "old", ExpiresAt: now.Add(-time.Minute)})
	_ = store.Save(context.Background(), &models.Session{Token: "live", ExpiresAt: now.Add(time.Minute)})
	if removed := store.Sweep(now); removed != 1 {
		t.Fatalf("expected 1 swept, got %d", removed)
	}
	if _, err := store.Load(context.Background(), "live"); err != nil {
		t.Fatalf("live session swept: %v", err)
	}
}

func TestMiddlewareGatesProtectedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryStore(nil), time.Hour)
	session, err := svc.Login(context.Background(), "vinayak", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	router := gin.New()
	router.GET("/protected", svc.Middleware(), func(c *gin.Context) {
		s, ok := SessionFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"student_id": s.StudentID})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: svc.AuthCookieName(), Value: session.Token})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d", rec.Code)
	}
}

func TestCSRFMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryStore(nil), time.Hour)
	router := gin.New()
	router.Use(svc.CSRFMiddleware())
	router.GET("/read", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/write", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name   string
		method string
		path   string
		header string
		cookie string
		bearer bool
		want   int
	}{
		{"safe method", http.MethodGet, "/read", "", "", false, http.StatusOK},
		{"missing token", http.MethodPost, "/write", "", "", false, http.StatusForbidden},
		{"mismatch", http.MethodPost, "/write", "a", "b", false, http.StatusForbidden},
		{"match", http.MethodPost, "/write", "tok", "tok", false, http.StatusOK},
		{"bearer exempt", http.MethodPost, "/write", "", "", true, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.header != "" {
			req.Header.Set(svc.CSRFHeaderName(), tc.header)
		}
		if tc.cookie != "" {
			req.AddCookie(&http.Cookie{Name: svc.CSRFCookieName(), Value: tc.cookie})
		}
		if tc.bearer {
			req.Header.Set("Authorization", "Bearer abc")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s: got %d want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	client := newRedisTestClient(t)
	defer client.Close()

	store := NewRedisStore(client)
	store.prefix = "feebank:test:" + strconv.FormatInt(time.Now().UnixNano(), 10) + ":"
	svc := NewService(store, time.Hour)
	ctx := context.Background()

	session, err := svc.Login(ctx, "vinayak", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	ttl, err := client.TTL(ctx, store.key(session.Token))
	if err != nil || ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected ttl %v err %v", ttl, err)
	}
	got, err := svc.Validate(ctx, session.Token)
	if err != nil || got.Token != session.Token || got.StudentID != DemoStudentID {
		t.Fatalf("Validate via redis: %+v %v", got, err)
	}
	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Validate(ctx, session.Token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func newRedisTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis-backed session tests")
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("atoi port: %v", err)
	}
	client, err := redis.NewClient(context.Background(), config.RedisConfig{Host: host, Port: port})
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	return client
}
