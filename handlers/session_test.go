package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/umakantv/go-utils/cache"

	"goaltrack-service/models"
)

func newTestSessions(t *testing.T) *SessionManager {
	t.Helper()
	c, err := cache.New(cache.Config{Type: "memory"})
	if err != nil {
		t.Fatalf("memory cache: %v", err)
	}
	return NewSessionManager(c, "test-secret")
}

func TestSessionRoundTrip(t *testing.T) {
	sessions := newTestSessions(t)
	user := &models.User{ID: 7, FullName: "Alice", Email: "alice@example.com"}

	rec := httptest.NewRecorder()
	sessions.Issue(rec, user)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookieName {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be httpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])

	data, ok := sessions.Lookup(req)
	if !ok {
		t.Fatal("lookup failed for freshly issued session")
	}
	if data["user_id"] != 7 {
		t.Errorf("user_id = %v", data["user_id"])
	}
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	sessions := newTestSessions(t)
	rec := httptest.NewRecorder()
	sessions.Issue(rec, &models.User{ID: 7})
	cookie := rec.Result().Cookies()[0]

	tampered := *cookie
	tampered.Value = "x" + tampered.Value[1:]

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&tampered)
	if _, ok := sessions.Lookup(req); ok {
		t.Error("tampered cookie accepted")
	}

	// A cookie signed under a different secret is also refused.
	other := newTestSessions(t)
	req2 := httptest.NewRequest(http.MethodGet, "/me", nil)
	req2.AddCookie(cookie)
	if _, ok := other.Lookup(req2); ok {
		t.Error("cookie from another secret accepted")
	}
}

func TestSessionClear(t *testing.T) {
	sessions := newTestSessions(t)
	rec := httptest.NewRecorder()
	sessions.Issue(rec, &models.User{ID: 7})
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	clearRec := httptest.NewRecorder()
	sessions.Clear(clearRec, req)

	again := httptest.NewRequest(http.MethodGet, "/me", nil)
	again.AddCookie(cookie)
	if _, ok := sessions.Lookup(again); ok {
		t.Error("session survives logout")
	}

	expired := clearRec.Result().Cookies()
	if len(expired) != 1 || expired[0].MaxAge != -1 {
		t.Errorf("logout should expire the cookie, got %v", expired)
	}
}
