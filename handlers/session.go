package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/cache"

	"goaltrack-service/models"
)

const (
	sessionCookieName = "session_id"
	sessionKeyPrefix  = "session:"
	sessionTTL        = 7 * 24 * time.Hour
)

// SessionManager issues and validates cookie sessions. Session IDs are
// random UUIDs signed with the configured secret; session data lives
// in the cache under the raw id, so a forged cookie fails the
// signature check before the cache is ever consulted.
type SessionManager struct {
	cache  cache.Cache
	secret []byte
}

func NewSessionManager(c cache.Cache, secret string) *SessionManager {
	return &SessionManager{cache: c, secret: []byte(secret)}
}

// Issue stores a session for the user and sets the httpOnly cookie.
func (m *SessionManager) Issue(w http.ResponseWriter, user *models.User) {
	sessionID := uuid.New().String()
	sessionData := map[string]interface{}{
		"user_id":   user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
	}
	m.cache.Set(sessionKeyPrefix+sessionID, sessionData, sessionTTL)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    m.sign(sessionID),
		Path:     "/",
		HttpOnly: true,  // Prevent JS access
		Secure:   false, // True in prod HTTPS
		MaxAge:   int(sessionTTL.Seconds()),
	})
}

// Lookup resolves the request's session cookie to the stored session
// data. Returns false on a missing cookie, bad signature, or expired
// session.
func (m *SessionManager) Lookup(r *http.Request) (map[string]interface{}, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, false
	}
	sessionID, ok := m.verify(cookie.Value)
	if !ok {
		return nil, false
	}
	cached, err := m.cache.Get(sessionKeyPrefix + sessionID)
	if err != nil {
		return nil, false
	}
	data, ok := cached.(map[string]interface{})
	return data, ok
}

// Clear drops the session from the cache and expires the cookie.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if sessionID, ok := m.verify(cookie.Value); ok {
			m.cache.Delete(sessionKeyPrefix + sessionID)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// sign produces "<id>.<hex hmac>" for the cookie value.
func (m *SessionManager) sign(sessionID string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(sessionID))
	return sessionID + "." + hex.EncodeToString(mac.Sum(nil))
}

// verify checks the cookie signature and returns the raw session id.
func (m *SessionManager) verify(value string) (string, bool) {
	sessionID, sig, found := strings.Cut(value, ".")
	if !found {
		return "", false
	}
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(sessionID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", false
	}
	return sessionID, true
}
