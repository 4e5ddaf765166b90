package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionCookie_IssueAndParse(t *testing.T) {
	sc := NewSessionCookie("secret", time.Hour)

	token, err := sc.Issue("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := sc.UserID(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestSessionCookie_WrongSecret(t *testing.T) {
	token, err := NewSessionCookie("secret", time.Hour).Issue("user-123")
	assert.NoError(t, err)

	_, err = NewSessionCookie("other", time.Hour).UserID(token)
	assert.Error(t, err)
}

func TestSessionCookie_Expired(t *testing.T) {
	sc := NewSessionCookie("secret", -time.Minute)

	token, err := sc.Issue("user-123")
	assert.NoError(t, err)

	_, err = sc.UserID(token)
	assert.Error(t, err)
}

func TestSessionCookie_Garbage(t *testing.T) {
	sc := NewSessionCookie("secret", time.Hour)

	_, err := sc.UserID("not.a.token")
	assert.Error(t, err)
}

func TestSessionCookie_UserIDFromRequest(t *testing.T) {
	sc := NewSessionCookie("secret", time.Hour)

	t.Run("valid cookie", func(t *testing.T) {
		token, err := sc.Issue("user-123")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: WebSessionCookieName, Value: token})

		assert.Equal(t, "user-123", sc.UserIDFromRequest(req))
	})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, sc.UserIDFromRequest(req))
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: WebSessionCookieName, Value: "tampered"})
		assert.Empty(t, sc.UserIDFromRequest(req))
	})
}
