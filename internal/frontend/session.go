package frontend

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WebSessionCookieName is the frontend's own session cookie, independent of
// the backend's session store. It carries the user id returned by backend
// login as a signed token.
const WebSessionCookieName = "web_session"

// SessionCookie signs and verifies the frontend session cookie.
type SessionCookie struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// NewSessionCookie creates a new SessionCookie instance
func NewSessionCookie(secretKey string, expiration time.Duration) *SessionCookie {
	return &SessionCookie{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Issue creates a signed token carrying the given user id.
func (s *SessionCookie) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.Exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SecretKey))
}

// UserID parses the token string and returns the user id if valid.
func (s *SessionCookie) UserID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if userID, ok := claims["user_id"].(string); ok {
			return userID, nil
		}
		return "", errors.New("user_id not found in token")
	}
	return "", errors.New("invalid token")
}

// UserIDFromRequest extracts and verifies the session cookie from a request.
// Returns an empty string when no valid session is present.
func (s *SessionCookie) UserIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(WebSessionCookieName)
	if err != nil {
		return ""
	}
	userID, err := s.UserID(cookie.Value)
	if err != nil {
		return ""
	}
	return userID
}
