// Package sessions implements the client-held session: a small signed blob
// carrying the authenticated identity, UI locale, one-shot flash message
// and post-login redirect target. The blob is an HS256 JWT stored in a
// cookie, so it is tamper-evident but not encrypted, and no server-side
// session state exists.
package sessions

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"campus-market/i18n"
	"campus-market/infra"
)

const (
	CookieName = "session"
	contextKey = "session"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Session struct {
	User     *User  `json:"user,omitempty"`
	Lang     string `json:"lang,omitempty"`
	Flash    *Flash `json:"flash,omitempty"`
	ReturnTo string `json:"returnTo,omitempty"`
}

func (s *Session) LoggedIn() bool {
	return s.User != nil
}

func (s *Session) SetFlash(kind, message string) {
	s.Flash = &Flash{Type: kind, Message: message}
}

// PopFlash returns the flash and clears it; a flash is read at most once.
func (s *Session) PopFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

type sessionClaims struct {
	User     *User  `json:"user,omitempty"`
	Lang     string `json:"lang,omitempty"`
	Flash    *Flash `json:"flash,omitempty"`
	ReturnTo string `json:"returnTo,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies with the server secret.
type Manager struct {
	secret []byte
	maxAge time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), maxAge: 24 * time.Hour}
}

// Decode parses a session token. Missing, tampered or expired tokens all
// yield a fresh session with the default locale.
func (m *Manager) Decode(tokenString string) *Session {
	fresh := &Session{Lang: i18n.DefaultLocale}
	if tokenString == "" {
		return fresh
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return fresh
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return fresh
	}
	return &Session{
		User:     claims.User,
		Lang:     i18n.Normalize(claims.Lang),
		Flash:    claims.Flash,
		ReturnTo: claims.ReturnTo,
	}
}

func (m *Manager) encode(sess *Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		User:     sess.User,
		Lang:     sess.Lang,
		Flash:    sess.Flash,
		ReturnTo: sess.ReturnTo,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	})
	return token.SignedString(m.secret)
}

// Save re-signs the session and writes it back to the response, replacing
// any session cookie set earlier in the same request.
func (m *Manager) Save(c *gin.Context, sess *Session) {
	token, err := m.encode(sess)
	if err != nil {
		infra.Logger().Errorf("encode session: %v", err)
		return
	}
	m.setCookie(c, token, int(m.maxAge.Seconds()))
}

// Clear drops the session cookie entirely (logout).
func (m *Manager) Clear(c *gin.Context) {
	m.setCookie(c, "", -1)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	header := c.Writer.Header()
	existing := header.Values("Set-Cookie")
	header.Del("Set-Cookie")
	for _, v := range existing {
		if !strings.HasPrefix(v, CookieName+"=") {
			header.Add("Set-Cookie", v)
		}
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current returns the request's session as resolved by the session middleware.
func Current(c *gin.Context) *Session {
	if v, exists := c.Get(contextKey); exists {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return &Session{Lang: i18n.DefaultLocale}
}

// Attach stores the resolved session on the request context.
func Attach(c *gin.Context, sess *Session) {
	c.Set(contextKey, sess)
}
