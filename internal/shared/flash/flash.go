package flash

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "flash"

	KindSuccess = "success"
	KindWarning = "warning"
)

// Message is a one-shot notification shown on the next rendered page.
type Message struct {
	Kind string
	Text string
}

type claims struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	jwt.RegisteredClaims
}

// Store signs flash messages into a short-lived cookie with HMAC-SHA256.
type Store struct {
	secret []byte
	ttl    time.Duration
}

func NewStore(secret string) *Store {
	return &Store{secret: []byte(secret), ttl: 5 * time.Minute}
}

// Set attaches msg to the response. It is read back by the next Pop.
func (s *Store) Set(c *gin.Context, kind, text string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Kind: kind,
		Text: text,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, signed, int(s.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Pop returns the pending message, if any, and clears the cookie.
// Tampered or expired cookies are dropped silently.
func (s *Store) Pop(c *gin.Context) *Message {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	msg, err := s.parse(raw)
	if err != nil {
		return nil
	}
	return msg
}

func (s *Store) parse(raw string) (*Message, error) {
	var cl claims
	token, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid flash token")
	}
	return &Message{Kind: cl.Kind, Text: cl.Text}, nil
}
