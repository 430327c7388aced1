package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"sopclassify/internal/config"
	"sopclassify/internal/model"
)

const issuer = "sopclassify"

// ErrNotAuthenticated is returned when no valid session token is present.
var ErrNotAuthenticated = errors.New("not authenticated")

// Claims is the JWT payload carried by the session cookie.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and parses signed session tokens and builds the cookie
// that carries them. Tokens are HS256 JWTs; the parse side pins the
// signing method so an attacker cannot downgrade to "none".
type Codec struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewCodec builds a session codec from config. secure controls the
// cookie's Secure attribute (on in production).
func NewCodec(cfg config.SessionConfig, secure bool) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	name := cfg.CookieName
	if name == "" {
		name = "session"
	}
	ttl := time.Duration(cfg.TTLSec) * time.Second
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Codec{
		secret:     []byte(cfg.Secret),
		cookieName: name,
		ttl:        ttl,
		secure:     secure,
	}, nil
}

// CookieName returns the name of the session cookie.
func (c *Codec) CookieName() string { return c.cookieName }

// Issue signs a token for the given session record.
func (c *Codec) Issue(rec *model.SessionRecord) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: rec.Email,
		Role:  rec.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   rec.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the session record it carries.
// Expired, tampered, or otherwise unparseable tokens all map to
// ErrNotAuthenticated.
func (c *Codec) Parse(token string) (*model.SessionRecord, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil || !parsed.Valid {
		return nil, ErrNotAuthenticated
	}

	return &model.SessionRecord{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// Cookie builds the Set-Cookie value for a signed token.
func (c *Codec) Cookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     c.cookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   c.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(c.ttl.Seconds()),
	}
}

// ExpiredCookie builds a cookie that clears the session unconditionally.
func (c *Codec) ExpiredCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     c.cookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   c.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	}
}
