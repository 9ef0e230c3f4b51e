package common

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const compareSessionContextKey contextKey = "compareSession"

var (
	// ErrMissingToken is returned when no bearer token accompanies a request.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when a token fails signature or claim checks.
	ErrInvalidToken = errors.New("invalid compare session token")
)

// ContextWithSession stores the compare session id into context.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, compareSessionContextKey, sessionID)
}

// SessionFromContext extracts the compare session id from context.
func SessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(compareSessionContextKey).(string)
	return id, ok && id != ""
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	const bearerPrefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// SessionTokens issues and verifies HS256 tokens whose subject is a compare session id.
type SessionTokens struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewSessionTokens returns a token codec for the given secret and issuer.
func NewSessionTokens(secret []byte, issuer string) *SessionTokens {
	return &SessionTokens{
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs a token for sessionID valid until expiresAt.
func (t *SessionTokens) Issue(sessionID string, expiresAt time.Time) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign compare session token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns the session id it carries.
func (t *SessionTokens) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
		jwt.WithLeeway(30 * time.Second),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
