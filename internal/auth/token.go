// Package auth implements the session gate: an opaque bearer token that
// embeds its issue time and a shared secret, carried in an HTTP-only cookie.
// Validity is recomputed from the token content alone, so there is no
// server-side session table and no revocation short of rotating the secret.
package auth

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// CookieName is the name of the session cookie.
const CookieName = "auth-token"

// TokenMaxAge is how long an issued token stays valid.
const TokenMaxAge = 24 * time.Hour

// TokenCodec issues and verifies session tokens for a configured secret.
type TokenCodec struct {
	secret string
}

// NewTokenCodec returns a TokenCodec using the given shared secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: secret}
}

// Issue produces a new token embedding the current time:
// base64 of "<unix-millis>-<secret>".
func (c *TokenCodec) Issue() string {
	raw := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + c.secret
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Verify reports whether token is currently valid. It fails closed:
// decode errors, a structure other than exactly two dash-delimited parts,
// a non-numeric timestamp, a secret mismatch or an age beyond TokenMaxAge
// all yield false.
func (c *TokenCodec) Verify(token string) bool {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}

	parts := strings.Split(string(decoded), "-")
	if len(parts) != 2 {
		return false
	}

	issued, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}
	if parts[1] != c.secret {
		return false
	}

	age := time.Now().UnixMilli() - issued
	return age <= TokenMaxAge.Milliseconds()
}

// IsAuthenticated reports whether the raw Cookie header of a request
// carries a currently valid session token. It is a pure function of the
// header and the configured secret.
func (c *TokenCodec) IsAuthenticated(cookieHeader string) bool {
	if cookieHeader == "" {
		return false
	}

	for _, part := range strings.Split(cookieHeader, ";") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, CookieName+"=") {
			continue
		}
		token := strings.TrimPrefix(part, CookieName+"=")
		if token == "" {
			return false
		}
		return c.Verify(token)
	}

	return false
}
