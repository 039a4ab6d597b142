// Package token encodes the session profile as an unsigned JWT. The blob is
// readable by anyone who holds it and carries no signature: it is an identity
// cache for the UI, not a credential. The server authorizes every request on
// its own; this payload only rides along as the bearer value.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// Codec implements ports.SessionCodec with alg=none JWTs.
type Codec struct{}

func NewCodec() Codec {
	return Codec{}
}

// Encode serialises the session's identity fields into the blob.
func (Codec) Encode(s *domain.Session) (string, error) {
	if s == nil {
		return "", fmt.Errorf("encode session: nil session")
	}
	claims := jwt.MapClaims{
		"id":       s.UserID,
		"username": s.Username,
		"email":    s.Email,
		"role":     s.Role,
		"isBanned": s.Banned,
		"score":    s.Score,
	}
	if s.PhoneNumber != "" {
		claims["phoneNumber"] = s.PhoneNumber
	}
	t := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	return t.SignedString(jwt.UnsafeAllowNoneSignatureType)
}

// Decode reverses Encode. Any malformed blob yields an error; callers treat
// that as "no session" and purge the store.
func (Codec) Decode(blob string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(blob, claims); err != nil {
		return nil, fmt.Errorf("decode session blob: %w", err)
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, fmt.Errorf("decode session blob: missing user id")
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return nil, fmt.Errorf("decode session blob: missing username")
	}

	s := &domain.Session{
		UserID:   int64(id),
		Username: username,
	}
	s.Email, _ = claims["email"].(string)
	s.Role, _ = claims["role"].(string)
	s.Banned, _ = claims["isBanned"].(bool)
	s.Score, _ = claims["score"].(float64)
	s.PhoneNumber, _ = claims["phoneNumber"].(string)
	return s, nil
}
