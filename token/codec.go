// Package token signs and parses the self-contained session tokens that
// carry all authentication state. Nothing is stored server-side: trust
// derives from the HMAC signature and the embedded expiry alone, so a
// token cannot be revoked before it expires.
package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

// Attributes are the denormalized identity fields embedded in a token for
// the client's convenience. They are trusted at issuance only and are not
// re-verified against the store, so they can go stale until the token
// expires. Authorization decisions rely solely on the subject.
type Attributes struct {
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"name,omitempty"`
}

// Claims is the decoded token payload.
type Claims struct {
	jwtlib.RegisteredClaims
	Attributes
}

// Codec issues and validates signed session tokens. The secret and
// lifetime are fixed at construction and immutable for the process
// lifetime.
type Codec struct {
	secret   []byte
	lifetime time.Duration
	nowTime  func() time.Time
}

// CodecOption modifies a Codec instance.
type CodecOption func(*Codec)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowTime = nowFunc
	}
}

// NewCodec creates a Codec signing with the given secret. Tokens expire
// lifetime after issuance.
func NewCodec(secret []byte, lifetime time.Duration, options ...CodecOption) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("[NewCodec] signing secret is required")
	}
	if lifetime <= 0 {
		return nil, errors.New("[NewCodec] token lifetime must be positive")
	}

	codec := &Codec{
		secret:   secret,
		lifetime: lifetime,
		nowTime:  time.Now,
	}

	for _, opt := range options {
		opt(codec)
	}

	return codec, nil
}

// Issue creates a signed token asserting the given subject, with the
// denormalized attributes embedded as claims.
func (c *Codec) Issue(subject string, attrs Attributes) (string, error) {
	now := c.nowTime()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.lifetime)),
			ID:        uuid.New().String(),
		},
		Attributes: attrs,
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to sign token")
	}
	return signed, nil
}

// Validate parses raw, verifies the signature over the original encoded
// bytes and checks expiry. It fails closed: on any failure no claims are
// returned. An expired but otherwise sound token yields ErrTokenExpired;
// a bad signature or malformed structure yields ErrTokenInvalid. A token
// inspected at exactly its expiry instant counts as expired.
func (c *Codec) Validate(raw string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwtlib.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(c.nowTime),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if !parsed.Valid || claims.Subject == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// Lifetime returns the configured token lifetime.
func (c *Codec) Lifetime() time.Duration {
	return c.lifetime
}
