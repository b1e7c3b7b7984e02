package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/token"
)

const (
	testSecret   = "test-signing-secret"
	testSubject  = "identity-1"
	testLifetime = time.Hour
)

func newTestCodec(t *testing.T, options ...token.CodecOption) *token.Codec {
	t.Helper()

	codec, err := token.NewCodec([]byte(testSecret), testLifetime, options...)
	require.NoError(t, err)
	return codec
}

// TestNewCodec_RequiresSecret tests that an empty secret is rejected
func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := token.NewCodec(nil, testLifetime)
	require.Error(t, err)
	require.Contains(t, err.Error(), "secret")
}

// TestNewCodec_RequiresPositiveLifetime tests lifetime validation
func TestNewCodec_RequiresPositiveLifetime(t *testing.T) {
	_, err := token.NewCodec([]byte(testSecret), 0)
	require.Error(t, err)

	_, err = token.NewCodec([]byte(testSecret), -time.Minute)
	require.Error(t, err)
}

// TestIssueValidate_RoundTrip tests that an issued token validates and
// returns the embedded claims
func TestIssueValidate_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue(testSubject, token.Attributes{
		Phone:    "0900000001",
		Username: "admin",
		FullName: "Site Admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.Validate(raw)
	require.NoError(t, err)
	require.Equal(t, testSubject, claims.Subject)
	require.Equal(t, "0900000001", claims.Phone)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "Site Admin", claims.FullName)
	require.NotEmpty(t, claims.ID, "Each token should carry a unique id")
}

// TestValidate_Idempotent tests that validation has no side effects and
// repeated validation of the same token yields the same result
func TestValidate_Idempotent(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)

	first, err := codec.Validate(raw)
	require.NoError(t, err)
	second, err := codec.Validate(raw)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestValidate_Expired tests that a token past its lifetime yields
// ErrTokenExpired
func TestValidate_Expired(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt

	codec := newTestCodec(t, token.WithNowTime(func() time.Time { return now }))

	raw, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)

	// Just before expiry the token is still good
	now = issuedAt.Add(testLifetime - time.Second)
	_, err = codec.Validate(raw)
	require.NoError(t, err)

	// At exactly the expiry instant the token is already expired
	now = issuedAt.Add(testLifetime)
	_, err = codec.Validate(raw)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)

	now = issuedAt.Add(testLifetime + time.Hour)
	_, err = codec.Validate(raw)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestValidate_TamperedSignature tests that modifying the signature
// segment invalidates the token
func TestValidate_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Validate(tampered)
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

// TestValidate_TamperedPayload tests that modifying the claims segment
// invalidates the token
func TestValidate_TamperedPayload(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = codec.Validate(tampered)
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

// TestValidate_WrongSecret tests that a token signed under one secret is
// rejected by a codec holding a different secret
func TestValidate_WrongSecret(t *testing.T) {
	codec := newTestCodec(t)

	other, err := token.NewCodec([]byte("a-different-secret"), testLifetime)
	require.NoError(t, err)

	raw, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)

	_, err = other.Validate(raw)
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

// TestValidate_Garbage tests that non-token input is rejected as invalid
func TestValidate_Garbage(t *testing.T) {
	codec := newTestCodec(t)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Validate(raw)
		require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	}
}

// TestValidate_MissingSubject tests that a signed token without a subject
// is rejected
func TestValidate_MissingSubject(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue("", token.Attributes{})
	require.NoError(t, err)

	_, err = codec.Validate(raw)
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

// TestIssue_UniqueTokenIDs tests that consecutive tokens for the same
// subject differ
func TestIssue_UniqueTokenIDs(t *testing.T) {
	codec := newTestCodec(t)

	first, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)
	second, err := codec.Issue(testSubject, token.Attributes{})
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

// TestLifetime tests the lifetime accessor
func TestLifetime(t *testing.T) {
	codec := newTestCodec(t)
	require.Equal(t, testLifetime, codec.Lifetime())
}
