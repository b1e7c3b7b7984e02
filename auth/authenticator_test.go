package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/auth"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity/repofake"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

const (
	testPhone    = "0900000001"
	testUsername = "admin"
	testFullName = "Site Admin"
	testPassword = "Abc12345"
)

type testFixture struct {
	repo          *repofake.FakeIdentityRepo
	hasher        *identity.Hasher
	authenticator *auth.Authenticator
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	repo := repofake.NewFakeIdentityRepo()
	hasher := identity.NewHasher(bcrypt.MinCost)

	authenticator, err := auth.NewAuthenticator(repo, hasher)
	require.NoError(t, err)

	return &testFixture{
		repo:          repo,
		hasher:        hasher,
		authenticator: authenticator,
	}
}

func (f *testFixture) registerDefault(t *testing.T) *identity.Identity {
	t.Helper()

	id, err := f.authenticator.Register(context.Background(), auth.RegistrationParams{
		PhoneNumber: testPhone,
		Username:    testUsername,
		FullName:    testFullName,
		Password:    testPassword,
	})
	require.NoError(t, err)
	return id
}

// TestNewAuthenticator_MissingDependencies tests constructor validation
func TestNewAuthenticator_MissingDependencies(t *testing.T) {
	hasher := identity.NewHasher(bcrypt.MinCost)

	_, err := auth.NewAuthenticator(nil, hasher)
	require.Error(t, err)
	require.Contains(t, err.Error(), "identity repo is required")

	_, err = auth.NewAuthenticator(repofake.NewFakeIdentityRepo(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hasher is required")
}

// TestRegister_Success tests registering a new identity
func TestRegister_Success(t *testing.T) {
	f := setupTestFixture(t)

	id := f.registerDefault(t)

	require.NotEmpty(t, id.ID)
	require.Equal(t, testPhone, id.PhoneNumber)
	require.Equal(t, testUsername, id.Username)
	require.Equal(t, testFullName, id.FullName)
	require.True(t, id.Active)
	require.NotEmpty(t, id.CredentialHash)
	require.NotEqual(t, testPassword, id.CredentialHash, "Password must never be stored in plaintext")
}

// TestRegister_RequiresPhoneNumber tests that phone number is mandatory
func TestRegister_RequiresPhoneNumber(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.authenticator.Register(context.Background(), auth.RegistrationParams{
		Username: testUsername,
		Password: testPassword,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "phone number is required")
}

// TestRegister_WeakPassword tests password strength enforcement
func TestRegister_WeakPassword(t *testing.T) {
	f := setupTestFixture(t)

	weakPasswords := []string{
		"",
		"short1A",  // too short
		"abc12345", // no uppercase
		"ABC12345", // no lowercase
		"Abcdefgh", // no digit
	}

	for _, password := range weakPasswords {
		_, err := f.authenticator.Register(context.Background(), auth.RegistrationParams{
			PhoneNumber: testPhone,
			Password:    password,
		})
		require.Error(t, err, "password %q should be rejected", password)
	}
}

// TestRegister_DuplicatePhone tests duplicate phone number rejection
func TestRegister_DuplicatePhone(t *testing.T) {
	f := setupTestFixture(t)
	f.registerDefault(t)

	_, err := f.authenticator.Register(context.Background(), auth.RegistrationParams{
		PhoneNumber: testPhone,
		Username:    "someone-else",
		Password:    testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateIdentifier)
}

// TestRegister_DuplicateUsername tests duplicate username rejection
func TestRegister_DuplicateUsername(t *testing.T) {
	f := setupTestFixture(t)
	f.registerDefault(t)

	_, err := f.authenticator.Register(context.Background(), auth.RegistrationParams{
		PhoneNumber: "0900000002",
		Username:    testUsername,
		Password:    testPassword,
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateIdentifier)
}

// TestAuthenticate_ByPhoneAndUsername tests that either registered
// identifier authenticates the same identity
func TestAuthenticate_ByPhoneAndUsername(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.registerDefault(t)

	byPhone, err := f.authenticator.Authenticate(context.Background(), testPhone, testPassword)
	require.NoError(t, err)
	require.Equal(t, registered.ID, byPhone.ID)

	byUsername, err := f.authenticator.Authenticate(context.Background(), testUsername, testPassword)
	require.NoError(t, err)
	require.Equal(t, registered.ID, byUsername.ID)
}

// TestAuthenticate_FailuresAreIndistinguishable tests that unknown
// identifier, wrong password and deactivated account all yield the same
// error, so callers cannot probe which identifiers exist
func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	f := setupTestFixture(t)
	f.registerDefault(t)

	deactivated, err := f.authenticator.Register(context.Background(), auth.RegistrationParams{
		PhoneNumber: "0900000002",
		Password:    testPassword,
	})
	require.NoError(t, err)
	require.NoError(t, f.authenticator.Deactivate(context.Background(), deactivated.ID))

	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{"unknown identifier", "0999999999", testPassword},
		{"wrong password", testPhone, "Wrong12345"},
		{"deactivated account", "0900000002", testPassword},
		{"empty identifier", "", testPassword},
		{"empty password", testPhone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.authenticator.Authenticate(context.Background(), tt.identifier, tt.password)
			require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			require.EqualError(t, err, apperrors.ErrInvalidCredentials.Error())
		})
	}
}

// TestAuthenticate_NoLockout tests that repeated failures do not lock the
// account out
func TestAuthenticate_NoLockout(t *testing.T) {
	f := setupTestFixture(t)
	f.registerDefault(t)

	for i := 0; i < 3; i++ {
		_, err := f.authenticator.Authenticate(context.Background(), testPhone, "Wrong12345")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	id, err := f.authenticator.Authenticate(context.Background(), testPhone, testPassword)
	require.NoError(t, err)
	require.Equal(t, testPhone, id.PhoneNumber)
}

// TestAuthenticate_CaseSensitiveIdentifier tests exact identifier matching
func TestAuthenticate_CaseSensitiveIdentifier(t *testing.T) {
	f := setupTestFixture(t)
	f.registerDefault(t)

	_, err := f.authenticator.Authenticate(context.Background(), "ADMIN", testPassword)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// TestChangePassword_Success tests the re-hash path
func TestChangePassword_Success(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.registerDefault(t)

	const newPassword = "Xyz98765"
	err := f.authenticator.ChangePassword(context.Background(), registered.ID, testPassword, newPassword)
	require.NoError(t, err)

	// Old password no longer works, new one does
	_, err = f.authenticator.Authenticate(context.Background(), testPhone, testPassword)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	id, err := f.authenticator.Authenticate(context.Background(), testPhone, newPassword)
	require.NoError(t, err)
	require.Equal(t, registered.ID, id.ID)
}

// TestChangePassword_WrongCurrent tests that the current password must
// re-verify before the hash is replaced
func TestChangePassword_WrongCurrent(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.registerDefault(t)

	err := f.authenticator.ChangePassword(context.Background(), registered.ID, "Wrong12345", "Xyz98765")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Original password still works
	_, err = f.authenticator.Authenticate(context.Background(), testPhone, testPassword)
	require.NoError(t, err)
}

// TestChangePassword_WeakNext tests strength validation of the new password
func TestChangePassword_WeakNext(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.registerDefault(t)

	err := f.authenticator.ChangePassword(context.Background(), registered.ID, testPassword, "weak")
	require.Error(t, err)
	require.Contains(t, err.Error(), "weak password")
}

// TestDeactivate tests that a deactivated identity can no longer log in
func TestDeactivate(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.registerDefault(t)

	err := f.authenticator.Deactivate(context.Background(), registered.ID)
	require.NoError(t, err)

	_, err = f.authenticator.Authenticate(context.Background(), testPhone, testPassword)
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
