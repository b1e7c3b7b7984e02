// Package auth verifies administrator credentials. It owns no transport
// concerns: the HTTP layer calls Authenticate and asks the token codec to
// mint a session token for the returned identity.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

// RegistrationParams carries the fields of the administrative registration
// operation. Password arrives in plaintext and is hashed before storage;
// it must never be logged or echoed.
type RegistrationParams struct {
	PhoneNumber string
	Username    string
	FullName    string
	Password    string
}

// Authenticator orchestrates identifier+password verification against the
// credential store. It keeps no state between attempts: no lockout
// counters, no audit trail.
type Authenticator struct {
	identities identity.Repo
	hasher     *identity.Hasher
	nowTime    func() time.Time // nowTime function (injectable for testing)
}

// AuthenticatorOption defines a function type to modify the Authenticator instance.
type AuthenticatorOption func(*Authenticator)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) AuthenticatorOption {
	return func(a *Authenticator) {
		a.nowTime = nowFunc
	}
}

// NewAuthenticator initializes an Authenticator with required dependencies.
func NewAuthenticator(identities identity.Repo, hasher *identity.Hasher, options ...AuthenticatorOption) (*Authenticator, error) {
	if identities == nil {
		return nil, errors.New("[NewAuthenticator] identity repo is required")
	}
	if hasher == nil {
		return nil, errors.New("[NewAuthenticator] hasher is required")
	}

	authenticator := &Authenticator{
		identities: identities,
		hasher:     hasher,
		nowTime:    time.Now,
	}

	for _, opt := range options {
		opt(authenticator)
	}

	return authenticator, nil
}

// Authenticate verifies an identifier and password pair. Every failure -
// unknown identifier, deactivated account, wrong password, or a store
// fault - surfaces as the same ErrInvalidCredentials so callers cannot
// enumerate identifiers or probe account state.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, password string) (*identity.Identity, error) {
	id, err := a.identities.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !id.Active {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !a.hasher.Verify(password, id.CredentialHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return id, nil
}

// Register creates a new identity. Duplicate identifiers are rejected
// before the insert; the unique constraints on the table back that check
// up under concurrent registration.
func (a *Authenticator) Register(ctx context.Context, params RegistrationParams) (*identity.Identity, error) {
	if params.PhoneNumber == "" {
		return nil, errors.New("[Register] phone number is required")
	}
	if err := identity.ValidatePasswordStrength(params.Password); err != nil {
		return nil, errors.Wrap(err, "[Register] weak password")
	}

	for _, identifier := range []string{params.PhoneNumber, params.Username} {
		if identifier == "" {
			continue
		}
		exists, err := a.identities.ExistsByIdentifier(ctx, identifier)
		if err != nil {
			return nil, errors.Wrap(err, "[Register] ExistsByIdentifier")
		}
		if exists {
			return nil, apperrors.ErrDuplicateIdentifier
		}
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return nil, errors.Wrap(err, "[Register] hashing failed")
	}

	id := &identity.Identity{
		ID:             uuid.New().String(),
		PhoneNumber:    params.PhoneNumber,
		Username:       params.Username,
		CredentialHash: hash,
		FullName:       params.FullName,
		Active:         true,
		CreatedAt:      a.nowTime(),
	}

	if err := a.identities.Create(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrDuplicateIdentifier) {
			return nil, apperrors.ErrDuplicateIdentifier
		}
		return nil, errors.Wrap(err, "[Register] Create")
	}

	return id, nil
}

// ChangePassword replaces the credential hash after re-verifying the
// current password. The hash is only ever rewritten through this re-hash
// path, never by direct overwrite.
func (a *Authenticator) ChangePassword(ctx context.Context, id string, current, next string) error {
	stored, err := a.identities.GetByID(ctx, id)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	if !a.hasher.Verify(current, stored.CredentialHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := identity.ValidatePasswordStrength(next); err != nil {
		return errors.Wrap(err, "[ChangePassword] weak password")
	}

	hash, err := a.hasher.Hash(next)
	if err != nil {
		return errors.Wrap(err, "[ChangePassword] hashing failed")
	}

	if err := a.identities.UpdateCredentialHash(ctx, id, hash); err != nil {
		return errors.Wrap(err, "[ChangePassword] UpdateCredentialHash")
	}
	return nil
}

// Deactivate soft-disables an identity. Outstanding tokens for it remain
// valid until they expire - the stateless model has no revocation list.
func (a *Authenticator) Deactivate(ctx context.Context, id string) error {
	if err := a.identities.SetActive(ctx, id, false); err != nil {
		return errors.Wrap(err, "[Deactivate] SetActive")
	}
	return nil
}
