package repofake

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
	apperrors "github.com/nhdinhdev03/nhdinh-profile-sub001/internal/errors"
)

var _ identity.Repo = (*FakeIdentityRepo)(nil)

// FakeIdentityRepo is an in-memory identity.Repo for tests.
type FakeIdentityRepo struct {
	identities map[string]*identity.Identity // keyed by id
	lock       sync.RWMutex
}

func NewFakeIdentityRepo() *FakeIdentityRepo {
	return &FakeIdentityRepo{
		identities: make(map[string]*identity.Identity),
	}
}

func (r *FakeIdentityRepo) Create(_ context.Context, id *identity.Identity) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, existing := range r.identities {
		if matchesIdentifier(existing, id.PhoneNumber) {
			return apperrors.ErrDuplicateIdentifier
		}
		if id.Username != "" && matchesIdentifier(existing, id.Username) {
			return apperrors.ErrDuplicateIdentifier
		}
	}

	if id.ID == "" {
		id.ID = uuid.New().String()
	}
	clone := *id
	r.identities[id.ID] = &clone
	return nil
}

func (r *FakeIdentityRepo) FindByIdentifier(_ context.Context, identifier string) (*identity.Identity, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, id := range r.identities {
		if matchesIdentifier(id, identifier) {
			clone := *id
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *FakeIdentityRepo) ExistsByIdentifier(ctx context.Context, identifier string) (bool, error) {
	_, err := r.FindByIdentifier(ctx, identifier)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FakeIdentityRepo) GetByID(_ context.Context, id string) (*identity.Identity, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	found, ok := r.identities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *found
	return &clone, nil
}

func (r *FakeIdentityRepo) UpdateCredentialHash(_ context.Context, id string, hash string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	found, ok := r.identities[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	found.CredentialHash = hash
	return nil
}

func (r *FakeIdentityRepo) SetActive(_ context.Context, id string, active bool) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	found, ok := r.identities[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	found.Active = active
	return nil
}

// matchesIdentifier applies the store's exact, case-sensitive matching
// rule against both registered identifiers.
func matchesIdentifier(id *identity.Identity, identifier string) bool {
	if id.PhoneNumber == identifier {
		return true
	}
	return id.Username != "" && id.Username == identifier
}
