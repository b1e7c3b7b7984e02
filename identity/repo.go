package identity

import "context"

// Repo abstracts identity storage. FindByIdentifier matches the phone
// number OR the username with exact, case-sensitive equality, and returns
// inactive identities too - whether an identity may authenticate is the
// Authenticator's decision, not the store's.
type Repo interface {
	Create(ctx context.Context, id *Identity) error
	FindByIdentifier(ctx context.Context, identifier string) (*Identity, error)
	ExistsByIdentifier(ctx context.Context, identifier string) (bool, error)
	GetByID(ctx context.Context, id string) (*Identity, error)
	UpdateCredentialHash(ctx context.Context, id string, hash string) error
	SetActive(ctx context.Context, id string, active bool) error
}
