package identity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
)

// TestHasher_HashAndVerify tests the hash round trip
func TestHasher_HashAndVerify(t *testing.T) {
	hasher := identity.NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Abc12345")
	require.NoError(t, err)
	require.NotEqual(t, "Abc12345", hash)
	require.True(t, strings.HasPrefix(hash, "$2"), "Expected a bcrypt hash")

	require.True(t, hasher.Verify("Abc12345", hash))
	require.False(t, hasher.Verify("Abc12346", hash))
	require.False(t, hasher.Verify("", hash))
}

// TestHasher_DistinctSalts tests that hashing the same password twice
// yields different hashes
func TestHasher_DistinctSalts(t *testing.T) {
	hasher := identity.NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Abc12345")
	require.NoError(t, err)
	second, err := hasher.Hash("Abc12345")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, hasher.Verify("Abc12345", first))
	require.True(t, hasher.Verify("Abc12345", second))
}

// TestHasher_MalformedHash tests that a corrupt stored hash fails closed
func TestHasher_MalformedHash(t *testing.T) {
	hasher := identity.NewHasher(bcrypt.MinCost)

	require.False(t, hasher.Verify("Abc12345", ""))
	require.False(t, hasher.Verify("Abc12345", "not-a-bcrypt-hash"))
}

// TestNewHasher_CostOutOfRange tests that an out-of-range cost falls back
// to the default and still produces verifiable hashes
func TestNewHasher_CostOutOfRange(t *testing.T) {
	hasher := identity.NewHasher(999)

	hash, err := hasher.Hash("Abc12345")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
	require.True(t, hasher.Verify("Abc12345", hash))
}
