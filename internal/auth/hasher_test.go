package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hasher := NewHasher()

	hashed, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rSecret", hashed)

	require.True(t, hasher.Verify("Sup3rSecret", hashed))
	require.False(t, hasher.Verify("Sup3rSecret2", hashed))
}

func TestHashSaltsDiffer(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)
	second, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)

	// Random salt: equal inputs must not produce equal hashes.
	require.NotEqual(t, first, second)
	require.True(t, hasher.Verify("Sup3rSecret", first))
	require.True(t, hasher.Verify("Sup3rSecret", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewHasher()

	require.False(t, hasher.Verify("whatever", ""))
	require.False(t, hasher.Verify("whatever", "not-a-bcrypt-hash"))
}
