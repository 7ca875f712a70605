package custody

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto"
)

var testProgram = sdk.AccAddress(crypto.AddressHash([]byte("CustodyTestProgram")))

func seedsOf(parts ...string) [][]byte {
	seeds := make([][]byte, 0, len(parts))
	for _, p := range parts {
		seeds = append(seeds, []byte(p))
	}
	return seeds
}

func TestFindAuthority_Deterministic(t *testing.T) {
	a1, bump1, err := FindAuthority(testProgram, seedsOf("listing", "seller", "collection", "asset")...)
	require.NoError(t, err)
	a2, bump2, err := FindAuthority(testProgram, seedsOf("listing", "seller", "collection", "asset")...)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Equal(t, bump1, bump2)
	require.Len(t, a1.Address(), sdk.AddrLen)
	require.False(t, isOnCurve(a1[:]))
}

func TestFindAuthority_DistinctSeeds(t *testing.T) {
	seen := make(map[string]bool)
	for _, asset := range []string{"asset-1", "asset-2", "asset-3", "asset-4"} {
		for _, seller := range []string{"alice", "bob"} {
			a, _, err := FindAuthority(testProgram, seedsOf("listing", seller, "collection", asset)...)
			require.NoError(t, err)
			require.False(t, seen[a.String()], "authority collision for %s/%s", seller, asset)
			seen[a.String()] = true
		}
	}

	other := sdk.AccAddress(crypto.AddressHash([]byte("OtherProgram")))
	a1, _, err := FindAuthority(testProgram, seedsOf("listing", "alice")...)
	require.NoError(t, err)
	a2, _, err := FindAuthority(other, seedsOf("listing", "alice")...)
	require.NoError(t, err)
	require.NotEqual(t, a1, a2)
}

func TestCreateAuthority_MatchesFound(t *testing.T) {
	seeds := seedsOf("listing", "seller", "collection", "asset")
	found, bump, err := FindAuthority(testProgram, seeds...)
	require.NoError(t, err)

	created, err := CreateAuthority(testProgram, bump, seeds...)
	require.NoError(t, err)
	require.Equal(t, found, created)

	// any other bump gives either an on-curve point or a different authority
	for b := 0; b < 256; b++ {
		if uint8(b) == bump {
			continue
		}
		other, err := CreateAuthority(testProgram, uint8(b), seeds...)
		if err == nil {
			require.NotEqual(t, found, other)
		} else {
			require.Equal(t, ErrOnCurve, err)
		}
	}
}

func TestCreateAuthority_SeedLimits(t *testing.T) {
	_, err := CreateAuthority(testProgram, 255, bytes.Repeat([]byte{1}, MaxSeedLen+1))
	require.Equal(t, ErrMaxSeedLengthExceeded, err)

	seeds := make([][]byte, MaxSeeds)
	_, err = CreateAuthority(testProgram, 255, seeds...)
	require.Equal(t, ErrTooManySeeds, err)

	_, _, err = FindAuthority(nil, seedsOf("listing")...)
	require.Equal(t, ErrEmptyProgram, err)
}

func TestProof_Verify(t *testing.T) {
	seeds := seedsOf("listing", "seller", "collection", "asset")
	authority, bump, err := FindAuthority(testProgram, seeds...)
	require.NoError(t, err)

	proof := NewProof(testProgram, bump, seeds...)
	require.NoError(t, proof.Verify(authority.Address()))

	tampered := NewProof(testProgram, bump, seedsOf("listing", "mallory", "collection", "asset")...)
	require.Error(t, tampered.Verify(authority.Address()))

	wrongProgram := NewProof(sdk.AccAddress(crypto.AddressHash([]byte("Elsewhere"))), bump, seeds...)
	require.Error(t, wrongProgram.Verify(authority.Address()))

	// the proof owns its seeds
	seeds[1][0] = 'X'
	require.NoError(t, proof.Verify(authority.Address()))
}

func TestCache_FindAuthority(t *testing.T) {
	cache, err := NewCache(testProgram, 8)
	require.NoError(t, err)
	require.Equal(t, testProgram, cache.Program())

	seeds := seedsOf("listing", "seller", "collection", "asset")
	expected, expectedBump, err := FindAuthority(testProgram, seeds...)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		a, bump, err := cache.FindAuthority(seeds...)
		require.NoError(t, err)
		require.Equal(t, expected, a)
		require.Equal(t, expectedBump, bump)
	}
	require.Equal(t, 1, cache.entries.Len())

	a1, _, err := cache.FindAuthority(seedsOf("ab", "c")...)
	require.NoError(t, err)
	a2, _, err := cache.FindAuthority(seedsOf("a", "bc")...)
	require.NoError(t, err)
	require.NotEqual(t, a1, a2)
}
