package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/nft-market/common/testutils"
)

func TestDeriveListingAuthority(t *testing.T) {
	_, seller := testutils.PrivAndAddr()
	_, collection := testutils.PrivAndAddr()
	_, asset := testutils.PrivAndAddr()
	_, otherAsset := testutils.PrivAndAddr()

	addr, bump, err := DeriveListingAuthority(seller, collection, asset)
	require.Nil(t, err)
	again, againBump, err := DeriveListingAuthority(seller, collection, asset)
	require.Nil(t, err)
	require.Equal(t, addr, again)
	require.Equal(t, bump, againBump)

	other, _, err := DeriveListingAuthority(seller, collection, otherAsset)
	require.Nil(t, err)
	require.NotEqual(t, addr, other)

	swapped, _, err := DeriveListingAuthority(collection, seller, asset)
	require.Nil(t, err)
	require.NotEqual(t, addr, swapped)

	keeper := NewKeeper(nil, nil, nil, nil, DefaultCodespace, 16)
	cached, cachedBump, err := keeper.DeriveListingAuthority(seller, collection, asset)
	require.Nil(t, err)
	require.Equal(t, addr, cached)
	require.Equal(t, bump, cachedBump)
}

func TestListingProof(t *testing.T) {
	_, seller := testutils.PrivAndAddr()
	_, collection := testutils.PrivAndAddr()
	_, asset := testutils.PrivAndAddr()

	addr, bump, err := DeriveListingAuthority(seller, collection, asset)
	require.Nil(t, err)
	listing := Listing{Address: addr, Seller: seller, Collection: collection, Asset: asset, Bump: bump}

	proof := ListingProof(listing)
	require.Equal(t, ProgramAddr, proof.Program)
	require.Nil(t, proof.Verify(addr))
	require.NotNil(t, proof.Verify(seller))

	listing.Seller = collection
	require.NotNil(t, ListingProof(listing).Verify(addr))
}
