package market

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto"

	"github.com/bnb-chain/nft-market/common/custody"
)

const ListingNamespace = "listing"

// ProgramAddr is the program id every listing authority is derived under.
var ProgramAddr = sdk.AccAddress(crypto.AddressHash([]byte("NftMarket")))

func listingSeeds(seller, collection, asset sdk.AccAddress) [][]byte {
	return [][]byte{[]byte(ListingNamespace), seller, collection, asset}
}

// DeriveListingAuthority returns the custody authority of (seller, collection, asset) and its bump.
// The authority doubles as the storage address of the listing.
func DeriveListingAuthority(seller, collection, asset sdk.AccAddress) (sdk.AccAddress, uint8, error) {
	authority, bump, err := custody.FindAuthority(ProgramAddr, listingSeeds(seller, collection, asset)...)
	if err != nil {
		return nil, 0, err
	}
	return authority.Address(), bump, nil
}

// ListingProof lets the market act as the listing's authority when releasing the asset.
func ListingProof(listing Listing) *custody.Proof {
	return custody.NewProof(ProgramAddr, listing.Bump, listingSeeds(listing.Seller, listing.Collection, listing.Asset)...)
}
