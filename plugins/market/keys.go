package market

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	MarketKey              = []byte{0x01}
	ListingKeyPrefix       = []byte{0x02}
	SellerListingKeyPrefix = []byte{0x03}
)

// ListingKey is keyed by the listing's custody authority, so one triple can only ever map to one record.
func ListingKey(listing sdk.AccAddress) []byte {
	return append(append([]byte(nil), ListingKeyPrefix...), listing...)
}

func SellerListingKey(seller, listing sdk.AccAddress) []byte {
	return append(SellerListingSubSpace(seller), listing...)
}

func SellerListingSubSpace(seller sdk.AccAddress) []byte {
	return append(append([]byte(nil), SellerListingKeyPrefix...), seller...)
}
