package market

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Market is the fee policy of the marketplace. There is exactly one, created by InitMarket.
type Market struct {
	Admin        sdk.AccAddress `json:"admin"`
	FeeRecipient sdk.AccAddress `json:"fee_recipient"`
	TakerFeeBps  int64          `json:"taker_fee_bps"`
}

func (m Market) String() string {
	return fmt.Sprintf("Market{admin=%s, fee_recipient=%s, taker_fee_bps=%d}", m.Admin, m.FeeRecipient, m.TakerFeeBps)
}

type Listing struct {
	Address    sdk.AccAddress `json:"address"`
	Seller     sdk.AccAddress `json:"seller"`
	Collection sdk.AccAddress `json:"collection"`
	Asset      sdk.AccAddress `json:"asset"`
	Price      int64          `json:"price"`
	IsActive   bool           `json:"is_active"`
	CreatedAt  int64          `json:"created_at"`
	Bump       uint8          `json:"bump"`
}

func (l Listing) String() string {
	return fmt.Sprintf("Listing{%s, seller=%s, collection=%s, asset=%s, price=%d, active=%v}",
		l.Address, l.Seller, l.Collection, l.Asset, l.Price, l.IsActive)
}

// Sale is the outcome of a successful MatchListing.
type Sale struct {
	Listing Listing        `json:"listing"`
	Buyer   sdk.AccAddress `json:"buyer"`
	Price   int64          `json:"price"`
	Fee     int64          `json:"fee"`
}
