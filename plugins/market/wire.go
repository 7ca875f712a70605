package market

import (
	"github.com/bnb-chain/nft-market/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(InitMarketMsg{}, "market/InitMarketMsg", nil)
	cdc.RegisterConcrete(UpdateMarketMsg{}, "market/UpdateMarketMsg", nil)
	cdc.RegisterConcrete(AddListingMsg{}, "market/AddListingMsg", nil)
	cdc.RegisterConcrete(MatchListingMsg{}, "market/MatchListingMsg", nil)
	cdc.RegisterConcrete(RemoveListingMsg{}, "market/RemoveListingMsg", nil)
}
