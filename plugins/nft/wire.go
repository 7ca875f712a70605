package nft

import (
	"github.com/bnb-chain/nft-market/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(CreateCollectionMsg{}, "nft/CreateCollectionMsg", nil)
	cdc.RegisterConcrete(MintAssetMsg{}, "nft/MintAssetMsg", nil)
	cdc.RegisterConcrete(TransferAssetMsg{}, "nft/TransferAssetMsg", nil)
}
