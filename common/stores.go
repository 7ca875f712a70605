package common

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	MainStoreName    = "main"
	AccountStoreName = "acc"
	NftStoreName     = "nft"
	MarketStoreName  = "market"
)

var (
	// keys to access the substores
	MainStoreKey    = sdk.NewKVStoreKey(MainStoreName)
	AccountStoreKey = sdk.NewKVStoreKey(AccountStoreName)
	NftStoreKey     = sdk.NewKVStoreKey(NftStoreName)
	MarketStoreKey  = sdk.NewKVStoreKey(MarketStoreName)
)
