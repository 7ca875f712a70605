package nft

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	CollectionKeyPrefix = []byte{0x01}
	AssetKeyPrefix      = []byte{0x02}
	OwnerAssetKeyPrefix = []byte{0x03}
)

func KeyCollection(collection sdk.AccAddress) []byte {
	return append(append([]byte(nil), CollectionKeyPrefix...), collection...)
}

func KeyAsset(asset sdk.AccAddress) []byte {
	return append(append([]byte(nil), AssetKeyPrefix...), asset...)
}

func KeyOwnerAsset(owner, asset sdk.AccAddress) []byte {
	return append(KeyOwnerSubSpace(owner), asset...)
}

func KeyOwnerSubSpace(owner sdk.AccAddress) []byte {
	return append(append([]byte(nil), OwnerAssetKeyPrefix...), owner...)
}
