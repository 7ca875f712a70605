package nft

import (
	"encoding/binary"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto/tmhash"
)

const (
	MaxNameLength = 32
	MaxURILength  = 200
)

type Collection struct {
	Address         sdk.AccAddress `json:"address"`
	UpdateAuthority sdk.AccAddress `json:"update_authority"`
	Name            string         `json:"name"`
	URI             string         `json:"uri"`
	Minted          int64          `json:"minted"`
	CreatedAt       int64          `json:"created_at"`
}

func (c Collection) String() string {
	return fmt.Sprintf("Collection{%s, authority=%s, name=%s, uri=%s, minted=%d}",
		c.Address, c.UpdateAuthority, c.Name, c.URI, c.Minted)
}

type Asset struct {
	Address    sdk.AccAddress `json:"address"`
	Collection sdk.AccAddress `json:"collection"`
	Serial     int64          `json:"serial"`
	Name       string         `json:"name"`
	URI        string         `json:"uri"`
	Owner      sdk.AccAddress `json:"owner"`
}

func (a Asset) String() string {
	return fmt.Sprintf("Asset{%s, collection=%s, serial=%d, name=%s, owner=%s}",
		a.Address, a.Collection, a.Serial, a.Name, a.Owner)
}

// CollectionAddress is the identity of the collection named name created by creator.
func CollectionAddress(creator sdk.AccAddress, name string) sdk.AccAddress {
	bz := append([]byte("collection:"), creator...)
	bz = append(bz, []byte(name)...)
	return sdk.AccAddress(tmhash.SumTruncated(bz))
}

// AssetAddress is the identity of the serial-th asset minted in collection.
func AssetAddress(collection sdk.AccAddress, serial int64) sdk.AccAddress {
	bz := append([]byte("asset:"), collection...)
	var serialBz [8]byte
	binary.BigEndian.PutUint64(serialBz[:], uint64(serial))
	bz = append(bz, serialBz[:]...)
	return sdk.AccAddress(tmhash.SumTruncated(bz))
}
