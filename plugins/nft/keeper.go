package nft

import (
	"bytes"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/common/custody"
	bnclog "github.com/bnb-chain/nft-market/common/log"
)

type Keeper struct {
	storeKey  sdk.StoreKey // The key used to access the store from the Context.
	codespace sdk.CodespaceType
	cdc       *codec.Codec
	logger    tmlog.Logger

	// programs whose derived authorities may move assets by proof
	programs map[string]bool

	PbsbServer *pubsub.Server
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		codespace: codespace,
		cdc:       cdc,
		logger:    bnclog.With("module", "nft"),
		programs:  make(map[string]bool),
	}
}

// RegisterProgram allows authorities derived under program to authorise transfers with a custody.Proof.
// Programs are registered while the app is assembled, never from a transaction.
func (keeper Keeper) RegisterProgram(program sdk.AccAddress) {
	keeper.programs[string(program)] = true
}

func (keeper Keeper) IsProgramRegistered(program sdk.AccAddress) bool {
	return keeper.programs[string(program)]
}

func (keeper Keeper) Codespace() sdk.CodespaceType {
	return keeper.codespace
}

func (keeper Keeper) GetCollection(ctx sdk.Context, addr sdk.AccAddress) (Collection, bool) {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(KeyCollection(addr))
	if bz == nil {
		return Collection{}, false
	}

	var collection Collection
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &collection)
	return collection, true
}

func (keeper Keeper) setCollection(ctx sdk.Context, collection Collection) {
	store := ctx.KVStore(keeper.storeKey)
	bz := keeper.cdc.MustMarshalBinaryLengthPrefixed(collection)
	store.Set(KeyCollection(collection.Address), bz)
}

func (keeper Keeper) GetAsset(ctx sdk.Context, addr sdk.AccAddress) (Asset, bool) {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(KeyAsset(addr))
	if bz == nil {
		return Asset{}, false
	}

	var asset Asset
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &asset)
	return asset, true
}

func (keeper Keeper) setAsset(ctx sdk.Context, asset Asset) {
	store := ctx.KVStore(keeper.storeKey)
	bz := keeper.cdc.MustMarshalBinaryLengthPrefixed(asset)
	store.Set(KeyAsset(asset.Address), bz)
	store.Set(KeyOwnerAsset(asset.Owner, asset.Address), []byte{0x01})
}

func (keeper Keeper) GetAssetsByOwner(ctx sdk.Context, owner sdk.AccAddress) []Asset {
	store := ctx.KVStore(keeper.storeKey)
	prefix := KeyOwnerSubSpace(owner)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var assets []Asset
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(prefix):])
		if asset, found := keeper.GetAsset(ctx, addr); found {
			assets = append(assets, asset)
		}
	}
	return assets
}

func (keeper Keeper) CreateCollection(ctx sdk.Context, creator sdk.AccAddress, name, uri string) (Collection, sdk.Error) {
	addr := CollectionAddress(creator, name)
	if _, found := keeper.GetCollection(ctx, addr); found {
		return Collection{}, ErrCollectionExists(keeper.codespace, addr)
	}

	collection := Collection{
		Address:         addr,
		UpdateAuthority: creator,
		Name:            name,
		URI:             uri,
		CreatedAt:       ctx.BlockHeader().Time.Unix(),
	}
	keeper.setCollection(ctx, collection)
	keeper.logger.Debug("collection created", "collection", addr.String(), "authority", creator.String())

	publishCollectionCreated(ctx, keeper, collection)
	return collection, nil
}

// MintAsset creates the next asset of a collection and hands it to recipient.
// Only the collection's update authority may mint.
func (keeper Keeper) MintAsset(ctx sdk.Context, authority, collectionAddr sdk.AccAddress, name, uri string,
	recipient sdk.AccAddress) (Asset, sdk.Error) {
	collection, found := keeper.GetCollection(ctx, collectionAddr)
	if !found {
		return Asset{}, ErrCollectionNotFound(keeper.codespace, collectionAddr)
	}
	if !collection.UpdateAuthority.Equals(authority) {
		return Asset{}, ErrNotUpdateAuthority(keeper.codespace, collectionAddr, authority)
	}

	serial := collection.Minted + 1
	asset := Asset{
		Address:    AssetAddress(collectionAddr, serial),
		Collection: collectionAddr,
		Serial:     serial,
		Name:       name,
		URI:        uri,
		Owner:      recipient,
	}
	collection.Minted = serial

	keeper.setCollection(ctx, collection)
	keeper.setAsset(ctx, asset)
	return asset, nil
}

// TransferAsset moves asset of collection from its current owner to to.
//
// A nil proof means from has signed the surrounding transaction. Otherwise from must be the
// authority the proof derives, under a registered program.
func (keeper Keeper) TransferAsset(ctx sdk.Context, collection, assetAddr, from, to sdk.AccAddress,
	proof *custody.Proof) sdk.Error {
	asset, found := keeper.GetAsset(ctx, assetAddr)
	if !found {
		return ErrAssetNotFound(keeper.codespace, assetAddr)
	}
	if !bytes.Equal(asset.Collection, collection) {
		return ErrCollectionMismatch(keeper.codespace, assetAddr, collection)
	}
	if !bytes.Equal(asset.Owner, from) {
		return ErrNotAssetOwner(keeper.codespace, assetAddr, from)
	}

	if proof != nil {
		if !keeper.IsProgramRegistered(proof.Program) {
			return ErrUnknownProgram(keeper.codespace, proof.Program)
		}
		if err := proof.Verify(from); err != nil {
			return ErrInvalidAuthorityProof(keeper.codespace, err.Error())
		}
	}

	store := ctx.KVStore(keeper.storeKey)
	store.Delete(KeyOwnerAsset(asset.Owner, asset.Address))
	asset.Owner = to
	keeper.setAsset(ctx, asset)
	return nil
}
