package nft

import (
	"os"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/common"
	"github.com/bnb-chain/nft-market/common/custody"
	"github.com/bnb-chain/nft-market/common/testutils"
	"github.com/bnb-chain/nft-market/wire"
)

var testProgram = sdk.AccAddress(crypto.AddressHash([]byte("NftTestProgram")))

func MakeCodec() *wire.Codec {
	var cdc = wire.NewCodec()

	sdk.RegisterCodec(cdc) // Register Msgs
	auth.RegisterBaseAccount(cdc)
	RegisterWire(cdc)

	return cdc
}

func MakeContext() sdk.Context {
	cms := testutils.SetupMultiStoreForUnitTest()
	header := abci.Header{Time: time.Unix(1600000000, 0)}
	return sdk.NewContext(cms, header, sdk.RunTxModeDeliver, log.NewTMLogger(os.Stdout))
}

func MakeKeeper(cdc *wire.Codec) Keeper {
	codespacer := sdk.NewCodespacer()
	keeper := NewKeeper(cdc, common.NftStoreKey, codespacer.RegisterNext(DefaultCodespace))
	keeper.RegisterProgram(testProgram)
	return keeper
}

func setupCollection(t *testing.T, ctx sdk.Context, keeper Keeper, creator sdk.AccAddress) Collection {
	collection, err := keeper.CreateCollection(ctx, creator, "punks", "https://example.org/punks.json")
	require.Nil(t, err)
	return collection
}

func TestKeeper_CreateCollection(t *testing.T) {
	keeper := MakeKeeper(MakeCodec())
	ctx := MakeContext()
	_, creator := testutils.PrivAndAddr()

	collection := setupCollection(t, ctx, keeper, creator)
	require.Equal(t, CollectionAddress(creator, "punks"), collection.Address)
	require.Equal(t, creator, collection.UpdateAuthority)
	require.Equal(t, int64(1600000000), collection.CreatedAt)

	stored, found := keeper.GetCollection(ctx, collection.Address)
	require.True(t, found)
	require.Equal(t, collection, stored)

	_, err := keeper.CreateCollection(ctx, creator, "punks", "")
	require.NotNil(t, err)
	require.Equal(t, CodeCollectionExists, err.Code())

	// same name from another creator is a different collection
	_, other := testutils.PrivAndAddr()
	otherCollection, err := keeper.CreateCollection(ctx, other, "punks", "")
	require.Nil(t, err)
	require.NotEqual(t, collection.Address, otherCollection.Address)
}

func TestKeeper_MintAsset(t *testing.T) {
	keeper := MakeKeeper(MakeCodec())
	ctx := MakeContext()
	_, creator := testutils.PrivAndAddr()
	_, owner := testutils.PrivAndAddr()
	collection := setupCollection(t, ctx, keeper, creator)

	_, err := keeper.MintAsset(ctx, owner, collection.Address, "punk #1", "", owner)
	require.NotNil(t, err)
	require.Equal(t, CodeNotUpdateAuthority, err.Code())

	_, err = keeper.MintAsset(ctx, creator, sdk.AccAddress(crypto.AddressHash([]byte("nowhere"))), "punk #1", "", owner)
	require.NotNil(t, err)
	require.Equal(t, CodeCollectionNotFound, err.Code())

	first, err := keeper.MintAsset(ctx, creator, collection.Address, "punk #1", "", owner)
	require.Nil(t, err)
	second, err := keeper.MintAsset(ctx, creator, collection.Address, "punk #2", "", owner)
	require.Nil(t, err)

	require.Equal(t, int64(1), first.Serial)
	require.Equal(t, int64(2), second.Serial)
	require.NotEqual(t, first.Address, second.Address)
	require.Equal(t, AssetAddress(collection.Address, 2), second.Address)

	stored, found := keeper.GetCollection(ctx, collection.Address)
	require.True(t, found)
	require.Equal(t, int64(2), stored.Minted)

	owned := keeper.GetAssetsByOwner(ctx, owner)
	require.Len(t, owned, 2)
	require.Len(t, keeper.GetAssetsByOwner(ctx, creator), 0)
}

func TestKeeper_TransferAsset(t *testing.T) {
	keeper := MakeKeeper(MakeCodec())
	ctx := MakeContext()
	_, creator := testutils.PrivAndAddr()
	_, alice := testutils.PrivAndAddr()
	_, bob := testutils.PrivAndAddr()
	collection := setupCollection(t, ctx, keeper, creator)
	asset, err := keeper.MintAsset(ctx, creator, collection.Address, "punk #1", "", alice)
	require.Nil(t, err)

	err = keeper.TransferAsset(ctx, collection.Address, asset.Address, bob, alice, nil)
	require.NotNil(t, err)
	require.Equal(t, CodeNotAssetOwner, err.Code())

	err = keeper.TransferAsset(ctx, bob, asset.Address, alice, bob, nil)
	require.NotNil(t, err)
	require.Equal(t, CodeCollectionMismatch, err.Code())

	err = keeper.TransferAsset(ctx, collection.Address, bob, alice, bob, nil)
	require.NotNil(t, err)
	require.Equal(t, CodeAssetNotFound, err.Code())

	err = keeper.TransferAsset(ctx, collection.Address, asset.Address, alice, bob, nil)
	require.Nil(t, err)

	stored, found := keeper.GetAsset(ctx, asset.Address)
	require.True(t, found)
	require.Equal(t, bob, stored.Owner)
	require.Len(t, keeper.GetAssetsByOwner(ctx, alice), 0)
	require.Len(t, keeper.GetAssetsByOwner(ctx, bob), 1)
}

func TestKeeper_TransferAssetWithProof(t *testing.T) {
	keeper := MakeKeeper(MakeCodec())
	ctx := MakeContext()
	_, creator := testutils.PrivAndAddr()
	_, bob := testutils.PrivAndAddr()
	collection := setupCollection(t, ctx, keeper, creator)

	seeds := [][]byte{[]byte("vault"), creator}
	authority, bump, cerr := custody.FindAuthority(testProgram, seeds...)
	require.NoError(t, cerr)
	asset, err := keeper.MintAsset(ctx, creator, collection.Address, "punk #1", "", authority.Address())
	require.Nil(t, err)

	unknown := custody.NewProof(sdk.AccAddress(crypto.AddressHash([]byte("Unknown"))), bump, seeds...)
	err = keeper.TransferAsset(ctx, collection.Address, asset.Address, authority.Address(), bob, unknown)
	require.NotNil(t, err)
	require.Equal(t, CodeUnknownProgram, err.Code())

	forged := custody.NewProof(testProgram, bump, []byte("vault"), bob)
	err = keeper.TransferAsset(ctx, collection.Address, asset.Address, authority.Address(), bob, forged)
	require.NotNil(t, err)
	require.Equal(t, CodeInvalidAuthorityProof, err.Code())

	stored, _ := keeper.GetAsset(ctx, asset.Address)
	require.Equal(t, authority.Address(), stored.Owner)

	proof := custody.NewProof(testProgram, bump, seeds...)
	err = keeper.TransferAsset(ctx, collection.Address, asset.Address, authority.Address(), bob, proof)
	require.Nil(t, err)
	stored, _ = keeper.GetAsset(ctx, asset.Address)
	require.Equal(t, bob, stored.Owner)
}

func TestKeeper_PublishCollectionCreated(t *testing.T) {
	keeper := MakeKeeper(MakeCodec())
	server := pubsub.NewServer(nil)
	require.Nil(t, server.Start())
	keeper.PbsbServer = server

	sub, err := server.NewSubscriber("nft_test", nil)
	require.Nil(t, err)
	var received []CollectionCreatedEvent
	require.Nil(t, sub.Subscribe(CollectionTopic, func(event pubsub.Event) {
		received = append(received, event.(CollectionCreatedEvent))
	}))

	ctx := MakeContext().WithValue(baseapp.TxHashKey, "ABCD")
	_, creator := testutils.PrivAndAddr()
	collection := setupCollection(t, ctx, keeper, creator)
	sub.Wait()

	require.Len(t, received, 1)
	require.Equal(t, "ABCD", received[0].TxHash)
	require.Equal(t, collection.Address.String(), received[0].Collection)
	require.Equal(t, "punks", received[0].Name)

	// check mode never publishes
	checkCtx := ctx.WithRunTxMode(sdk.RunTxModeCheck)
	_, sdkErr := keeper.CreateCollection(checkCtx, creator, "apes", "")
	require.Nil(t, sdkErr)
	sub.Wait()
	require.Len(t, received, 1)
}
