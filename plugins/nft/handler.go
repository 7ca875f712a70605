package nft

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case CreateCollectionMsg:
			return handleCreateCollection(ctx, keeper, msg)
		case MintAssetMsg:
			return handleMintAsset(ctx, keeper, msg)
		case TransferAssetMsg:
			return handleTransferAsset(ctx, keeper, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized nft message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleCreateCollection(ctx sdk.Context, keeper Keeper, msg CreateCollectionMsg) sdk.Result {
	collection, err := keeper.CreateCollection(ctx, msg.From, msg.Name, msg.URI)
	if err != nil {
		return err.Result()
	}

	return sdk.Result{
		Data: collection.Address,
		Tags: sdk.NewTags(
			"collection", []byte(collection.Address.String()),
			"update_authority", []byte(collection.UpdateAuthority.String()),
		),
	}
}

func handleMintAsset(ctx sdk.Context, keeper Keeper, msg MintAssetMsg) sdk.Result {
	asset, err := keeper.MintAsset(ctx, msg.From, msg.Collection, msg.Name, msg.URI, msg.Recipient)
	if err != nil {
		return err.Result()
	}

	return sdk.Result{
		Data: asset.Address,
		Tags: sdk.NewTags(
			"collection", []byte(asset.Collection.String()),
			"asset", []byte(asset.Address.String()),
			"owner", []byte(asset.Owner.String()),
		),
	}
}

func handleTransferAsset(ctx sdk.Context, keeper Keeper, msg TransferAssetMsg) sdk.Result {
	err := keeper.TransferAsset(ctx, msg.Collection, msg.Asset, msg.From, msg.To, nil)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{}
}
