package market

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case InitMarketMsg:
			return handleInitMarket(ctx, keeper, msg)
		case UpdateMarketMsg:
			return handleUpdateMarket(ctx, keeper, msg)
		case AddListingMsg:
			return handleAddListing(ctx, keeper, msg)
		case MatchListingMsg:
			return handleMatchListing(ctx, keeper, msg)
		case RemoveListingMsg:
			return handleRemoveListing(ctx, keeper, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized market message type: %T", msg)
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func marketTags(market Market) sdk.Tags {
	return sdk.NewTags(
		"admin", []byte(market.Admin.String()),
		"fee_recipient", []byte(market.FeeRecipient.String()),
		"taker_fee_bps", []byte(strconv.FormatInt(market.TakerFeeBps, 10)),
	)
}

func handleInitMarket(ctx sdk.Context, keeper Keeper, msg InitMarketMsg) sdk.Result {
	market, err := keeper.InitMarket(ctx, msg.From, msg.FeeRecipient, msg.TakerFeeBps)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{Tags: marketTags(market)}
}

func handleUpdateMarket(ctx sdk.Context, keeper Keeper, msg UpdateMarketMsg) sdk.Result {
	market, err := keeper.UpdateMarket(ctx, msg.From, msg.FeeRecipient, msg.TakerFeeBps)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{Tags: marketTags(market)}
}

func handleAddListing(ctx sdk.Context, keeper Keeper, msg AddListingMsg) sdk.Result {
	listing, err := keeper.AddListing(ctx, msg.From, msg.Collection, msg.Asset, msg.Price)
	if err != nil {
		return err.Result()
	}

	return sdk.Result{
		Data: listing.Address,
		Tags: sdk.NewTags(
			"action", []byte(ListingCreated),
			"listing", []byte(listing.Address.String()),
			"seller", []byte(listing.Seller.String()),
			"asset", []byte(listing.Asset.String()),
			"price", []byte(strconv.FormatInt(listing.Price, 10)),
		),
	}
}

func handleMatchListing(ctx sdk.Context, keeper Keeper, msg MatchListingMsg) sdk.Result {
	sale, tags, err := keeper.MatchListing(ctx, msg.From, msg.Listing, msg.Seller, msg.Collection, msg.Asset,
		msg.FeeRecipient)
	if err != nil {
		return err.Result()
	}

	tags = tags.AppendTags(sdk.NewTags(
		"action", []byte(ListingSold),
		"listing", []byte(sale.Listing.Address.String()),
		"buyer", []byte(sale.Buyer.String()),
		"price", []byte(strconv.FormatInt(sale.Price, 10)),
		"fee", []byte(strconv.FormatInt(sale.Fee, 10)),
	))
	return sdk.Result{
		Data: sale.Listing.Address,
		Tags: tags,
	}
}

func handleRemoveListing(ctx sdk.Context, keeper Keeper, msg RemoveListingMsg) sdk.Result {
	listing, err := keeper.RemoveListing(ctx, msg.From, msg.Collection, msg.Asset)
	if err != nil {
		return err.Result()
	}

	return sdk.Result{
		Data: listing.Address,
		Tags: sdk.NewTags(
			"action", []byte(ListingCanceled),
			"listing", []byte(listing.Address.String()),
			"seller", []byte(listing.Seller.String()),
		),
	}
}
