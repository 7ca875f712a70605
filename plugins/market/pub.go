package market

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const Topic = pubsub.Topic("nft-listing")

const (
	ListingCreated  = "created"
	ListingSold     = "sold"
	ListingCanceled = "canceled"
)

type ListingEvent interface {
	pubsub.Event
	ListingAddress() string
}

type ListingCreatedEvent struct {
	TxHash     string
	Listing    string
	Seller     string
	Collection string
	Asset      string
	Price      int64
	Timestamp  int64
}

func (event ListingCreatedEvent) GetTopic() pubsub.Topic { return Topic }
func (event ListingCreatedEvent) ListingAddress() string { return event.Listing }

type ListingSoldEvent struct {
	TxHash     string
	Listing    string
	Seller     string
	Buyer      string
	Collection string
	Asset      string
	Price      int64
	Fee        int64
	Timestamp  int64
}

func (event ListingSoldEvent) GetTopic() pubsub.Topic { return Topic }
func (event ListingSoldEvent) ListingAddress() string { return event.Listing }

type ListingCanceledEvent struct {
	TxHash     string
	Listing    string
	Seller     string
	Collection string
	Asset      string
	Timestamp  int64
}

func (event ListingCanceledEvent) GetTopic() pubsub.Topic { return Topic }
func (event ListingCanceledEvent) ListingAddress() string { return event.Listing }

func txHashForPublish(ctx sdk.Context, keeper Keeper) (string, bool) {
	if keeper.PbsbServer == nil || !ctx.IsDeliverTx() {
		return "", false
	}
	txHash, ok := ctx.Value(baseapp.TxHashKey).(string)
	if !ok {
		keeper.logger.Error("failed to get txhash, will not publish listing event")
		return "", false
	}
	return txHash, true
}

func publishListingCreated(ctx sdk.Context, keeper Keeper, listing Listing) {
	txHash, ok := txHashForPublish(ctx, keeper)
	if !ok {
		return
	}
	keeper.PbsbServer.Publish(ListingCreatedEvent{
		TxHash:     txHash,
		Listing:    listing.Address.String(),
		Seller:     listing.Seller.String(),
		Collection: listing.Collection.String(),
		Asset:      listing.Asset.String(),
		Price:      listing.Price,
		Timestamp:  ctx.BlockHeader().Time.Unix(),
	})
}

func publishListingSold(ctx sdk.Context, keeper Keeper, sale Sale) {
	txHash, ok := txHashForPublish(ctx, keeper)
	if !ok {
		return
	}
	keeper.PbsbServer.Publish(ListingSoldEvent{
		TxHash:     txHash,
		Listing:    sale.Listing.Address.String(),
		Seller:     sale.Listing.Seller.String(),
		Buyer:      sale.Buyer.String(),
		Collection: sale.Listing.Collection.String(),
		Asset:      sale.Listing.Asset.String(),
		Price:      sale.Price,
		Fee:        sale.Fee,
		Timestamp:  ctx.BlockHeader().Time.Unix(),
	})
}

func publishListingCanceled(ctx sdk.Context, keeper Keeper, listing Listing) {
	txHash, ok := txHashForPublish(ctx, keeper)
	if !ok {
		return
	}
	keeper.PbsbServer.Publish(ListingCanceledEvent{
		TxHash:     txHash,
		Listing:    listing.Address.String(),
		Seller:     listing.Seller.String(),
		Collection: listing.Collection.String(),
		Asset:      listing.Asset.String(),
		Timestamp:  ctx.BlockHeader().Time.Unix(),
	})
}
