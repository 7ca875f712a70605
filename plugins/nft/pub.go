package nft

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const CollectionTopic = pubsub.Topic("nft-collection")

type CollectionCreatedEvent struct {
	TxHash          string
	Collection      string
	UpdateAuthority string
	Name            string
	URI             string
	Timestamp       int64
}

func (event CollectionCreatedEvent) GetTopic() pubsub.Topic {
	return CollectionTopic
}

func publishCollectionCreated(ctx sdk.Context, keeper Keeper, collection Collection) {
	if keeper.PbsbServer == nil || !ctx.IsDeliverTx() {
		return
	}
	txHash, ok := ctx.Value(baseapp.TxHashKey).(string)
	if !ok {
		ctx.Logger().With("module", "nft").Error("failed to get txhash, will not publish collection event")
		return
	}
	keeper.PbsbServer.Publish(CollectionCreatedEvent{
		TxHash:          txHash,
		Collection:      collection.Address.String(),
		UpdateAuthority: collection.UpdateAuthority.String(),
		Name:            collection.Name,
		URI:             collection.URI,
		Timestamp:       collection.CreatedAt,
	})
}
