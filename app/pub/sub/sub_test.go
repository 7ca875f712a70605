package sub

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/pubsub"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/app/config"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
)

func setupSubscriber(t *testing.T, clientID string, cfg *config.PublicationConfig) (*pubsub.Server, *pubsub.Subscriber) {
	Clear()
	server := pubsub.NewServer(nil)
	require.Nil(t, server.Start())
	sub, err := server.NewSubscriber(pubsub.ClientID(clientID), log.NewNopLogger())
	require.Nil(t, err)
	require.Nil(t, SubscribeEvent(sub, cfg))
	return server, sub
}

func TestCommitOnlyDeliveredEvents(t *testing.T) {
	cfg := config.DefaultMarketConfig().PublicationConfig
	cfg.PublishListingCreated = true
	cfg.PublishListingSold = true
	cfg.PublishCollection = true
	server, sub := setupSubscriber(t, "commit", cfg)
	defer server.Stop()

	server.Publish(nft.CollectionCreatedEvent{TxHash: "tx0", Collection: "c"})
	server.Publish(TxDeliverSuccEvent{})
	server.Publish(market.ListingCreatedEvent{TxHash: "tx1", Listing: "l1"})
	server.Publish(TxDeliverSuccEvent{})
	server.Publish(market.ListingSoldEvent{TxHash: "tx2", Listing: "l1"})
	server.Publish(TxDeliverFailEvent{})
	server.Publish(market.ListingSoldEvent{TxHash: "tx3", Listing: "l1"})
	server.Publish(TxDeliverSuccEvent{})
	sub.Wait()

	data := ToPublish().EventData
	require.Len(t, data.Collections, 1)
	require.Equal(t, "tx0", data.Collections[0].TxHash)
	require.Len(t, data.Listings, 2)
	require.IsType(t, market.ListingCreatedEvent{}, data.Listings[0])
	require.Equal(t, "tx3", data.Listings[1].(market.ListingSoldEvent).TxHash)
	require.Equal(t, "l1", data.Listings[1].ListingAddress())
}

func TestDisabledKindsAreDropped(t *testing.T) {
	cfg := config.DefaultMarketConfig().PublicationConfig
	cfg.PublishListingCanceled = true
	server, sub := setupSubscriber(t, "filter", cfg)
	defer server.Stop()

	server.Publish(market.ListingCreatedEvent{TxHash: "tx1", Listing: "l1"})
	server.Publish(market.ListingCanceledEvent{TxHash: "tx1", Listing: "l1"})
	server.Publish(nft.CollectionCreatedEvent{TxHash: "tx1", Collection: "c"})
	server.Publish(TxDeliverSuccEvent{})
	sub.Wait()

	data := ToPublish().EventData
	require.Empty(t, data.Collections)
	require.Len(t, data.Listings, 1)
	require.IsType(t, market.ListingCanceledEvent{}, data.Listings[0])
}

func TestClearAndMeta(t *testing.T) {
	cfg := config.DefaultMarketConfig().PublicationConfig
	cfg.PublishListingCreated = true
	server, sub := setupSubscriber(t, "clear", cfg)
	defer server.Stop()

	server.Publish(market.ListingCreatedEvent{TxHash: "tx1", Listing: "l1"})
	server.Publish(TxDeliverSuccEvent{})
	sub.Wait()

	blockTime := time.Unix(1600000000, 0)
	SetMeta(7, blockTime)
	require.Equal(t, int64(7), ToPublish().Height)
	require.Equal(t, blockTime, ToPublish().Timestamp)
	require.False(t, ToPublish().EventData.IsEmpty())

	Clear()
	require.True(t, ToPublish().EventData.IsEmpty())
	require.Equal(t, int64(0), ToPublish().Height)
}
