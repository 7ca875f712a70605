package pub

import (
	"bufio"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/app/config"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
)

func testPublicationConfig() *config.PublicationConfig {
	cfg := config.DefaultMarketConfig().PublicationConfig
	cfg.PublishListingCreated = true
	cfg.PublishListingSold = true
	cfg.PublishListingCanceled = true
	cfg.PublishCollection = true
	cfg.PublishLocal = true
	return cfg
}

func testBlock() BlockInfoToPublish {
	return NewBlockInfoToPublish(7, 1600000000000,
		[]market.ListingEvent{
			market.ListingCreatedEvent{TxHash: "tx1", Listing: "l-1", Seller: "s-1", Price: 100},
			market.ListingSoldEvent{TxHash: "tx2", Listing: "l-1", Seller: "s-1", Buyer: "b-1", Price: 100, Fee: 2},
			market.ListingCanceledEvent{TxHash: "tx3", Listing: "l-2", Seller: "s-2"},
		},
		[]nft.CollectionCreatedEvent{{TxHash: "tx0", Collection: "c-1", Name: "punks"}})
}

func TestNewBlockInfoToPublish(t *testing.T) {
	block := testBlock()
	require.Equal(t, int64(7), block.height)
	require.Len(t, block.listings, 3)
	require.Equal(t, market.ListingCreated, block.listings[0].Action)
	require.Equal(t, market.ListingSold, block.listings[1].Action)
	require.Equal(t, "b-1", block.listings[1].Buyer)
	require.Equal(t, int64(2), block.listings[1].Fee)
	require.Equal(t, market.ListingCanceled, block.listings[2].Action)
	require.Len(t, block.collections, 1)
	require.Equal(t, "punks", block.collections[0].Name)
}

func TestMockPublisher(t *testing.T) {
	publisher := NewMockMarketDataPublisher(tmlog.NewNopLogger(), testPublicationConfig(), NopMetrics())

	ToPublishCh <- testBlock()
	// an empty block publishes nothing
	ToPublishCh <- NewBlockInfoToPublish(8, 1600000001000, nil, nil)
	require.Eventually(t, func() bool { return publisher.Published() == 2 }, 5*time.Second, 10*time.Millisecond)

	publisher.Lock.Lock()
	require.Len(t, publisher.CollectionsPublished, 1)
	require.Len(t, publisher.ListingsPublished, 1)
	listings := publisher.ListingsPublished[0]
	require.Equal(t, int64(7), listings.Height)
	require.Equal(t, 3, listings.NumOfMsgs)
	publisher.Lock.Unlock()

	Stop(publisher)
	require.False(t, IsLive)
}

func TestMockPublisherRespectsConfig(t *testing.T) {
	cfg := testPublicationConfig()
	cfg.PublishCollection = false
	publisher := NewMockMarketDataPublisher(tmlog.NewNopLogger(), cfg, nil)

	ToPublishCh <- testBlock()
	require.Eventually(t, func() bool { return publisher.Published() == 1 }, 5*time.Second, 10*time.Millisecond)

	publisher.Lock.Lock()
	require.Empty(t, publisher.CollectionsPublished)
	require.Len(t, publisher.ListingsPublished, 1)
	publisher.Lock.Unlock()

	Stop(publisher)
}

func TestLocalPublisher(t *testing.T) {
	home, err := ioutil.TempDir("", "pub")
	require.Nil(t, err)
	defer os.RemoveAll(home)

	publisher := NewLocalMarketDataPublisher(home, tmlog.NewNopLogger(), testPublicationConfig())
	block := testBlock()
	publishCollections(publisher, block.height, block.timestamp, block.collections)
	publishListings(publisher, block.height, block.timestamp, block.listings)
	publisher.Stop()

	file, err := os.Open(filepath.Join(home, LocalPublishFile))
	require.Nil(t, err)
	defer file.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var line map[string]interface{}
		require.Nil(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)
	require.Equal(t, "Collections", lines[0]["type"])
	require.Equal(t, "Listings", lines[1]["type"])
	msg := lines[1]["msg"].(map[string]interface{})
	require.Equal(t, float64(3), msg["numOfMsgs"])
}

func TestNoPublisherWithoutSink(t *testing.T) {
	cfg := testPublicationConfig()
	cfg.PublishLocal = false
	require.Nil(t, NewMarketDataPublisher(tmlog.NewNopLogger(), "", cfg, nil))
}

type panickingSink struct{}

func (panickingSink) publish(AvroOrJsonMsg, msgType, int64, int64) { panic("broker down") }
func (panickingSink) Stop() {}

func TestAggregatedPublisher(t *testing.T) {
	first := &MockMarketDataPublisher{Lock: &sync.Mutex{}}
	second := &MockMarketDataPublisher{Lock: &sync.Mutex{}}
	publisher := NewAggregatedMarketDataPublisher(tmlog.NewNopLogger(), first, nil, panickingSink{}, second)

	block := testBlock()
	publishCollections(publisher, block.height, block.timestamp, block.collections)
	publishListings(publisher, block.height, block.timestamp, block.listings)

	// the failing sink in between does not keep the message from the last one
	for _, sink := range []*MockMarketDataPublisher{first, second} {
		require.Equal(t, uint32(2), sink.Published())
		require.Len(t, sink.CollectionsPublished, 1)
		require.Len(t, sink.ListingsPublished, 1)
		require.Equal(t, 3, sink.ListingsPublished[0].NumOfMsgs)
	}

	publisher.Stop()
	require.Empty(t, first.ListingsPublished)
	require.Empty(t, second.CollectionsPublished)
}
