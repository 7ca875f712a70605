package pub

import (
	"os"
	"testing"

	"github.com/linkedin/goavro"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/nft-market/common/log"
	"github.com/bnb-chain/nft-market/plugins/market"
)

// This test ensures schema or AvroMsg change are consistent and prevent marshal error in runtime

var kafkaPublisher = &KafkaMarketDataPublisher{}

func TestMain(m *testing.M) {
	Logger = log.With("module", "pub")
	if err := kafkaPublisher.initAvroCodecs(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestListingsMarshaling(t *testing.T) {
	msg := Listings{
		Height:    42,
		Timestamp: 1600000000000,
		NumOfMsgs: 2,
		Listings: []*Listing{
			{TxHash: "tx1", Action: market.ListingCreated, Listing: "l-1", Seller: "s-1", Collection: "c-1",
				Asset: "a-1", Price: 1000000000, Timestamp: 1600000000},
			{TxHash: "tx2", Action: market.ListingSold, Listing: "l-1", Seller: "s-1", Buyer: "b-1",
				Collection: "c-1", Asset: "a-1", Price: 1000000000, Fee: 15000000, Timestamp: 1600000000},
		},
	}
	bz, err := kafkaPublisher.marshal(&msg, listingsTpe)
	require.Nil(t, err)

	codec, err := goavro.NewCodec(listingsSchema)
	require.Nil(t, err)
	native, _, err := codec.NativeFromBinary(bz)
	require.Nil(t, err)
	record := native.(map[string]interface{})
	require.Equal(t, int64(42), record["height"])
	listings := record["listings"].([]interface{})
	require.Len(t, listings, 2)
	sold := listings[1].(map[string]interface{})
	require.Equal(t, "b-1", sold["buyer"])
	require.Equal(t, int64(15000000), sold["fee"])
}

func TestCollectionsMarshaling(t *testing.T) {
	msg := Collections{42, 100, 1, []*Collection{{"tx1", "c-1", "u-1", "punks", "ipfs://punks", 100}}}
	_, err := kafkaPublisher.marshal(&msg, collectionsTpe)
	require.Nil(t, err)
}

func TestUnknownTypeMarshaling(t *testing.T) {
	msg := Collections{}
	_, err := kafkaPublisher.marshal(&msg, msgType(42))
	require.NotNil(t, err)
}
