package pub

import (
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
)

// intermediate data structures to deal with concurrent publication between main thread and publisher thread
type BlockInfoToPublish struct {
	height      int64
	timestamp   int64
	listings    []*Listing
	collections []*Collection
}

func NewBlockInfoToPublish(
	height int64,
	timestamp int64,
	listingEvents []market.ListingEvent,
	collectionEvents []nft.CollectionCreatedEvent) BlockInfoToPublish {
	listings := make([]*Listing, 0, len(listingEvents))
	for _, event := range listingEvents {
		if listing, ok := listingFromEvent(event); ok {
			listings = append(listings, listing)
		}
	}
	collections := make([]*Collection, len(collectionEvents), len(collectionEvents))
	for idx, event := range collectionEvents {
		collections[idx] = collectionFromEvent(event)
	}
	return BlockInfoToPublish{
		height,
		timestamp,
		listings,
		collections}
}
