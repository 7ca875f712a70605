package sub

import (
	"time"

	"github.com/cosmos/cosmos-sdk/pubsub"

	"github.com/bnb-chain/nft-market/app/config"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
)

func SubscribeEvent(sub *pubsub.Subscriber, cfg *config.PublicationConfig) error {
	if cfg.PublishListings() {
		if err := SubscribeListingEvent(sub, cfg); err != nil {
			return err
		}
	}

	if cfg.PublishCollection {
		if err := SubscribeCollectionEvent(sub); err != nil {
			return err
		}
	}

	// commit events data from staging area to 'toPublish' when receiving `TxDeliverEvent`, represents the tx is successfully delivered.
	if err := sub.Subscribe(TxDeliverTopic, func(event pubsub.Event) {
		switch event.(type) {
		case TxDeliverSuccEvent:
			commit()
		case TxDeliverFailEvent:
			discard()
		default:
			sub.Logger.Debug("unknown event")
		}
	}); err != nil {
		return err
	}

	return nil
}

func SubscribeListingEvent(sub *pubsub.Subscriber, cfg *config.PublicationConfig) error {
	return sub.Subscribe(market.Topic, func(event pubsub.Event) {
		switch e := event.(type) {
		case market.ListingCreatedEvent:
			if cfg.PublishListingCreated {
				stagingArea.Listings = append(stagingArea.Listings, e)
			}
		case market.ListingSoldEvent:
			if cfg.PublishListingSold {
				stagingArea.Listings = append(stagingArea.Listings, e)
			}
		case market.ListingCanceledEvent:
			if cfg.PublishListingCanceled {
				stagingArea.Listings = append(stagingArea.Listings, e)
			}
		default:
			sub.Logger.Info("unknown event type")
		}
	})
}

func SubscribeCollectionEvent(sub *pubsub.Subscriber) error {
	return sub.Subscribe(nft.CollectionTopic, func(event pubsub.Event) {
		switch e := event.(type) {
		case nft.CollectionCreatedEvent:
			stagingArea.Collections = append(stagingArea.Collections, e)
		default:
			sub.Logger.Info("unknown event type")
		}
	})
}

//-----------------------------------------------------
var (
	// events to be published, should be cleaned up each block
	toPublish = &ToPublishEvent{EventData: newEventStore()}
	// staging area for accepting events to store
	// should be moved to 'toPublish' when related tx successfully delivered
	stagingArea = newEventStore()
)

type ToPublishEvent struct {
	Height    int64
	Timestamp time.Time
	EventData *EventStore
}

type EventStore struct {
	// listing lifecycle events in delivery order
	Listings []market.ListingEvent
	// collections created in this block
	Collections []nft.CollectionCreatedEvent
}

func newEventStore() *EventStore {
	return &EventStore{}
}

func (store *EventStore) IsEmpty() bool {
	return len(store.Listings) == 0 && len(store.Collections) == 0
}

func Clear() {
	toPublish = &ToPublishEvent{EventData: newEventStore()}
	stagingArea = newEventStore()
}

func ToPublish() *ToPublishEvent {
	return toPublish
}

func SetMeta(height int64, timestamp time.Time) {
	toPublish.Height = height
	toPublish.Timestamp = timestamp
}

func commit() {
	toPublish.EventData.Listings = append(toPublish.EventData.Listings, stagingArea.Listings...)
	toPublish.EventData.Collections = append(toPublish.EventData.Collections, stagingArea.Collections...)
	// clear stagingArea data
	stagingArea = newEventStore()
}

func discard() {
	stagingArea = newEventStore()
}

//---------------------------------------------------------------------
const TxDeliverTopic = pubsub.Topic("TxDeliver")

type TxDeliverEvent struct{}

func (event TxDeliverEvent) GetTopic() pubsub.Topic {
	return TxDeliverTopic
}

type TxDeliverSuccEvent struct {
	TxDeliverEvent
}
type TxDeliverFailEvent struct {
	TxDeliverEvent
}
