package pub

import (
	"fmt"
	"time"

	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/app/config"
)

var (
	Logger      tmlog.Logger
	Cfg         *config.PublicationConfig
	ToPublishCh chan BlockInfoToPublish
	IsLive      bool
)

type MarketDataPublisher interface {
	publish(msg AvroOrJsonMsg, tpe msgType, height int64, timestamp int64)
	Stop()
}

// NewMarketDataPublisher builds the publishers enabled by cfg and starts the publication goroutine.
// It returns nil when nothing is configured to be published.
func NewMarketDataPublisher(
	logger tmlog.Logger,
	dataPath string,
	cfg *config.PublicationConfig,
	metrics *Metrics) MarketDataPublisher {
	if !cfg.ToPublish() {
		return nil
	}
	Logger = logger.With("module", "pub")

	var publishers []MarketDataPublisher
	if cfg.PublishKafka {
		publishers = append(publishers, NewKafkaMarketDataPublisher(logger, cfg))
	}
	if cfg.PublishLocal {
		publishers = append(publishers, NewLocalMarketDataPublisher(dataPath, logger, cfg))
	}

	var publisher MarketDataPublisher
	if len(publishers) == 1 {
		publisher = publishers[0]
	} else {
		publisher = NewAggregatedMarketDataPublisher(logger.With("module", "pub"), publishers...)
	}
	setup(logger, cfg, publisher, metrics)
	return publisher
}

func setup(logger tmlog.Logger, cfg *config.PublicationConfig, publisher MarketDataPublisher, metrics *Metrics) {
	Logger = logger.With("module", "pub")
	Cfg = cfg
	ToPublishCh = make(chan BlockInfoToPublish, cfg.PublicationChannelSize)
	IsLive = true
	go Publish(publisher, metrics, Logger, cfg, ToPublishCh)
}

func Publish(
	publisher MarketDataPublisher,
	metrics *Metrics,
	Logger tmlog.Logger,
	cfg *config.PublicationConfig,
	ToPublishCh <-chan BlockInfoToPublish) {
	var lastPublishedTime time.Time
	for marketData := range ToPublishCh {
		Logger.Debug("publisher queue status", "size", len(ToPublishCh))
		if metrics != nil {
			metrics.PublicationQueueSize.Set(float64(len(ToPublishCh)))
		}

		publishBlockTime := Timer(Logger, fmt.Sprintf("publish nft market data, height=%d", marketData.height), func() {
			// collections go first so consumers know a collection before any listing of its assets
			if cfg.PublishCollection && len(marketData.collections) > 0 {
				duration := Timer(Logger, "publish collections", func() {
					publishCollections(publisher, marketData.height, marketData.timestamp, marketData.collections)
				})
				if metrics != nil {
					metrics.NumCollections.Set(float64(len(marketData.collections)))
					metrics.PublishCollectionsTimeMs.Set(float64(duration))
				}
			}

			if cfg.PublishListings() && len(marketData.listings) > 0 {
				duration := Timer(Logger, "publish listings", func() {
					publishListings(publisher, marketData.height, marketData.timestamp, marketData.listings)
				})
				if metrics != nil {
					metrics.observeListings(marketData.listings)
					metrics.PublishListingsTimeMs.Set(float64(duration))
				}
			}

			if metrics != nil {
				metrics.PublicationHeight.Set(float64(marketData.height))
				blockInterval := time.Since(lastPublishedTime)
				lastPublishedTime = time.Now()
				metrics.PublicationBlockIntervalMs.Set(float64(blockInterval.Nanoseconds() / int64(time.Millisecond)))
			}
		})

		if metrics != nil {
			metrics.PublishBlockTimeMs.Set(float64(publishBlockTime))
		}
	}
}

func Stop(publisher MarketDataPublisher) {
	if IsLive == false {
		Logger.Error("publication module has already been stopped")
		return
	}

	IsLive = false

	close(ToPublishCh)

	publisher.Stop()
}

func publishListings(publisher MarketDataPublisher, height, timestamp int64, listings []*Listing) {
	msg := Listings{height, timestamp, len(listings), listings}
	publisher.publish(&msg, listingsTpe, height, timestamp)
}

func publishCollections(publisher MarketDataPublisher, height, timestamp int64, collections []*Collection) {
	msg := Collections{height, timestamp, len(collections), collections}
	publisher.publish(&msg, collectionsTpe, height, timestamp)
}

func Timer(logger tmlog.Logger, description string, op func()) (durationMs int64) {
	start := time.Now()
	op()
	durationMs = time.Since(start).Nanoseconds() / int64(time.Millisecond)
	logger.Debug(description, "durationMs", durationMs)
	return durationMs
}
