package pub

import (
	metricsPkg "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"

	"github.com/bnb-chain/nft-market/plugins/market"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Height of last published message
	PublicationHeight metricsPkg.Gauge

	// Size of publication queue
	PublicationQueueSize metricsPkg.Gauge

	// Time between publish this and the last block.
	// Should be (approximate) blocking + abci + publication time
	PublicationBlockIntervalMs metricsPkg.Gauge

	// Time used to publish everything in a block
	PublishBlockTimeMs metricsPkg.Gauge
	// Time used to publish listings
	PublishListingsTimeMs metricsPkg.Gauge
	// Time used to publish collections
	PublishCollectionsTimeMs metricsPkg.Gauge

	// num of listings created in the last published block
	NumListingsCreated metricsPkg.Gauge
	// num of listings sold in the last published block
	NumListingsSold metricsPkg.Gauge
	// num of listings canceled in the last published block
	NumListingsCanceled metricsPkg.Gauge
	// num of collections
	NumCollections metricsPkg.Gauge

	// native tokens paid to sellers
	SaleVolume metricsPkg.Counter
	// native tokens paid to fee recipients
	FeeVolume metricsPkg.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// It registers on the default registerer and must be called once per process.
func PrometheusMetrics() *Metrics {
	return &Metrics{
		PublicationHeight: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "height",
			Help:      "Height of last published messages",
		}, []string{}),
		PublicationQueueSize: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "queue_size",
			Help:      "Size of publication queue",
		}, []string{}),
		PublicationBlockIntervalMs: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "block_interval",
			Help:      "How often we publish a block (ms)",
		}, []string{}),
		PublishBlockTimeMs: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "total_pub_time",
			Help:      "Time to publish everything within a block (ms)",
		}, []string{}),
		PublishListingsTimeMs: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "listings_pub_time",
			Help:      "Time to publish listings (ms)",
		}, []string{}),
		PublishCollectionsTimeMs: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "collections_pub_time",
			Help:      "Time to publish collections (ms)",
		}, []string{}),

		NumListingsCreated: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "num_listing_created",
			Help:      "Number of listing creations published",
		}, []string{}),
		NumListingsSold: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "num_listing_sold",
			Help:      "Number of sales published",
		}, []string{}),
		NumListingsCanceled: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "num_listing_canceled",
			Help:      "Number of listing cancellations published",
		}, []string{}),
		NumCollections: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "num_collection",
			Help:      "Number of collections published",
		}, []string{}),

		SaleVolume: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Subsystem: "market",
			Name:      "sale_volume",
			Help:      "Native tokens paid for settled listings",
		}, []string{}),
		FeeVolume: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Subsystem: "market",
			Name:      "fee_volume",
			Help:      "Native tokens collected as taker fee",
		}, []string{}),
	}
}

// NopMetrics returns Metrics that drop every observation.
func NopMetrics() *Metrics {
	return &Metrics{
		PublicationHeight:          discard.NewGauge(),
		PublicationQueueSize:       discard.NewGauge(),
		PublicationBlockIntervalMs: discard.NewGauge(),
		PublishBlockTimeMs:         discard.NewGauge(),
		PublishListingsTimeMs:      discard.NewGauge(),
		PublishCollectionsTimeMs:   discard.NewGauge(),
		NumListingsCreated:         discard.NewGauge(),
		NumListingsSold:            discard.NewGauge(),
		NumListingsCanceled:        discard.NewGauge(),
		NumCollections:             discard.NewGauge(),
		SaleVolume:                 discard.NewCounter(),
		FeeVolume:                  discard.NewCounter(),
	}
}

func (metrics *Metrics) observeListings(listings []*Listing) {
	var created, sold, canceled int
	for _, listing := range listings {
		switch listing.Action {
		case market.ListingCreated:
			created++
		case market.ListingSold:
			sold++
			metrics.SaleVolume.Add(float64(listing.Price))
			metrics.FeeVolume.Add(float64(listing.Fee))
		case market.ListingCanceled:
			canceled++
		}
	}
	metrics.NumListingsCreated.Set(float64(created))
	metrics.NumListingsSold.Set(float64(sold))
	metrics.NumListingsCanceled.Set(float64(canceled))
}
