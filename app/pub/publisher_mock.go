package pub

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/app/config"
)

type MockMarketDataPublisher struct {
	ListingsPublished    []*Listings
	CollectionsPublished []*Collections

	Lock             *sync.Mutex // as mock publisher is only used in testing, its no harm to have this granularity Lock
	MessagePublished uint32      // atomic integer used to determine the published messages
}

func (publisher *MockMarketDataPublisher) publish(msg AvroOrJsonMsg, tpe msgType, height int64, timestamp int64) {
	publisher.Lock.Lock()
	defer publisher.Lock.Unlock()

	switch tpe {
	case listingsTpe:
		publisher.ListingsPublished = append(publisher.ListingsPublished, msg.(*Listings))
	case collectionsTpe:
		publisher.CollectionsPublished = append(publisher.CollectionsPublished, msg.(*Collections))
	default:
		panic(fmt.Errorf("does not support type %s", tpe.String()))
	}

	atomic.AddUint32(&publisher.MessagePublished, 1)
}

func (publisher *MockMarketDataPublisher) Stop() {
	publisher.Lock.Lock()
	defer publisher.Lock.Unlock()

	publisher.ListingsPublished = make([]*Listings, 0)
	publisher.CollectionsPublished = make([]*Collections, 0)
}

func (publisher *MockMarketDataPublisher) Published() uint32 {
	return atomic.LoadUint32(&publisher.MessagePublished)
}

// NewMockMarketDataPublisher starts the publication goroutine over an in-memory publisher.
func NewMockMarketDataPublisher(logger log.Logger, config *config.PublicationConfig, metrics *Metrics) (publisher *MockMarketDataPublisher) {
	publisher = &MockMarketDataPublisher{
		make([]*Listings, 0),
		make([]*Collections, 0),
		&sync.Mutex{},
		0,
	}
	setup(logger, config, publisher, metrics)
	return publisher
}
