package pub

import (
	"fmt"

	tmlog "github.com/tendermint/tendermint/libs/log"
)

// AggregatedMarketDataPublisher hands every message to each sink in turn. A sink that panics is
// logged and skipped for that message, the other sinks still receive it.
type AggregatedMarketDataPublisher struct {
	sinks  []MarketDataPublisher
	logger tmlog.Logger
}

func NewAggregatedMarketDataPublisher(logger tmlog.Logger, sinks ...MarketDataPublisher) *AggregatedMarketDataPublisher {
	kept := make([]MarketDataPublisher, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			kept = append(kept, sink)
		}
	}
	return &AggregatedMarketDataPublisher{sinks: kept, logger: logger}
}

func (publisher *AggregatedMarketDataPublisher) publish(msg AvroOrJsonMsg, tpe msgType, height int64, timestamp int64) {
	for idx, sink := range publisher.sinks {
		publisher.publishTo(idx, sink, msg, tpe, height, timestamp)
	}
}

func (publisher *AggregatedMarketDataPublisher) publishTo(idx int, sink MarketDataPublisher, msg AvroOrJsonMsg,
	tpe msgType, height int64, timestamp int64) {
	defer func() {
		if r := recover(); r != nil {
			publisher.logger.Error("market data sink failed", "sink", fmt.Sprintf("%d:%T", idx, sink),
				"type", tpe.String(), "height", height, "err", r)
		}
	}()
	sink.publish(msg, tpe, height, timestamp)
}

func (publisher *AggregatedMarketDataPublisher) Stop() {
	for _, sink := range publisher.sinks {
		sink.Stop()
	}
}
