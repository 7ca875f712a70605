package pub

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/deathowl/go-metrics-prometheus"
	"github.com/eapache/go-resiliency/breaker"
	"github.com/linkedin/goavro"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/app/config"
)

const (
	KafkaBrokerSep = ";"
)

type KafkaMarketDataPublisher struct {
	listingsCodec    *goavro.Codec
	collectionsCodec *goavro.Codec

	cfg       *config.PublicationConfig
	producers map[string]sarama.SyncProducer // topic -> producer
}

func (publisher *KafkaMarketDataPublisher) newProducers() (saramaCfg *sarama.Config, err error) {
	saramaCfg = sarama.NewConfig()
	if saramaCfg.Version, err = sarama.ParseKafkaVersion(publisher.cfg.KafkaVersion); err != nil {
		return
	}
	if saramaCfg.ClientID, err = os.Hostname(); err != nil {
		return
	}

	saramaCfg.Producer.Partitioner = sarama.NewRandomPartitioner
	saramaCfg.Producer.MaxMessageBytes = 100 * 1024 * 1024
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Retry.Max = 20
	saramaCfg.Producer.Compression = sarama.CompressionGZIP

	// This MIGHT be kafka java client's equivalent max.in.flight.requests.per.connection
	// to make sure messages won't out-of-order
	// Refer: https://github.com/Shopify/sarama/issues/718
	saramaCfg.Net.MaxOpenRequests = 1

	if publisher.cfg.KafkaUserName != "" {
		saramaCfg.Net.SASL.Enable = true
		saramaCfg.Net.SASL.User = publisher.cfg.KafkaUserName
		saramaCfg.Net.SASL.Password = publisher.cfg.KafkaPassword
	}

	if publisher.cfg.PublishListings() {
		if err = publisher.addProducer(publisher.cfg.ListingTopic, publisher.cfg.ListingKafka, saramaCfg); err != nil {
			Logger.Error("failed to create listings producer", "err", err)
			return
		}
	}
	if publisher.cfg.PublishCollection {
		if err = publisher.addProducer(publisher.cfg.CollectionTopic, publisher.cfg.CollectionKafka, saramaCfg); err != nil {
			Logger.Error("failed to create collections producer", "err", err)
			return
		}
	}
	return
}

func (publisher *KafkaMarketDataPublisher) addProducer(topic, brokers string, saramaCfg *sarama.Config) (err error) {
	if _, ok := publisher.producers[topic]; ok {
		return nil
	}
	publisher.producers[topic], err = publisher.connectWithRetry(strings.Split(brokers, KafkaBrokerSep), saramaCfg)
	return err
}

func (publisher *KafkaMarketDataPublisher) topic(tpe msgType) string {
	switch tpe {
	case listingsTpe:
		return publisher.cfg.ListingTopic
	case collectionsTpe:
		return publisher.cfg.CollectionTopic
	default:
		return ""
	}
}

func (publisher *KafkaMarketDataPublisher) prepareMessage(
	topic string,
	msgId string,
	timeStamp int64,
	msgTpe msgType,
	message []byte) *sarama.ProducerMessage {
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Partition: -1,
		Key:       sarama.StringEncoder(fmt.Sprintf("%s_%d_%s", msgId, timeStamp, msgTpe.String())),
		Value:     sarama.ByteEncoder(message),
	}

	return msg
}

func (publisher *KafkaMarketDataPublisher) publish(avroMessage AvroOrJsonMsg, tpe msgType, height, timestamp int64) {
	topic := publisher.topic(tpe)

	if msg, err := publisher.marshal(avroMessage, tpe); err == nil {
		kafkaMsg := publisher.prepareMessage(topic, strconv.FormatInt(height, 10), timestamp, tpe, msg)
		if partition, offset, err := publisher.publishWithRetry(kafkaMsg, topic); err == nil {
			Logger.Info("published", "topic", topic, "msg", avroMessage.String(), "offset", offset, "partition", partition)
		} else {
			Logger.Error("failed to publish", "topic", topic, "msg", avroMessage.String(), "err", err)
		}
	} else {
		Logger.Error("failed to publish", "topic", topic, "msg", avroMessage.String(), "err", err)
	}
}

func (publisher *KafkaMarketDataPublisher) Stop() {
	Logger.Debug("start to stop KafkaMarketDataPublisher")
	for topic, producer := range publisher.producers {
		// nil check because this method would be called when we failed to create producer
		if producer != nil {
			if err := producer.Close(); err != nil {
				Logger.Error("failed to stop producer for topic", "topic", topic, "err", err)
			}
		}
	}
	Logger.Debug("finished stop KafkaMarketDataPublisher")
}

// endlessly retry on retriable errors, the abnormal situation should be reported by prometheus alarm
func (publisher *KafkaMarketDataPublisher) connectWithRetry(
	hostports []string,
	saramaCfg *sarama.Config) (producer sarama.SyncProducer, err error) {
	backOffInSeconds := time.Duration(1)

	for {
		if producer, err = sarama.NewSyncProducer(hostports, saramaCfg); err == sarama.ErrOutOfBrokers || err == breaker.ErrBreakerOpen {
			backOffInSeconds <<= 1
			Logger.Error("encountered retriable error, retrying...", "after", backOffInSeconds, "err", err)
			time.Sleep(backOffInSeconds * time.Second)
		} else {
			return
		}
	}
}

// endlessly retry on retriable errors, the abnormal situation should be reported by prometheus alarm
func (publisher *KafkaMarketDataPublisher) publishWithRetry(
	message *sarama.ProducerMessage,
	topic string) (partition int32, offset int64, err error) {
	producer, ok := publisher.producers[topic]
	if !ok || producer == nil {
		return 0, 0, errors.Errorf("no producer for topic %q", topic)
	}
	backOffInSeconds := time.Duration(1)

	for {
		if partition, offset, err = producer.SendMessage(message); err == sarama.ErrOutOfBrokers || err == breaker.ErrBreakerOpen {
			backOffInSeconds <<= 1
			Logger.Error("encountered retriable error, retrying...", "after", backOffInSeconds, "err", err)
			time.Sleep(backOffInSeconds * time.Second)
		} else {
			return
		}
	}
}

func (publisher *KafkaMarketDataPublisher) marshal(msg AvroOrJsonMsg, tpe msgType) ([]byte, error) {
	native := msg.ToNativeMap()
	Logger.Debug("msgDetail", "msg", native)
	var codec *goavro.Codec
	switch tpe {
	case listingsTpe:
		codec = publisher.listingsCodec
	case collectionsTpe:
		codec = publisher.collectionsCodec
	default:
		return nil, fmt.Errorf("doesn't support marshal kafka msg tpe: %s", tpe.String())
	}
	bb, err := codec.BinaryFromNative(nil, native)
	if err != nil {
		Logger.Error("failed to serialize message", "msg", msg, "err", err)
	}
	return bb, err
}

func (publisher *KafkaMarketDataPublisher) initAvroCodecs() (err error) {
	if publisher.listingsCodec, err = goavro.NewCodec(listingsSchema); err != nil {
		return err
	} else if publisher.collectionsCodec, err = goavro.NewCodec(collectionsSchema); err != nil {
		return err
	}
	return nil
}

func NewKafkaMarketDataPublisher(
	logger log.Logger, cfg *config.PublicationConfig) (publisher *KafkaMarketDataPublisher) {

	sarama.Logger = saramaLogger{logger.With("module", "sarama")}
	publisher = &KafkaMarketDataPublisher{
		cfg:       cfg,
		producers: make(map[string]sarama.SyncProducer),
	}

	if err := publisher.initAvroCodecs(); err != nil {
		logger.Error("failed to initialize avro codec", "err", err)
		panic(err)
	}

	if saramaCfg, err := publisher.newProducers(); err != nil {
		logger.Error("failed to create new kafka producer", "err", err)
		publisher.Stop()
		panic(err)
	} else {
		// we have to use the same prometheus registerer with tendermint
		// so that we can share same host:port for prometheus daemon
		prometheusRegistry := prometheus.DefaultRegisterer
		metricsRegistry := saramaCfg.MetricRegistry
		pClient := prometheusmetrics.NewPrometheusProvider(
			metricsRegistry,
			"",
			"publication",
			prometheusRegistry,
			1*time.Second)
		go pClient.UpdatePrometheusMetrics()
	}

	return publisher
}
