package pub

import (
	"fmt"

	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
)

type msgType int8

const (
	listingsTpe msgType = iota
	collectionsTpe
)

// the strings should be keep consistence with top level record name in schemas.go
func (this msgType) String() string {
	switch this {
	case listingsTpe:
		return "Listings"
	case collectionsTpe:
		return "Collections"
	default:
		return "Unknown"
	}
}

// AvroOrJsonMsg is serialized with avro for kafka and with encoding/json for the local publisher
type AvroOrJsonMsg interface {
	ToNativeMap() map[string]interface{}
	String() string
}

type Listings struct {
	Height    int64      `json:"height"`
	Timestamp int64      `json:"timestamp"` // milli seconds since Epoch
	NumOfMsgs int        `json:"numOfMsgs"` // consumer can verify messages they received against this field to make sure they does not miss messages
	Listings  []*Listing `json:"listings"`
}

func (msg *Listings) String() string {
	return fmt.Sprintf("Listings at height: %d, numOfMsgs: %d", msg.Height, msg.NumOfMsgs)
}

func (msg *Listings) ToNativeMap() map[string]interface{} {
	var native = make(map[string]interface{})
	native["height"] = msg.Height
	native["timestamp"] = msg.Timestamp
	native["numOfMsgs"] = msg.NumOfMsgs
	ls := make([]map[string]interface{}, len(msg.Listings), len(msg.Listings))
	for idx, listing := range msg.Listings {
		ls[idx] = listing.toNativeMap()
	}
	native["listings"] = ls
	return native
}

// Listing is one lifecycle step of a listing. Buyer and Fee are only set when Action is "sold".
type Listing struct {
	TxHash     string `json:"txHash"`
	Action     string `json:"action"`
	Listing    string `json:"listing"`
	Seller     string `json:"seller"`
	Buyer      string `json:"buyer,omitempty"`
	Collection string `json:"collection"`
	Asset      string `json:"asset"`
	Price      int64  `json:"price"`
	Fee        int64  `json:"fee"`
	Timestamp  int64  `json:"timestamp"`
}

func (msg *Listing) String() string {
	return fmt.Sprintf("Listing %s: %s, seller: %s, buyer: %s, price: %d, fee: %d",
		msg.Action, msg.Listing, msg.Seller, msg.Buyer, msg.Price, msg.Fee)
}

func (msg *Listing) toNativeMap() map[string]interface{} {
	var native = make(map[string]interface{})
	native["txHash"] = msg.TxHash
	native["action"] = msg.Action
	native["listing"] = msg.Listing
	native["seller"] = msg.Seller
	native["buyer"] = msg.Buyer
	native["collection"] = msg.Collection
	native["asset"] = msg.Asset
	native["price"] = msg.Price
	native["fee"] = msg.Fee
	native["timestamp"] = msg.Timestamp
	return native
}

func listingFromEvent(event market.ListingEvent) (*Listing, bool) {
	switch e := event.(type) {
	case market.ListingCreatedEvent:
		return &Listing{
			TxHash:     e.TxHash,
			Action:     market.ListingCreated,
			Listing:    e.Listing,
			Seller:     e.Seller,
			Collection: e.Collection,
			Asset:      e.Asset,
			Price:      e.Price,
			Timestamp:  e.Timestamp,
		}, true
	case market.ListingSoldEvent:
		return &Listing{
			TxHash:     e.TxHash,
			Action:     market.ListingSold,
			Listing:    e.Listing,
			Seller:     e.Seller,
			Buyer:      e.Buyer,
			Collection: e.Collection,
			Asset:      e.Asset,
			Price:      e.Price,
			Fee:        e.Fee,
			Timestamp:  e.Timestamp,
		}, true
	case market.ListingCanceledEvent:
		return &Listing{
			TxHash:     e.TxHash,
			Action:     market.ListingCanceled,
			Listing:    e.Listing,
			Seller:     e.Seller,
			Collection: e.Collection,
			Asset:      e.Asset,
			Timestamp:  e.Timestamp,
		}, true
	default:
		return nil, false
	}
}

type Collections struct {
	Height      int64         `json:"height"`
	Timestamp   int64         `json:"timestamp"`
	NumOfMsgs   int           `json:"numOfMsgs"`
	Collections []*Collection `json:"collections"`
}

func (msg *Collections) String() string {
	return fmt.Sprintf("Collections at height: %d, numOfMsgs: %d", msg.Height, msg.NumOfMsgs)
}

func (msg *Collections) ToNativeMap() map[string]interface{} {
	var native = make(map[string]interface{})
	native["height"] = msg.Height
	native["timestamp"] = msg.Timestamp
	native["numOfMsgs"] = msg.NumOfMsgs
	cs := make([]map[string]interface{}, len(msg.Collections), len(msg.Collections))
	for idx, collection := range msg.Collections {
		cs[idx] = collection.toNativeMap()
	}
	native["collections"] = cs
	return native
}

type Collection struct {
	TxHash          string `json:"txHash"`
	Collection      string `json:"collection"`
	UpdateAuthority string `json:"updateAuthority"`
	Name            string `json:"name"`
	URI             string `json:"uri"`
	Timestamp       int64  `json:"timestamp"`
}

func (msg *Collection) toNativeMap() map[string]interface{} {
	var native = make(map[string]interface{})
	native["txHash"] = msg.TxHash
	native["collection"] = msg.Collection
	native["updateAuthority"] = msg.UpdateAuthority
	native["name"] = msg.Name
	native["uri"] = msg.URI
	native["timestamp"] = msg.Timestamp
	return native
}

func collectionFromEvent(e nft.CollectionCreatedEvent) *Collection {
	return &Collection{
		TxHash:          e.TxHash,
		Collection:      e.Collection,
		UpdateAuthority: e.UpdateAuthority,
		Name:            e.Name,
		URI:             e.URI,
		Timestamp:       e.Timestamp,
	}
}
