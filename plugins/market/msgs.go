package market

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	MsgRoute = "market"

	InitMarketMsgType    = "marketInit"
	UpdateMarketMsgType  = "marketUpdate"
	AddListingMsgType    = "marketAddListing"
	MatchListingMsgType  = "marketMatchListing"
	RemoveListingMsgType = "marketRemoveListing"
)

func mustMarshalSignBytes(msg interface{}) []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

func validateAddresses(addrs ...sdk.AccAddress) sdk.Error {
	for _, addr := range addrs {
		if len(addr) != sdk.AddrLen {
			return sdk.ErrInvalidAddress(fmt.Sprintf("length of address(%s) should be %d", addr, sdk.AddrLen))
		}
	}
	return nil
}

var _ sdk.Msg = InitMarketMsg{}

type InitMarketMsg struct {
	From         sdk.AccAddress `json:"from"`
	FeeRecipient sdk.AccAddress `json:"fee_recipient"`
	TakerFeeBps  int64          `json:"taker_fee_bps"`
}

func NewInitMarketMsg(from, feeRecipient sdk.AccAddress, takerFeeBps int64) InitMarketMsg {
	return InitMarketMsg{From: from, FeeRecipient: feeRecipient, TakerFeeBps: takerFeeBps}
}

func (msg InitMarketMsg) Route() string { return MsgRoute }
func (msg InitMarketMsg) Type() string  { return InitMarketMsgType }
func (msg InitMarketMsg) String() string {
	return fmt.Sprintf("InitMarket{%v#%v#%v}", msg.From, msg.FeeRecipient, msg.TakerFeeBps)
}
func (msg InitMarketMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg InitMarketMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg InitMarketMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg InitMarketMsg) ValidateBasic() sdk.Error {
	if err := validateAddresses(msg.From, msg.FeeRecipient); err != nil {
		return err
	}
	return validateFeeBps(DefaultCodespace, msg.TakerFeeBps)
}

var _ sdk.Msg = UpdateMarketMsg{}

type UpdateMarketMsg struct {
	From         sdk.AccAddress `json:"from"`
	FeeRecipient sdk.AccAddress `json:"fee_recipient"`
	TakerFeeBps  int64          `json:"taker_fee_bps"`
}

func NewUpdateMarketMsg(from, feeRecipient sdk.AccAddress, takerFeeBps int64) UpdateMarketMsg {
	return UpdateMarketMsg{From: from, FeeRecipient: feeRecipient, TakerFeeBps: takerFeeBps}
}

func (msg UpdateMarketMsg) Route() string { return MsgRoute }
func (msg UpdateMarketMsg) Type() string  { return UpdateMarketMsgType }
func (msg UpdateMarketMsg) String() string {
	return fmt.Sprintf("UpdateMarket{%v#%v#%v}", msg.From, msg.FeeRecipient, msg.TakerFeeBps)
}
func (msg UpdateMarketMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg UpdateMarketMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg UpdateMarketMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

// ValidateBasic leaves the fee range to the keeper, so an admin mistake reports FeeTooHigh from the
// state machine rather than being dropped at CheckTx.
func (msg UpdateMarketMsg) ValidateBasic() sdk.Error {
	return validateAddresses(msg.From, msg.FeeRecipient)
}

var _ sdk.Msg = AddListingMsg{}

type AddListingMsg struct {
	From       sdk.AccAddress `json:"from"`
	Collection sdk.AccAddress `json:"collection"`
	Asset      sdk.AccAddress `json:"asset"`
	Price      int64          `json:"price"`
}

func NewAddListingMsg(from, collection, asset sdk.AccAddress, price int64) AddListingMsg {
	return AddListingMsg{From: from, Collection: collection, Asset: asset, Price: price}
}

func (msg AddListingMsg) Route() string { return MsgRoute }
func (msg AddListingMsg) Type() string  { return AddListingMsgType }
func (msg AddListingMsg) String() string {
	return fmt.Sprintf("AddListing{%v#%v#%v#%v}", msg.From, msg.Collection, msg.Asset, msg.Price)
}
func (msg AddListingMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg AddListingMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg AddListingMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg AddListingMsg) ValidateBasic() sdk.Error {
	if err := validateAddresses(msg.From, msg.Collection, msg.Asset); err != nil {
		return err
	}
	if msg.Price <= 0 {
		return ErrInvalidPrice(DefaultCodespace, msg.Price)
	}
	return nil
}

var _ sdk.Msg = MatchListingMsg{}

// MatchListingMsg buys a listing. Seller, Collection, Asset and FeeRecipient must repeat what the
// listing and the fee policy hold, so a buyer never pays for something other than what they named.
type MatchListingMsg struct {
	From         sdk.AccAddress `json:"from"`
	Listing      sdk.AccAddress `json:"listing"`
	Seller       sdk.AccAddress `json:"seller"`
	Collection   sdk.AccAddress `json:"collection"`
	Asset        sdk.AccAddress `json:"asset"`
	FeeRecipient sdk.AccAddress `json:"fee_recipient"`
}

func NewMatchListingMsg(from, listing, seller, collection, asset, feeRecipient sdk.AccAddress) MatchListingMsg {
	return MatchListingMsg{
		From:         from,
		Listing:      listing,
		Seller:       seller,
		Collection:   collection,
		Asset:        asset,
		FeeRecipient: feeRecipient,
	}
}

func (msg MatchListingMsg) Route() string { return MsgRoute }
func (msg MatchListingMsg) Type() string  { return MatchListingMsgType }
func (msg MatchListingMsg) String() string {
	return fmt.Sprintf("MatchListing{%v#%v#%v#%v#%v#%v}", msg.From, msg.Listing, msg.Seller, msg.Collection,
		msg.Asset, msg.FeeRecipient)
}
func (msg MatchListingMsg) GetInvolvedAddresses() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From, msg.Seller, msg.FeeRecipient, msg.Listing}
}
func (msg MatchListingMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg MatchListingMsg) GetSignBytes() []byte         { return mustMarshalSignBytes(msg) }

func (msg MatchListingMsg) ValidateBasic() sdk.Error {
	return validateAddresses(msg.From, msg.Listing, msg.Seller, msg.Collection, msg.Asset, msg.FeeRecipient)
}

var _ sdk.Msg = RemoveListingMsg{}

type RemoveListingMsg struct {
	From       sdk.AccAddress `json:"from"`
	Collection sdk.AccAddress `json:"collection"`
	Asset      sdk.AccAddress `json:"asset"`
}

func NewRemoveListingMsg(from, collection, asset sdk.AccAddress) RemoveListingMsg {
	return RemoveListingMsg{From: from, Collection: collection, Asset: asset}
}

func (msg RemoveListingMsg) Route() string { return MsgRoute }
func (msg RemoveListingMsg) Type() string  { return RemoveListingMsgType }
func (msg RemoveListingMsg) String() string {
	return fmt.Sprintf("RemoveListing{%v#%v#%v}", msg.From, msg.Collection, msg.Asset)
}
func (msg RemoveListingMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg RemoveListingMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg RemoveListingMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg RemoveListingMsg) ValidateBasic() sdk.Error {
	return validateAddresses(msg.From, msg.Collection, msg.Asset)
}
