package nft

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	MsgRoute = "nft"

	CreateCollectionMsgType = "nftCreateCollection"
	MintAssetMsgType        = "nftMint"
	TransferAssetMsgType    = "nftTransfer"
)

func validateMetadata(name, uri string) sdk.Error {
	if len(name) == 0 || len(name) > MaxNameLength {
		return ErrInvalidName(DefaultCodespace,
			fmt.Sprintf("length of name(%d) should be larger than 0 and less than or equal to %d", len(name), MaxNameLength))
	}
	if len(uri) > MaxURILength {
		return ErrInvalidURI(DefaultCodespace,
			fmt.Sprintf("length of uri(%d) should be less than or equal to %d", len(uri), MaxURILength))
	}
	return nil
}

func mustMarshalSignBytes(msg interface{}) []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = CreateCollectionMsg{}

type CreateCollectionMsg struct {
	From sdk.AccAddress `json:"from"`
	Name string         `json:"name"`
	URI  string         `json:"uri"`
}

func NewCreateCollectionMsg(from sdk.AccAddress, name, uri string) CreateCollectionMsg {
	return CreateCollectionMsg{From: from, Name: name, URI: uri}
}

func (msg CreateCollectionMsg) Route() string { return MsgRoute }
func (msg CreateCollectionMsg) Type() string  { return CreateCollectionMsgType }
func (msg CreateCollectionMsg) String() string {
	return fmt.Sprintf("CreateCollection{%v#%v#%v}", msg.From, msg.Name, msg.URI)
}
func (msg CreateCollectionMsg) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg CreateCollectionMsg) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }
func (msg CreateCollectionMsg) GetSignBytes() []byte                   { return mustMarshalSignBytes(msg) }

func (msg CreateCollectionMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.From.String())
	}
	return validateMetadata(msg.Name, msg.URI)
}

var _ sdk.Msg = MintAssetMsg{}

type MintAssetMsg struct {
	From       sdk.AccAddress `json:"from"`
	Collection sdk.AccAddress `json:"collection"`
	Name       string         `json:"name"`
	URI        string         `json:"uri"`
	Recipient  sdk.AccAddress `json:"recipient"`
}

func NewMintAssetMsg(from, collection sdk.AccAddress, name, uri string, recipient sdk.AccAddress) MintAssetMsg {
	return MintAssetMsg{From: from, Collection: collection, Name: name, URI: uri, Recipient: recipient}
}

func (msg MintAssetMsg) Route() string { return MsgRoute }
func (msg MintAssetMsg) Type() string  { return MintAssetMsgType }
func (msg MintAssetMsg) String() string {
	return fmt.Sprintf("MintAsset{%v#%v#%v#%v#%v}", msg.From, msg.Collection, msg.Name, msg.URI, msg.Recipient)
}
func (msg MintAssetMsg) GetInvolvedAddresses() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From, msg.Recipient}
}
func (msg MintAssetMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg MintAssetMsg) GetSignBytes() []byte         { return mustMarshalSignBytes(msg) }

func (msg MintAssetMsg) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.From.String())
	}
	if len(msg.Collection) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.Collection.String())
	}
	if len(msg.Recipient) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(msg.Recipient.String())
	}
	return validateMetadata(msg.Name, msg.URI)
}

var _ sdk.Msg = TransferAssetMsg{}

type TransferAssetMsg struct {
	From       sdk.AccAddress `json:"from"`
	Collection sdk.AccAddress `json:"collection"`
	Asset      sdk.AccAddress `json:"asset"`
	To         sdk.AccAddress `json:"to"`
}

func NewTransferAssetMsg(from, collection, asset, to sdk.AccAddress) TransferAssetMsg {
	return TransferAssetMsg{From: from, Collection: collection, Asset: asset, To: to}
}

func (msg TransferAssetMsg) Route() string { return MsgRoute }
func (msg TransferAssetMsg) Type() string  { return TransferAssetMsgType }
func (msg TransferAssetMsg) String() string {
	return fmt.Sprintf("TransferAsset{%v#%v#%v#%v}", msg.From, msg.Collection, msg.Asset, msg.To)
}
func (msg TransferAssetMsg) GetInvolvedAddresses() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From, msg.To}
}
func (msg TransferAssetMsg) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }
func (msg TransferAssetMsg) GetSignBytes() []byte         { return mustMarshalSignBytes(msg) }

func (msg TransferAssetMsg) ValidateBasic() sdk.Error {
	for _, addr := range []sdk.AccAddress{msg.From, msg.Collection, msg.Asset, msg.To} {
		if len(addr) != sdk.AddrLen {
			return sdk.ErrInvalidAddress(addr.String())
		}
	}
	return nil
}
