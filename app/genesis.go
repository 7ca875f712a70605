package app

import (
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"

	"github.com/bnb-chain/nft-market/common/types"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
	"github.com/bnb-chain/nft-market/wire"
)

// DefaultKeyPass only for private test net
var DefaultKeyPass = "12345678"

// the admin account of a fresh chain gets 1000000 native tokens
var DefaultAdminCoins = types.NativeCoins(1000000e8)

type GenesisState struct {
	Accounts []GenesisAccount    `json:"accounts"`
	Nft      nft.GenesisState    `json:"nft"`
	Market   market.GenesisState `json:"market"`
}

// GenesisAccount doesn't need pubkey or sequence
type GenesisAccount struct {
	Address sdk.AccAddress `json:"address"`
	Coins   sdk.Coins      `json:"coins"`
}

func NewGenesisAccount(acc sdk.Account) GenesisAccount {
	return GenesisAccount{
		Address: acc.GetAddress(),
		Coins:   acc.GetCoins(),
	}
}

// convert GenesisAccount to a base account, the account number is assigned by the init chainer
func (ga *GenesisAccount) ToAccount() *auth.BaseAccount {
	return &auth.BaseAccount{
		Address: ga.Address,
		Coins:   ga.Coins.Sort(),
	}
}

// MarketAppGenState builds the genesis of a single operator chain: admin is funded
// and the market opens with admin collecting the fees.
func MarketAppGenState(cdc *wire.Codec, admin sdk.AccAddress, takerFeeBps int64) (json.RawMessage, error) {
	if len(admin) != sdk.AddrLen {
		return nil, errors.New("genesis admin address is required")
	}
	genesisState := GenesisState{
		Accounts: []GenesisAccount{{Address: admin, Coins: DefaultAdminCoins}},
		Nft:      nft.GenesisState{},
		Market: market.GenesisState{
			Market: &market.Market{
				Admin:        admin,
				FeeRecipient: admin,
				TakerFeeBps:  takerFeeBps,
			},
		},
	}
	if err := ValidateGenesisState(genesisState); err != nil {
		return nil, err
	}
	return wire.MarshalJSONIndent(cdc, genesisState)
}

// ValidateGenesisState rejects duplicate accounts and invalid plugin state.
func ValidateGenesisState(genesisState GenesisState) error {
	seen := make(map[string]bool, len(genesisState.Accounts))
	for _, acc := range genesisState.Accounts {
		if len(acc.Address) != sdk.AddrLen {
			return fmt.Errorf("invalid genesis account address %X", []byte(acc.Address))
		}
		key := string(acc.Address)
		if seen[key] {
			return fmt.Errorf("duplicate genesis account %s", acc.Address)
		}
		seen[key] = true
		if !acc.Coins.IsValid() {
			return fmt.Errorf("invalid coins %s for genesis account %s", acc.Coins, acc.Address)
		}
	}
	if err := nft.ValidateGenesis(genesisState.Nft); err != nil {
		return err
	}
	if err := market.ValidateGenesis(genesisState.Market); err != nil {
		return err
	}
	return validateListingCustody(genesisState.Nft, genesisState.Market)
}

// validateListingCustody requires the asset of every active listing to be held by the listing authority.
func validateListingCustody(nftState nft.GenesisState, marketState market.GenesisState) error {
	assets := make(map[string]nft.Asset, len(nftState.Assets))
	for _, asset := range nftState.Assets {
		assets[string(asset.Address)] = asset
	}
	for _, listing := range marketState.Listings {
		if !listing.IsActive {
			continue
		}
		asset, ok := assets[string(listing.Asset)]
		if !ok {
			return fmt.Errorf("listing %s custodies unknown asset %s", listing.Address, listing.Asset)
		}
		if !asset.Collection.Equals(listing.Collection) {
			return fmt.Errorf("listing %s names collection %s, asset %s belongs to %s",
				listing.Address, listing.Collection, asset.Address, asset.Collection)
		}
		if !asset.Owner.Equals(listing.Address) {
			return fmt.Errorf("asset %s of listing %s is held by %s", asset.Address, listing.Address, asset.Owner)
		}
	}
	return nil
}
