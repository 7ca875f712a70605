package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	env := setup(t, testPrice+testFee)
	require.Equal(t, GenesisState{}, ExportGenesis(env.ctx, env.keeper))

	env.initMarket(t, testFeeBps)
	listing := env.addListing(t)
	exported := ExportGenesis(env.ctx, env.keeper)
	require.Nil(t, ValidateGenesis(exported))
	require.Equal(t, []Listing{listing}, exported.Listings)

	fresh := setup(t, 0)
	InitGenesis(fresh.ctx, fresh.keeper, exported)
	market, found := fresh.keeper.GetMarket(fresh.ctx)
	require.True(t, found)
	require.Equal(t, *exported.Market, market)
	stored, found := fresh.keeper.GetListing(fresh.ctx, listing.Address)
	require.True(t, found)
	require.Equal(t, listing, stored)
}

func TestValidateGenesis(t *testing.T) {
	env := setup(t, 0)
	require.Nil(t, ValidateGenesis(DefaultGenesisState()))

	tooHigh := GenesisState{Market: &Market{Admin: env.admin, FeeRecipient: env.feeAddr, TakerFeeBps: MaxFeeBps + 1}}
	require.NotNil(t, ValidateGenesis(tooHigh))
	require.Panics(t, func() { InitGenesis(env.ctx, env.keeper, tooHigh) })

	forged := GenesisState{
		Market: &Market{Admin: env.admin, FeeRecipient: env.feeAddr, TakerFeeBps: testFeeBps},
		Listings: []Listing{{
			Address:    env.buyer,
			Seller:     env.seller,
			Collection: env.collection,
			Asset:      env.asset,
			Price:      testPrice,
			IsActive:   true,
		}},
	}
	require.NotNil(t, ValidateGenesis(forged))

	addr, bump, err := DeriveListingAuthority(env.seller, env.collection, env.asset)
	require.Nil(t, err)
	listing := Listing{
		Address:    addr,
		Seller:     env.seller,
		Collection: env.collection,
		Asset:      env.asset,
		Price:      testPrice,
		IsActive:   true,
		Bump:       bump,
	}
	valid := GenesisState{Market: forged.Market, Listings: []Listing{listing}}
	require.Nil(t, ValidateGenesis(valid))

	duplicate := GenesisState{Market: forged.Market, Listings: []Listing{listing, listing}}
	require.NotNil(t, ValidateGenesis(duplicate))

	free := listing
	free.Price = 0
	require.NotNil(t, ValidateGenesis(GenesisState{Market: forged.Market, Listings: []Listing{free}}))
	require.Panics(t, func() {
		InitGenesis(env.ctx, env.keeper, GenesisState{Market: forged.Market, Listings: []Listing{free}})
	})
}
