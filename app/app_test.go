package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"

	"github.com/bnb-chain/nft-market/app/config"
	"github.com/bnb-chain/nft-market/app/pub"
	"github.com/bnb-chain/nft-market/common/testutils"
	"github.com/bnb-chain/nft-market/common/types"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
)

const testChainID = "nft-market-test"

type testAccount struct {
	priv     crypto.PrivKey
	addr     sdk.AccAddress
	accNum   int64
	sequence int64
}

type testEnv struct {
	t         *testing.T
	app       *MarketApp
	publisher *pub.MockMarketDataPublisher
	admin     *testAccount
	seller    *testAccount
	buyer     *testAccount
	height    int64
}

func newTestEnv(t *testing.T, takerFeeBps int64) *testEnv {
	cfg := config.DefaultMarketConfig()
	cfg.PublishListingCreated = true
	cfg.PublishListingSold = true
	cfg.PublishListingCanceled = true
	cfg.PublishCollection = true

	logger := log.NewNopLogger()
	app := newMarketApp(logger, dbm.NewMemDB(), nil, cfg, "", pub.NopMetrics)
	publisher := pub.NewMockMarketDataPublisher(logger, cfg.PublicationConfig, pub.NopMetrics())
	app.SetPublisher(publisher)

	env := &testEnv{t: t, app: app, publisher: publisher}
	accounts := make([]*testAccount, 3)
	genesis := GenesisState{Market: market.GenesisState{}}
	for i := range accounts {
		priv, addr := testutils.PrivAndAddr()
		accounts[i] = &testAccount{priv: priv, addr: addr, accNum: int64(i)}
		genesis.Accounts = append(genesis.Accounts, GenesisAccount{Address: addr, Coins: types.NativeCoins(1000e8)})
	}
	env.admin, env.seller, env.buyer = accounts[0], accounts[1], accounts[2]
	genesis.Market.Market = &market.Market{
		Admin:        env.admin.addr,
		FeeRecipient: env.admin.addr,
		TakerFeeBps:  takerFeeBps,
	}

	stateBytes, err := app.Codec.MarshalJSON(genesis)
	require.NoError(t, err)
	app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: stateBytes})
	return env
}

func (env *testEnv) beginBlock() {
	env.height++
	header := abci.Header{ChainID: testChainID, Height: env.height, Time: time.Unix(1600000000+env.height, 0)}
	env.app.BeginBlock(abci.RequestBeginBlock{Header: header})
}

func (env *testEnv) endBlock() {
	env.app.EndBlock(abci.RequestEndBlock{Height: env.height})
	env.app.Commit()
}

func (env *testEnv) deliver(signer *testAccount, msg sdk.Msg) abci.ResponseDeliverTx {
	msgs := []sdk.Msg{msg}
	signBytes := auth.StdSignBytes(testChainID, signer.accNum, signer.sequence, msgs, "", 0, nil)
	sig, err := signer.priv.Sign(signBytes)
	require.NoError(env.t, err)
	tx := auth.NewStdTx(msgs, []auth.StdSignature{{
		PubKey:        signer.priv.PubKey(),
		Signature:     sig,
		AccountNumber: signer.accNum,
		Sequence:      signer.sequence,
	}}, "", 0, nil)
	txBytes, err := env.app.Codec.MarshalBinaryLengthPrefixed(tx)
	require.NoError(env.t, err)

	res := env.app.DeliverTx(abci.RequestDeliverTx{Tx: txBytes})
	if res.IsOK() {
		signer.sequence++
	}
	return res
}

func (env *testEnv) balance(addr sdk.AccAddress) int64 {
	ctx := env.app.NewContext(sdk.RunTxModeCheck, abci.Header{ChainID: testChainID, Height: env.height})
	acc := env.app.AccountKeeper.GetAccount(ctx, addr)
	if acc == nil {
		return 0
	}
	return acc.GetCoins().AmountOf(types.NativeTokenSymbol)
}

// mintListed creates a collection owned by the seller, mints one asset and lists it.
func (env *testEnv) mintListed(price int64) (collection, asset, listing sdk.AccAddress) {
	res := env.deliver(env.seller, nft.NewCreateCollectionMsg(env.seller.addr, "Punks", "https://example.com/punks"))
	require.True(env.t, res.IsOK(), res.Log)
	collection = sdk.AccAddress(res.Data)

	res = env.deliver(env.seller, nft.NewMintAssetMsg(env.seller.addr, collection, "Punk #1", "https://example.com/punks/1", env.seller.addr))
	require.True(env.t, res.IsOK(), res.Log)
	asset = sdk.AccAddress(res.Data)

	res = env.deliver(env.seller, market.NewAddListingMsg(env.seller.addr, collection, asset, price))
	require.True(env.t, res.IsOK(), res.Log)

	listing, _, err := market.DeriveListingAuthority(env.seller.addr, collection, asset)
	require.NoError(env.t, err)
	return collection, asset, listing
}

func TestMatchListingSettles(t *testing.T) {
	env := newTestEnv(t, 250)
	env.beginBlock()
	collection, asset, listing := env.mintListed(10e8)

	res := env.deliver(env.buyer, market.NewMatchListingMsg(env.buyer.addr, listing, env.seller.addr, collection, asset, env.admin.addr))
	require.True(t, res.IsOK(), res.Log)
	env.endBlock()

	// 2.5% of the price goes to the fee recipient on top of the price
	require.Equal(t, int64(1000e8+10e8), env.balance(env.seller.addr))
	require.Equal(t, int64(1000e8-10e8-25e6), env.balance(env.buyer.addr))
	require.Equal(t, int64(1000e8+25e6), env.balance(env.admin.addr))

	ctx := env.app.NewContext(sdk.RunTxModeCheck, abci.Header{ChainID: testChainID, Height: env.height})
	a, found := env.app.NftKeeper.GetAsset(ctx, asset)
	require.True(t, found)
	require.Equal(t, env.buyer.addr, a.Owner)

	l, found := env.app.MarketKeeper.GetListing(ctx, listing)
	require.True(t, found)
	require.False(t, l.IsActive)

	require.Eventually(t, func() bool { return env.publisher.Published() == 2 }, 5*time.Second, 10*time.Millisecond)
	env.publisher.Lock.Lock()
	defer env.publisher.Lock.Unlock()
	require.Len(t, env.publisher.CollectionsPublished, 1)
	require.Len(t, env.publisher.CollectionsPublished[0].Collections, 1)
	require.Equal(t, collection.String(), env.publisher.CollectionsPublished[0].Collections[0].Collection)

	require.Len(t, env.publisher.ListingsPublished, 1)
	published := env.publisher.ListingsPublished[0]
	require.Equal(t, env.height, published.Height)
	require.Equal(t, 2, published.NumOfMsgs)
	require.Equal(t, "created", published.Listings[0].Action)
	require.Equal(t, "sold", published.Listings[1].Action)
	require.Equal(t, env.buyer.addr.String(), published.Listings[1].Buyer)
	require.Equal(t, int64(10e8), published.Listings[1].Price)
	require.Equal(t, int64(25e6), published.Listings[1].Fee)
}

func TestFailedMatchIsNotPublished(t *testing.T) {
	env := newTestEnv(t, 100)
	env.beginBlock()
	collection, asset, listing := env.mintListed(5e8)
	env.endBlock()
	require.Eventually(t, func() bool { return env.publisher.Published() == 2 }, 5*time.Second, 10*time.Millisecond)

	env.beginBlock()
	// the fee recipient named by the buyer is not the market's
	res := env.deliver(env.buyer, market.NewMatchListingMsg(env.buyer.addr, listing, env.seller.addr, collection, asset, env.buyer.addr))
	require.False(t, res.IsOK())
	require.Equal(t, int64(1000e8), env.balance(env.buyer.addr))

	res = env.deliver(env.seller, market.NewRemoveListingMsg(env.seller.addr, collection, asset))
	require.True(t, res.IsOK(), res.Log)
	env.endBlock()

	ctx := env.app.NewContext(sdk.RunTxModeCheck, abci.Header{ChainID: testChainID, Height: env.height})
	a, found := env.app.NftKeeper.GetAsset(ctx, asset)
	require.True(t, found)
	require.Equal(t, env.seller.addr, a.Owner)
	require.False(t, env.app.MarketKeeper.HasListing(ctx, listing))

	require.Eventually(t, func() bool { return env.publisher.Published() == 3 }, 5*time.Second, 10*time.Millisecond)
	env.publisher.Lock.Lock()
	defer env.publisher.Lock.Unlock()
	last := env.publisher.ListingsPublished[len(env.publisher.ListingsPublished)-1]
	require.Equal(t, 1, last.NumOfMsgs)
	require.Equal(t, "canceled", last.Listings[0].Action)
}

func TestExportAppState(t *testing.T) {
	env := newTestEnv(t, 0)
	env.beginBlock()
	_, _, listing := env.mintListed(1e8)
	env.endBlock()

	appState, validators, err := env.app.ExportAppStateAndValidators()
	require.NoError(t, err)
	require.Empty(t, validators)

	var exported GenesisState
	require.NoError(t, env.app.Codec.UnmarshalJSON(appState, &exported))
	require.NoError(t, ValidateGenesisState(exported))
	require.Len(t, exported.Accounts, 3)
	require.Len(t, exported.Nft.Collections, 1)
	require.Len(t, exported.Nft.Assets, 1)
	require.NotNil(t, exported.Market.Market)
	require.Equal(t, env.admin.addr, exported.Market.Market.Admin)
	require.Len(t, exported.Market.Listings, 1)
	require.Equal(t, listing, exported.Market.Listings[0].Address)
}

func TestMarketAppGenState(t *testing.T) {
	_, admin := testutils.PrivAndAddr()
	appState, err := MarketAppGenState(Codec, admin, 200)
	require.NoError(t, err)

	var genesis GenesisState
	require.NoError(t, Codec.UnmarshalJSON(appState, &genesis))
	require.Len(t, genesis.Accounts, 1)
	require.Equal(t, admin, genesis.Market.Market.FeeRecipient)
	require.Equal(t, int64(200), genesis.Market.Market.TakerFeeBps)

	_, err = MarketAppGenState(Codec, admin, 10001)
	require.Error(t, err)
	_, err = MarketAppGenState(Codec, nil, 0)
	require.Error(t, err)
}

func TestValidateGenesisListingCustody(t *testing.T) {
	env := newTestEnv(t, 100)
	env.beginBlock()
	_, asset, listing := env.mintListed(1e8)
	env.endBlock()

	appState, _, err := env.app.ExportAppStateAndValidators()
	require.NoError(t, err)
	var exported GenesisState
	require.NoError(t, env.app.Codec.UnmarshalJSON(appState, &exported))
	require.NoError(t, ValidateGenesisState(exported))

	// the listed asset handed back to the seller outside the market
	require.Equal(t, listing, exported.Nft.Assets[0].Owner)
	exported.Nft.Assets[0].Owner = env.seller.addr
	require.Error(t, ValidateGenesisState(exported))

	exported.Nft.Assets = nil
	require.Error(t, ValidateGenesisState(exported))

	// a sold listing no longer custodies anything
	exported.Market.Listings[0].IsActive = false
	require.NoError(t, ValidateGenesisState(exported))
	require.Equal(t, asset, exported.Market.Listings[0].Asset)
}

func TestMakeCodec(t *testing.T) {
	cdc := MakeCodec()
	priv, addr := testutils.PrivAndAddr()
	msg := market.NewRemoveListingMsg(addr, addr, addr)
	tx := auth.NewStdTx([]sdk.Msg{msg}, []auth.StdSignature{{PubKey: priv.PubKey()}}, "", 0, nil)

	bz, err := cdc.MarshalBinaryLengthPrefixed(tx)
	require.NoError(t, err)
	decoded, sdkErr := auth.DefaultTxDecoder(cdc)(bz)
	require.Nil(t, sdkErr)
	require.Equal(t, []sdk.Msg{msg}, decoded.GetMsgs())
	require.Equal(t, priv.PubKey(), decoded.(auth.StdTx).Signatures[0].PubKey)

	var acc sdk.Account = &auth.BaseAccount{Address: addr, PubKey: priv.PubKey()}
	bz, err = cdc.MarshalBinaryBare(acc)
	require.NoError(t, err)
	var restored sdk.Account
	require.NoError(t, cdc.UnmarshalBinaryBare(bz, &restored))
	require.Equal(t, addr, restored.GetAddress())
}
