package app

import (
	"encoding/json"
	"io"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
	tmtypes "github.com/tendermint/tendermint/types"

	bam "github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/bank"

	"github.com/bnb-chain/nft-market/app/config"
	"github.com/bnb-chain/nft-market/app/pub"
	"github.com/bnb-chain/nft-market/app/pub/sub"
	"github.com/bnb-chain/nft-market/common"
	bnclog "github.com/bnb-chain/nft-market/common/log"
	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/plugins/nft"
	"github.com/bnb-chain/nft-market/wire"
)

const (
	appName = "NFTMarket"
)

// default home directories for expected binaries
var (
	DefaultCLIHome  = config.DefaultHome(".marketcli")
	DefaultNodeHome = config.DefaultHome(".marketd")
	Codec           = MakeCodec()
	ServerContext   = config.NewDefaultContext()
)

// MarketApp is the ABCI application of the nft market chain
type MarketApp struct {
	*bam.BaseApp
	Codec *wire.Codec

	// keepers
	AccountKeeper auth.AccountKeeper
	BankKeeper    bank.Keeper
	NftKeeper     nft.Keeper
	MarketKeeper  market.Keeper

	baseConfig        *config.BaseConfig
	publicationConfig *config.PublicationConfig
	psServer          *pubsub.Server
	subscriber        *pubsub.Subscriber
	publisher         pub.MarketDataPublisher
	metrics           *pub.Metrics
}

// NewMarketApp creates a new instance of the MarketApp.
func NewMarketApp(logger log.Logger, db dbm.DB, traceStore io.Writer, baseAppOptions ...func(*bam.BaseApp)) *MarketApp {
	return newMarketApp(logger, db, traceStore, ServerContext.MarketConfig, ServerContext.Config.RootDir,
		pub.PrometheusMetrics, baseAppOptions...)
}

func newMarketApp(logger log.Logger, db dbm.DB, traceStore io.Writer, appConfig *config.MarketConfig, home string,
	metrics func() *pub.Metrics, baseAppOptions ...func(*bam.BaseApp)) *MarketApp {
	// create app-level codec for txs and accounts
	var cdc = Codec

	// create the application object
	var app = &MarketApp{
		BaseApp:           bam.NewBaseApp(appName, logger, db, auth.DefaultTxDecoder(cdc), sdk.CollectConfig{}, baseAppOptions...),
		Codec:             cdc,
		baseConfig:        appConfig.BaseConfig,
		publicationConfig: appConfig.PublicationConfig,
	}
	app.SetCommitMultiStoreTracer(traceStore)

	// mappers
	app.AccountKeeper = auth.NewAccountKeeper(cdc, common.AccountStoreKey, auth.ProtoBaseAccount)

	// handlers
	app.BankKeeper = bank.NewBaseKeeper(app.AccountKeeper)
	app.NftKeeper = nft.NewKeeper(cdc, common.NftStoreKey, app.RegisterCodespace(nft.DefaultCodespace))
	app.NftKeeper.RegisterProgram(market.ProgramAddr)
	app.MarketKeeper = market.NewKeeper(cdc, common.MarketStoreKey, app.BankKeeper, app.NftKeeper,
		app.RegisterCodespace(market.DefaultCodespace), app.baseConfig.ListingAuthorityCacheSize)

	if app.publicationConfig.ShouldPublishAny() {
		app.startPubSub(logger, home, metrics)
	}

	// the keepers are copied into their handlers, so every field must be set by now
	app.Router().AddRoute("bank", bank.NewHandler(app.BankKeeper))
	nft.InitPlugin(app.BaseApp, app.NftKeeper)
	market.InitPlugin(app.BaseApp, app.MarketKeeper)

	// initialize BaseApp
	app.SetInitChainer(app.initChainerFn())
	app.SetEndBlocker(app.EndBlocker)
	app.SetAnteHandler(auth.NewAnteHandler(app.AccountKeeper))
	app.MountStoresIAVL(common.MainStoreKey, common.AccountStoreKey, common.NftStoreKey, common.MarketStoreKey)

	if err := app.LoadCMSLatestVersion(); err != nil {
		cmn.Exit(err.Error())
	}
	// init app cache
	accountStore := app.GetCommitMultiStore().GetKVStore(common.AccountStoreKey)
	app.SetAccountStoreCache(cdc, accountStore, app.baseConfig.AccountCacheSize)

	if err := app.InitFromStore(common.MainStoreKey); err != nil {
		cmn.Exit(err.Error())
	}
	return app
}

func (app *MarketApp) startPubSub(logger log.Logger, home string, metrics func() *pub.Metrics) {
	app.psServer = pubsub.NewServer(bnclog.With("module", "pubsub"))
	if err := app.psServer.Start(); err != nil {
		cmn.Exit(err.Error())
	}
	var err error
	app.subscriber, err = app.psServer.NewSubscriber(pubsub.ClientID("market-pub"), logger.With("module", "sub"))
	if err != nil {
		cmn.Exit(err.Error())
	}
	if err = sub.SubscribeEvent(app.subscriber, app.publicationConfig); err != nil {
		cmn.Exit(err.Error())
	}

	app.NftKeeper.PbsbServer = app.psServer
	app.MarketKeeper.PbsbServer = app.psServer

	if app.publicationConfig.ToPublish() {
		app.metrics = metrics()
		app.publisher = pub.NewMarketDataPublisher(logger, home, app.publicationConfig, app.metrics)
	}
}

// SetPublisher replaces the publisher started from config, the pubsub pipeline must already be running.
func (app *MarketApp) SetPublisher(publisher pub.MarketDataPublisher) {
	app.publisher = publisher
}

// MakeCodec creates a custom tx codec.
func MakeCodec() *wire.Codec {
	var cdc = wire.NewCodec()

	bank.RegisterCodec(cdc)
	sdk.RegisterCodec(cdc) // Register Msgs
	auth.RegisterBaseAccount(cdc)
	cdc.RegisterConcrete(auth.StdTx{}, "auth/StdTx", nil)
	nft.RegisterWire(cdc)
	market.RegisterWire(cdc)
	return cdc
}

// initChainerFn performs custom logic for chain initialization.
func (app *MarketApp) initChainerFn() sdk.InitChainer {
	return func(ctx sdk.Context, req abci.RequestInitChain) abci.ResponseInitChain {
		stateJSON := req.AppStateBytes

		genesisState := new(GenesisState)
		err := app.Codec.UnmarshalJSON(stateJSON, genesisState)
		if err != nil {
			panic(err)
		}
		if err = ValidateGenesisState(*genesisState); err != nil {
			panic(err)
		}

		for _, gacc := range genesisState.Accounts {
			acc := gacc.ToAccount()
			acc.SetAccountNumber(app.AccountKeeper.GetNextAccountNumber(ctx))
			app.AccountKeeper.SetAccount(ctx, acc)
		}

		// Application specific genesis handling
		nft.InitGenesis(ctx, app.NftKeeper, genesisState.Nft)
		market.InitGenesis(ctx, app.MarketKeeper, genesisState.Market)

		return abci.ResponseInitChain{}
	}
}

// DeliverTx tells the subscriber whether the events staged by the tx may be published.
func (app *MarketApp) DeliverTx(req abci.RequestDeliverTx) (res abci.ResponseDeliverTx) {
	res = app.BaseApp.DeliverTx(req)
	if app.psServer != nil {
		if res.IsOK() {
			app.psServer.Publish(sub.TxDeliverSuccEvent{})
		} else {
			app.psServer.Publish(sub.TxDeliverFailEvent{})
			app.logFailedTx(req.Tx, res.Log)
		}
	}
	return res
}

// EndBlocker hands the events committed in this block to the publisher.
func (app *MarketApp) EndBlocker(ctx sdk.Context, req abci.RequestEndBlock) abci.ResponseEndBlock {
	if app.subscriber != nil {
		app.subscriber.Wait()
		sub.SetMeta(ctx.BlockHeader().Height, ctx.BlockHeader().Time)
		if app.publisher != nil && pub.IsLive {
			app.publish(sub.ToPublish())
		}
		sub.Clear()
	}
	return abci.ResponseEndBlock{}
}

func (app *MarketApp) publish(events *sub.ToPublishEvent) {
	if events.EventData.IsEmpty() {
		return
	}
	pub.Logger.Info("start to collect publish information", "height", events.Height)
	blockInfo := pub.NewBlockInfoToPublish(
		events.Height,
		events.Timestamp.UnixNano()/int64(1e6),
		events.EventData.Listings,
		events.EventData.Collections)
	pub.ToPublishCh <- blockInfo
}

// Stop shuts down the publication pipeline.
func (app *MarketApp) Stop() {
	if app.publisher != nil && pub.IsLive {
		pub.Stop(app.publisher)
	}
	if app.psServer != nil && app.psServer.IsRunning() {
		if err := app.psServer.Stop(); err != nil {
			app.Logger.Error("failed to stop pubsub server", "err", err)
		}
	}
}

// ExportAppStateAndValidators exports blockchain world state to json.
func (app *MarketApp) ExportAppStateAndValidators() (appState json.RawMessage, validators []tmtypes.GenesisValidator, err error) {
	ctx := app.NewContext(sdk.RunTxModeCheck, abci.Header{})

	// iterate to get the accounts
	accounts := []GenesisAccount{}
	appendAccount := func(acc sdk.Account) (stop bool) {
		accounts = append(accounts, NewGenesisAccount(acc))
		return false
	}
	app.AccountKeeper.IterateAccounts(ctx, appendAccount)

	genState := GenesisState{
		Accounts: accounts,
		Nft:      nft.ExportGenesis(ctx, app.NftKeeper),
		Market:   market.ExportGenesis(ctx, app.MarketKeeper),
	}
	appState, err = wire.MarshalJSONIndent(app.Codec, genState)
	if err != nil {
		return nil, nil, err
	}
	return appState, validators, nil
}
