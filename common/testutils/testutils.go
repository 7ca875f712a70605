package testutils

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/bnb-chain/nft-market/common"
	"github.com/bnb-chain/nft-market/common/types"
)

// SetupMultiStoreForUnitTest mounts the account, nft and market stores on a memdb.
func SetupMultiStoreForUnitTest() sdk.CacheMultiStore {
	_, ms := SetupMultiStoreWithDBForUnitTest()
	return ms.CacheMultiStore()
}

func SetupMultiStoreWithDBForUnitTest() (dbm.DB, sdk.CommitMultiStore) {
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(common.MainStoreKey, sdk.StoreTypeIAVL, nil)
	ms.MountStoreWithDB(common.AccountStoreKey, sdk.StoreTypeIAVL, nil)
	ms.MountStoreWithDB(common.NftStoreKey, sdk.StoreTypeIAVL, nil)
	ms.MountStoreWithDB(common.MarketStoreKey, sdk.StoreTypeIAVL, nil)
	if err := ms.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return db, ms
}

// coins to more than cover the fee
func NewNativeTokens(amount int64) sdk.Coins {
	return types.NativeCoins(amount)
}

// generate a priv key and return it with its address
func PrivAndAddr() (crypto.PrivKey, sdk.AccAddress) {
	priv := secp256k1.GenPrivKey()
	addr := sdk.AccAddress(priv.PubKey().Address())
	return priv, addr
}

func NewAccount(ctx sdk.Context, am auth.AccountKeeper, free int64) (crypto.PrivKey, sdk.Account) {
	privKey, addr := PrivAndAddr()
	acc := am.NewAccountWithAddress(ctx, addr)
	_ = acc.SetCoins(NewNativeTokens(free))
	am.SetAccount(ctx, acc)
	return privKey, acc
}

// GetAccountCache builds the account cache the sdk context expects, backed by the account store of ms.
func GetAccountCache(cdc *codec.Codec, ms sdk.MultiStore) sdk.AccountCache {
	accountStore := ms.GetKVStore(common.AccountStoreKey)
	accountStoreCache := auth.NewAccountStoreCache(cdc, accountStore, 10)
	return auth.NewAccountCache(accountStoreCache)
}

// NativeBalance returns the free native token amount held by addr.
func NativeBalance(ctx sdk.Context, am auth.AccountKeeper, addr sdk.AccAddress) int64 {
	acc := am.GetAccount(ctx, addr)
	if acc == nil {
		return 0
	}
	return acc.GetCoins().AmountOf(types.NativeTokenSymbol)
}
