package market

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/pubsub"
	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/bnb-chain/nft-market/common/custody"
	bnclog "github.com/bnb-chain/nft-market/common/log"
	"github.com/bnb-chain/nft-market/common/types"
)

const DefaultAuthorityCacheSize = 10000

// BankKeeper moves native tokens between accounts, all or nothing.
type BankKeeper interface {
	SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) (sdk.Tags, sdk.Error)
}

// AssetKeeper moves custodied assets. A nil proof means from signed the transaction.
type AssetKeeper interface {
	TransferAsset(ctx sdk.Context, collection, asset, from, to sdk.AccAddress, proof *custody.Proof) sdk.Error
}

type Keeper struct {
	storeKey    sdk.StoreKey // The key used to access the store from the Context.
	codespace   sdk.CodespaceType
	cdc         *codec.Codec
	bk          BankKeeper
	ak          AssetKeeper
	authorities *custody.Cache
	logger      tmlog.Logger

	PbsbServer *pubsub.Server
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, bk BankKeeper, ak AssetKeeper,
	codespace sdk.CodespaceType, authorityCacheSize int) Keeper {
	authorities, err := custody.NewCache(ProgramAddr, authorityCacheSize)
	if err != nil {
		panic(err)
	}
	return Keeper{
		storeKey:    key,
		codespace:   codespace,
		cdc:         cdc,
		bk:          bk,
		ak:          ak,
		authorities: authorities,
		logger:      bnclog.With("module", "market"),
	}
}

func (keeper Keeper) Codespace() sdk.CodespaceType {
	return keeper.codespace
}

// DeriveListingAuthority is the cached form of the package level DeriveListingAuthority.
func (keeper Keeper) DeriveListingAuthority(seller, collection, asset sdk.AccAddress) (sdk.AccAddress, uint8, error) {
	authority, bump, err := keeper.authorities.FindAuthority(listingSeeds(seller, collection, asset)...)
	if err != nil {
		return nil, 0, err
	}
	return authority.Address(), bump, nil
}

func (keeper Keeper) GetMarket(ctx sdk.Context) (Market, bool) {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(MarketKey)
	if bz == nil {
		return Market{}, false
	}

	var market Market
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &market)
	return market, true
}

func (keeper Keeper) setMarket(ctx sdk.Context, market Market) {
	store := ctx.KVStore(keeper.storeKey)
	store.Set(MarketKey, keeper.cdc.MustMarshalBinaryLengthPrefixed(market))
}

func (keeper Keeper) HasListing(ctx sdk.Context, addr sdk.AccAddress) bool {
	return ctx.KVStore(keeper.storeKey).Has(ListingKey(addr))
}

func (keeper Keeper) GetListing(ctx sdk.Context, addr sdk.AccAddress) (Listing, bool) {
	store := ctx.KVStore(keeper.storeKey)
	bz := store.Get(ListingKey(addr))
	if bz == nil {
		return Listing{}, false
	}

	var listing Listing
	keeper.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &listing)
	return listing, true
}

// GetListingsBySeller returns active listings and sale tombstones of seller.
func (keeper Keeper) GetListingsBySeller(ctx sdk.Context, seller sdk.AccAddress) []Listing {
	store := ctx.KVStore(keeper.storeKey)
	prefix := SellerListingSubSpace(seller)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var listings []Listing
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(prefix):])
		if listing, found := keeper.GetListing(ctx, addr); found {
			listings = append(listings, listing)
		}
	}
	return listings
}

func (keeper Keeper) setListing(ctx sdk.Context, listing Listing) {
	store := ctx.KVStore(keeper.storeKey)
	store.Set(ListingKey(listing.Address), keeper.cdc.MustMarshalBinaryLengthPrefixed(listing))
	store.Set(SellerListingKey(listing.Seller, listing.Address), []byte{0x01})
}

func (keeper Keeper) deleteListing(ctx sdk.Context, listing Listing) {
	store := ctx.KVStore(keeper.storeKey)
	store.Delete(ListingKey(listing.Address))
	store.Delete(SellerListingKey(listing.Seller, listing.Address))
}

// InitMarket creates the fee policy. admin becomes the only account allowed to update it.
func (keeper Keeper) InitMarket(ctx sdk.Context, admin, feeRecipient sdk.AccAddress, takerFeeBps int64) (Market, sdk.Error) {
	if _, found := keeper.GetMarket(ctx); found {
		return Market{}, ErrMarketAlreadyInitialized(keeper.codespace)
	}
	if err := validateFeeBps(keeper.codespace, takerFeeBps); err != nil {
		return Market{}, err
	}

	market := Market{
		Admin:        admin,
		FeeRecipient: feeRecipient,
		TakerFeeBps:  takerFeeBps,
	}
	keeper.setMarket(ctx, market)
	keeper.logger.Info("market initialized", "admin", admin.String(), "fee_recipient", feeRecipient.String(),
		"taker_fee_bps", takerFeeBps)
	return market, nil
}

func (keeper Keeper) UpdateMarket(ctx sdk.Context, caller, feeRecipient sdk.AccAddress, takerFeeBps int64) (Market, sdk.Error) {
	market, found := keeper.GetMarket(ctx)
	if !found {
		return Market{}, ErrMarketNotInitialized(keeper.codespace)
	}
	if !market.Admin.Equals(caller) {
		return Market{}, ErrUnauthorized(keeper.codespace)
	}
	if err := validateFeeBps(keeper.codespace, takerFeeBps); err != nil {
		return Market{}, err
	}

	market.FeeRecipient = feeRecipient
	market.TakerFeeBps = takerFeeBps
	keeper.setMarket(ctx, market)
	return market, nil
}

// AddListing moves asset into the custody of the listing authority and records the asking price.
func (keeper Keeper) AddListing(ctx sdk.Context, seller, collection, asset sdk.AccAddress, price int64) (Listing, sdk.Error) {
	if price <= 0 {
		return Listing{}, ErrInvalidPrice(keeper.codespace, price)
	}
	if _, found := keeper.GetMarket(ctx); !found {
		return Listing{}, ErrMarketNotInitialized(keeper.codespace)
	}

	addr, bump, err := keeper.DeriveListingAuthority(seller, collection, asset)
	if err != nil {
		return Listing{}, sdk.ErrInternal(err.Error())
	}
	if keeper.HasListing(ctx, addr) {
		return Listing{}, ErrListingExists(keeper.codespace, addr)
	}

	cacheCtx, write := ctx.CacheContext()
	if sdkErr := keeper.ak.TransferAsset(cacheCtx, collection, asset, seller, addr, nil); sdkErr != nil {
		return Listing{}, sdkErr
	}

	listing := Listing{
		Address:    addr,
		Seller:     seller,
		Collection: collection,
		Asset:      asset,
		Price:      price,
		IsActive:   true,
		CreatedAt:  ctx.BlockHeader().Time.Unix(),
		Bump:       bump,
	}
	keeper.setListing(cacheCtx, listing)
	write()

	publishListingCreated(ctx, keeper, listing)
	return listing, nil
}

// MatchListing settles an active listing: the buyer pays the price to the seller and the taker fee to
// the fee recipient, then the listing authority releases the asset to the buyer. Either every step
// is applied or none is. The settled listing is kept, inactive, as proof of sale.
func (keeper Keeper) MatchListing(ctx sdk.Context, buyer, listingAddr, seller, collection, asset,
	feeRecipient sdk.AccAddress) (Sale, sdk.Tags, sdk.Error) {
	listing, found := keeper.GetListing(ctx, listingAddr)
	if !found {
		return Sale{}, nil, ErrListingNotFound(keeper.codespace, listingAddr)
	}
	if !listing.IsActive {
		return Sale{}, nil, ErrListingNotActive(keeper.codespace, listingAddr)
	}
	if !listing.Seller.Equals(seller) {
		return Sale{}, nil, ErrInvalidAsset(keeper.codespace, "seller does not match the listing")
	}
	if !listing.Asset.Equals(asset) {
		return Sale{}, nil, ErrInvalidAsset(keeper.codespace, "asset does not match the listing")
	}
	if !listing.Collection.Equals(collection) {
		return Sale{}, nil, ErrInvalidAsset(keeper.codespace, "collection does not match the listing")
	}
	market, found := keeper.GetMarket(ctx)
	if !found {
		return Sale{}, nil, ErrMarketNotInitialized(keeper.codespace)
	}
	if !market.FeeRecipient.Equals(feeRecipient) {
		return Sale{}, nil, ErrInvalidFeeRecipient(keeper.codespace, feeRecipient)
	}

	price := listing.Price
	fee := CalcTakerFee(price, market.TakerFeeBps)
	// taken before the record is touched
	proof := ListingProof(listing)

	cacheCtx, write := ctx.CacheContext()
	tags := sdk.EmptyTags()
	sendTags, err := keeper.bk.SendCoins(cacheCtx, buyer, listing.Seller, types.NativeCoins(price))
	if err != nil {
		return Sale{}, nil, err
	}
	tags = tags.AppendTags(sendTags)

	if fee > 0 {
		sendTags, err = keeper.bk.SendCoins(cacheCtx, buyer, market.FeeRecipient, types.NativeCoins(fee))
		if err != nil {
			return Sale{}, nil, err
		}
		tags = tags.AppendTags(sendTags)
	}

	if err = keeper.ak.TransferAsset(cacheCtx, listing.Collection, listing.Asset, listing.Address, buyer, proof); err != nil {
		return Sale{}, nil, err
	}

	listing.IsActive = false
	keeper.setListing(cacheCtx, listing)
	write()

	keeper.logger.Info("purchase", "listing", listing.Address.String(), "price", price, "fee", fee,
		"total", uint64(price)+uint64(fee))

	sale := Sale{
		Listing: listing,
		Buyer:   buyer,
		Price:   price,
		Fee:     fee,
	}
	publishListingSold(ctx, keeper, sale)
	return sale, tags, nil
}

// RemoveListing hands the asset back to the seller and deletes the listing.
func (keeper Keeper) RemoveListing(ctx sdk.Context, seller, collection, asset sdk.AccAddress) (Listing, sdk.Error) {
	addr, _, err := keeper.DeriveListingAuthority(seller, collection, asset)
	if err != nil {
		return Listing{}, sdk.ErrInternal(err.Error())
	}
	listing, found := keeper.GetListing(ctx, addr)
	if !found {
		return Listing{}, ErrListingNotFound(keeper.codespace, addr)
	}
	if !listing.IsActive {
		return Listing{}, ErrListingNotActive(keeper.codespace, addr)
	}
	if !listing.Asset.Equals(asset) || !listing.Collection.Equals(collection) {
		return Listing{}, ErrInvalidAsset(keeper.codespace, "asset does not match the listing")
	}

	cacheCtx, write := ctx.CacheContext()
	if sdkErr := keeper.ak.TransferAsset(cacheCtx, listing.Collection, listing.Asset, listing.Address,
		listing.Seller, ListingProof(listing)); sdkErr != nil {
		return Listing{}, sdkErr
	}
	keeper.deleteListing(cacheCtx, listing)
	write()

	publishListingCanceled(ctx, keeper, listing)
	return listing, nil
}
