package rest

import (
	"net/http"

	"github.com/cosmos/cosmos-sdk/client/context"

	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/wire"
)

// GetSellerListingsReqHandler returns the active and sold listings of a seller.
func GetSellerListingsReqHandler(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seller, err := addressVar(r, "seller")
		if err != nil {
			throw(w, http.StatusBadRequest, err)
			return
		}

		listings := make([]market.Listing, 0)
		params := market.QueryListingsParams{Seller: seller}
		if err := query(ctx, cdc, market.QueryListings, params, &listings); err != nil {
			throw(w, http.StatusInternalServerError, err)
			return
		}
		write(w, listings)
	}
}
