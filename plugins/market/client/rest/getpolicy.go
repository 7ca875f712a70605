package rest

import (
	"net/http"

	"github.com/cosmos/cosmos-sdk/client/context"

	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/wire"
)

func GetPolicyReqHandler(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var policy market.Market
		if err := query(ctx, cdc, market.QueryPolicy, nil, &policy); err != nil {
			throw(w, http.StatusInternalServerError, err)
			return
		}
		write(w, policy)
	}
}
