package api

import (
	"net/http"

	"github.com/cosmos/cosmos-sdk/client/context"

	hnd "github.com/bnb-chain/nft-market/plugins/api/handlers"
	marketapi "github.com/bnb-chain/nft-market/plugins/market/client/rest"
	nftapi "github.com/bnb-chain/nft-market/plugins/nft/client/rest"
	"github.com/bnb-chain/nft-market/wire"
)

// middleware (limits, parsing, etc)

// throttle blocks until the limiter grants the request a slot.
func (s *server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.limiter.Take()
		next.ServeHTTP(w, r)
	})
}

func (s *server) limitReqSize(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// reject suspiciously large form posts
		if r.ContentLength > s.maxPostSize {
			http.Error(w, "request too large", http.StatusExpectationFailed)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.maxPostSize)
		next(w, r)
	}
}

// -----

func (s *server) handleVersionReq() http.HandlerFunc {
	return hnd.CLIVersionReqHandler
}

func (s *server) handleNodeVersionReq() http.HandlerFunc {
	return hnd.NodeVersionReqHandler(s.ctx)
}

func (s *server) handlePolicyReq(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return s.limitReqSize(marketapi.GetPolicyReqHandler(cdc, ctx))
}

func (s *server) handleListingReq(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return s.limitReqSize(marketapi.GetListingReqHandler(cdc, ctx))
}

func (s *server) handleSellerListingsReq(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return s.limitReqSize(marketapi.GetSellerListingsReqHandler(cdc, ctx))
}

func (s *server) handleAssetReq(cdc *wire.Codec, ctx context.CLIContext) http.HandlerFunc {
	return s.limitReqSize(nftapi.GetAssetReqHandler(cdc, ctx))
}
