package api

import (
	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/gorilla/mux"
	"go.uber.org/ratelimit"

	"github.com/bnb-chain/nft-market/wire"
)

const maxPostSize int64 = 1024 * 1024 * 0.5 // ~500KB

type server struct {
	router *mux.Router

	// settings
	maxPostSize int64
	limiter     ratelimit.Limiter

	// handler dependencies
	ctx context.CLIContext
	cdc *wire.Codec
}

// newServer provides a new server structure. requestsPerSecond <= 0 disables throttling.
func newServer(ctx context.CLIContext, cdc *wire.Codec, requestsPerSecond int) *server {
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}

	return &server{
		router:      mux.NewRouter(),
		maxPostSize: maxPostSize,
		limiter:     limiter,
		ctx:         ctx,
		cdc:         cdc,
	}
}
