package nft

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
)

const abciQueryPrefix = "nft"

// InitPlugin registers the nft msg handler and the custom querier on app.
func InitPlugin(app *baseapp.BaseApp, keeper Keeper) {
	app.Router().AddRoute(MsgRoute, NewHandler(keeper))
	app.QueryRouter().AddRoute(abciQueryPrefix, NewQuerier(keeper))
}
