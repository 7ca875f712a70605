package market

import (
	"github.com/cosmos/cosmos-sdk/baseapp"
)

const abciQueryPrefix = "market"

// InitPlugin registers the market msg handler and the custom querier on app.
func InitPlugin(app *baseapp.BaseApp, keeper Keeper) {
	app.Router().AddRoute(MsgRoute, NewHandler(keeper))
	app.QueryRouter().AddRoute(abciQueryPrefix, NewQuerier(keeper))
}
