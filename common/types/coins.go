package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	NativeTokenSymbol = "BNB"

	// 1 BNB = 1e8 units
	NativeTokenDecimals = 8
)

// NativeCoins wraps an amount of the native token into a coin set.
func NativeCoins(amount int64) sdk.Coins {
	return sdk.Coins{sdk.NewCoin(NativeTokenSymbol, amount)}
}
