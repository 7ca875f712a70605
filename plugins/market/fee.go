package market

import (
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// 10000 bps = 100%
const MaxFeeBps int64 = 10000

// CalcTakerFee returns floor(price * bps / 10000). The product is computed on big ints,
// price may use the whole int64 range.
func CalcTakerFee(price, bps int64) int64 {
	var fee big.Int
	fee.Mul(big.NewInt(price), big.NewInt(bps))
	fee.Quo(&fee, big.NewInt(MaxFeeBps))
	return fee.Int64()
}

func validateFeeBps(codespace sdk.CodespaceType, bps int64) sdk.Error {
	if bps < 0 {
		return ErrInvalidFee(codespace, bps)
	}
	if bps > MaxFeeBps {
		return ErrFeeTooHigh(codespace, bps)
	}
	return nil
}
