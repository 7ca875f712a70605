package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcTakerFee(t *testing.T) {
	require.Equal(t, int64(15000000), CalcTakerFee(1000000000, 150))
	require.Equal(t, int64(0), CalcTakerFee(1000000000, 0))
	require.Equal(t, int64(1000000000), CalcTakerFee(1000000000, MaxFeeBps))
	// floor
	require.Equal(t, int64(0), CalcTakerFee(66, 150))
	require.Equal(t, int64(1), CalcTakerFee(67, 150))
	// price * bps overflows int64
	require.Equal(t, int64(138350580552821637), CalcTakerFee(math.MaxInt64, 150))
}

func TestValidateFeeBps(t *testing.T) {
	require.Nil(t, validateFeeBps(DefaultCodespace, 0))
	require.Nil(t, validateFeeBps(DefaultCodespace, MaxFeeBps))
	require.Equal(t, CodeFeeTooHigh, validateFeeBps(DefaultCodespace, MaxFeeBps+1).Code())
	require.Equal(t, CodeInvalidFee, validateFeeBps(DefaultCodespace, -1).Code())
}
