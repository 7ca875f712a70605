package client

import (
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"

	"github.com/cosmos/cosmos-sdk/client/context"
	txutils "github.com/cosmos/cosmos-sdk/client/utils"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcmd "github.com/cosmos/cosmos-sdk/x/auth/client/cli"
	txbuilder "github.com/cosmos/cosmos-sdk/x/auth/client/txbuilder"
)

func PrepareCtx(cdc *codec.Codec) (context.CLIContext, txbuilder.TxBuilder) {
	txBldr := txbuilder.NewTxBuilderFromCLI().WithCodec(cdc)
	cliCtx := context.NewCLIContext().
		WithCodec(cdc).
		WithAccountDecoder(authcmd.GetAccountDecoder(cdc))
	return cliCtx, txBldr
}

func SendOrPrintTx(ctx context.CLIContext, builder txbuilder.TxBuilder, msg sdk.Msg) error {
	return txutils.GenerateOrBroadcastMsgs(builder, ctx, []sdk.Msg{msg})
}

// QueryJSON marshals params with cdc and runs the custom query at path.
// Custom query results carry no merkle proof, so the node is trusted regardless of --trust-node.
func QueryJSON(ctx context.CLIContext, cdc *codec.Codec, path string, params interface{}) ([]byte, error) {
	var bz []byte
	if params != nil {
		var err error
		bz, err = cdc.MarshalJSON(params)
		if err != nil {
			return nil, err
		}
	}
	return query(ctx, path, bz)
}

func query(ctx context.CLIContext, path string, data common.HexBytes) ([]byte, error) {
	node, err := ctx.GetNode()
	if err != nil {
		return nil, err
	}
	opts := rpcclient.ABCIQueryOptions{
		Height: ctx.Height,
		Prove:  false,
	}
	result, err := node.ABCIQueryWithOptions(path, data, opts)
	if err != nil {
		return nil, err
	}
	resp := result.Response
	if resp.Code != uint32(0) {
		return nil, errors.Errorf("query failed: (%d) %s", resp.Code, resp.Log)
	}
	return resp.Value, nil
}
