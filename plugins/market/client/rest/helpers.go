package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cosmos/cosmos-sdk/client/context"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"

	"github.com/bnb-chain/nft-market/plugins/market"
	"github.com/bnb-chain/nft-market/wire"
)

const responseType = "application/json"

func throw(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}

// write encodes result with encoding/json so amino does not inject a type attribute.
func write(w http.ResponseWriter, result interface{}) {
	output, err := json.Marshal(result)
	if err != nil {
		throw(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", responseType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output)
}

func addressVar(r *http.Request, name string) (sdk.AccAddress, error) {
	value, ok := mux.Vars(r)[name]
	if !ok {
		return nil, fmt.Errorf("miss request parameter `%s`", name)
	}
	addr, err := sdk.AccAddressFromBech32(value)
	if err != nil {
		return nil, fmt.Errorf("invalid address, address=%s", value)
	}
	if len(addr) != sdk.AddrLen {
		return nil, fmt.Errorf("address length should be %d", sdk.AddrLen)
	}
	return addr, nil
}

func query(ctx context.CLIContext, cdc *wire.Codec, endpoint string, params interface{}, result interface{}) error {
	var bz []byte
	if params != nil {
		var err error
		if bz, err = cdc.MarshalJSON(params); err != nil {
			return err
		}
	}

	res, err := ctx.QueryWithData(fmt.Sprintf("custom/%s/%s", market.MsgRoute, endpoint), bz)
	if err != nil {
		return err
	}
	return cdc.UnmarshalJSON(res, result)
}
