package market

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 10

	CodeUnauthorized             sdk.CodeType = 1
	CodeFeeTooHigh               sdk.CodeType = 2
	CodeListingNotActive         sdk.CodeType = 3
	CodeInvalidAsset             sdk.CodeType = 4
	CodeInvalidFeeRecipient      sdk.CodeType = 5
	CodeMarketNotInitialized     sdk.CodeType = 6
	CodeMarketAlreadyInitialized sdk.CodeType = 7
	CodeListingExists            sdk.CodeType = 8
	CodeListingNotFound          sdk.CodeType = 9
	CodeInvalidPrice             sdk.CodeType = 10
	CodeInvalidFee               sdk.CodeType = 11
)

//----------------------------------------
// Error constructors

func ErrUnauthorized(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeUnauthorized, "Admin only")
}

func ErrFeeTooHigh(codespace sdk.CodespaceType, bps int64) sdk.Error {
	return sdk.NewError(codespace, CodeFeeTooHigh,
		fmt.Sprintf("Basis points must be <= %d, got %d", MaxFeeBps, bps))
}

func ErrListingNotActive(codespace sdk.CodespaceType, listing sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeListingNotActive, fmt.Sprintf("Listing %s is not active", listing))
}

func ErrInvalidAsset(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidAsset, fmt.Sprintf("Invalid asset: %s", msg))
}

func ErrInvalidFeeRecipient(codespace sdk.CodespaceType, recipient sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidFeeRecipient, fmt.Sprintf("Invalid fee recipient %s", recipient))
}

func ErrMarketNotInitialized(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeMarketNotInitialized, "Market is not initialized")
}

func ErrMarketAlreadyInitialized(codespace sdk.CodespaceType) sdk.Error {
	return sdk.NewError(codespace, CodeMarketAlreadyInitialized, "Market is already initialized")
}

func ErrListingExists(codespace sdk.CodespaceType, listing sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeListingExists, fmt.Sprintf("Listing %s already exists", listing))
}

func ErrListingNotFound(codespace sdk.CodespaceType, listing sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeListingNotFound, fmt.Sprintf("Listing %s does not exist", listing))
}

func ErrInvalidPrice(codespace sdk.CodespaceType, price int64) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidPrice, fmt.Sprintf("Price(%d) should be larger than 0", price))
}

func ErrInvalidFee(codespace sdk.CodespaceType, bps int64) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidFee, fmt.Sprintf("Basis points(%d) should not be negative", bps))
}
