package nft

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 11

	CodeCollectionExists      sdk.CodeType = 1
	CodeCollectionNotFound    sdk.CodeType = 2
	CodeAssetNotFound         sdk.CodeType = 3
	CodeNotAssetOwner         sdk.CodeType = 4
	CodeInvalidAuthorityProof sdk.CodeType = 5
	CodeCollectionMismatch    sdk.CodeType = 6
	CodeInvalidName           sdk.CodeType = 7
	CodeInvalidURI            sdk.CodeType = 8
	CodeUnknownProgram        sdk.CodeType = 9
	CodeNotUpdateAuthority    sdk.CodeType = 10
)

//----------------------------------------
// Error constructors

func ErrCollectionExists(codespace sdk.CodespaceType, collection sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeCollectionExists, fmt.Sprintf("Collection %s already exists", collection))
}

func ErrCollectionNotFound(codespace sdk.CodespaceType, collection sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeCollectionNotFound, fmt.Sprintf("Collection %s does not exist", collection))
}

func ErrAssetNotFound(codespace sdk.CodespaceType, asset sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeAssetNotFound, fmt.Sprintf("Asset %s does not exist", asset))
}

func ErrNotAssetOwner(codespace sdk.CodespaceType, asset, addr sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeNotAssetOwner, fmt.Sprintf("%s is not the owner of asset %s", addr, asset))
}

func ErrInvalidAuthorityProof(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidAuthorityProof, fmt.Sprintf("Invalid authority proof: %s", msg))
}

func ErrCollectionMismatch(codespace sdk.CodespaceType, asset, collection sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeCollectionMismatch,
		fmt.Sprintf("Asset %s does not belong to collection %s", asset, collection))
}

func ErrInvalidName(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidName, fmt.Sprintf("Invalid name: %s", msg))
}

func ErrInvalidURI(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidURI, fmt.Sprintf("Invalid uri: %s", msg))
}

func ErrUnknownProgram(codespace sdk.CodespaceType, program sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeUnknownProgram, fmt.Sprintf("Program %s is not registered", program))
}

func ErrNotUpdateAuthority(codespace sdk.CodespaceType, collection, addr sdk.AccAddress) sdk.Error {
	return sdk.NewError(codespace, CodeNotUpdateAuthority,
		fmt.Sprintf("%s is not the update authority of collection %s", addr, collection))
}
