// Package custody derives keyless authorities from a program id and a list of seeds.
//
// An authority is the sha256 digest of the length prefixed seeds, a one byte bump, the program id and a fixed
// marker. Digests that decode as an ed25519 point are skipped, so no private key can sign for
// an authority; the owning program proves control by presenting the seeds and bump instead.
package custody

import (
	"encoding/hex"

	"filippo.io/edwards25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/crypto/tmhash"
)

const (
	AuthorityLen = tmhash.Size
	MaxSeeds     = 16
	MaxSeedLen   = 32

	derivationMarker = "ProgramDerivedAddress"
)

var (
	ErrMaxSeedLengthExceeded = errors.New("length of a seed exceeds the maximum")
	ErrTooManySeeds          = errors.New("number of seeds exceeds the maximum")
	ErrOnCurve               = errors.New("derived authority is a valid curve point")
	ErrNoViableBump          = errors.New("no viable bump found for seeds")
	ErrEmptyProgram          = errors.New("program id is empty")
)

type Authority [AuthorityLen]byte

// Address is the on-chain identity of the authority.
func (a Authority) Address() sdk.AccAddress {
	addr := make([]byte, sdk.AddrLen)
	copy(addr, a[:sdk.AddrLen])
	return sdk.AccAddress(addr)
}

func (a Authority) String() string {
	return hex.EncodeToString(a[:])
}

// CreateAuthority derives the authority for seeds with a known bump.
func CreateAuthority(program sdk.AccAddress, bump uint8, seeds ...[]byte) (Authority, error) {
	var authority Authority
	if len(program) == 0 {
		return authority, ErrEmptyProgram
	}
	if len(seeds)+1 > MaxSeeds {
		return authority, ErrTooManySeeds
	}

	hasher := tmhash.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return authority, ErrMaxSeedLengthExceeded
		}
		hasher.Write([]byte{byte(len(seed))})
		hasher.Write(seed)
	}
	hasher.Write([]byte{bump})
	hasher.Write(program)
	hasher.Write([]byte(derivationMarker))
	copy(authority[:], hasher.Sum(nil))

	if isOnCurve(authority[:]) {
		return Authority{}, ErrOnCurve
	}
	return authority, nil
}

// FindAuthority searches the bump from 255 down and returns the first off-curve authority.
func FindAuthority(program sdk.AccAddress, seeds ...[]byte) (Authority, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		authority, err := CreateAuthority(program, uint8(bump), seeds...)
		switch err {
		case nil:
			return authority, uint8(bump), nil
		case ErrOnCurve:
			continue
		default:
			return Authority{}, 0, err
		}
	}
	return Authority{}, 0, ErrNoViableBump
}

func isOnCurve(bz []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(bz)
	return err == nil
}
