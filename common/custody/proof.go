package custody

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
)

// Proof stands in for a signature of a keyless authority.
type Proof struct {
	Program sdk.AccAddress `json:"program"`
	Seeds   [][]byte       `json:"seeds"`
	Bump    uint8          `json:"bump"`
}

func NewProof(program sdk.AccAddress, bump uint8, seeds ...[]byte) *Proof {
	cp := make([][]byte, len(seeds))
	for i, seed := range seeds {
		cp[i] = append([]byte(nil), seed...)
	}
	return &Proof{
		Program: program,
		Seeds:   cp,
		Bump:    bump,
	}
}

func (p Proof) Address() (sdk.AccAddress, error) {
	authority, err := CreateAuthority(p.Program, p.Bump, p.Seeds...)
	if err != nil {
		return nil, err
	}
	return authority.Address(), nil
}

// Verify checks that the proof derives exactly addr.
func (p Proof) Verify(addr sdk.AccAddress) error {
	derived, err := p.Address()
	if err != nil {
		return errors.Wrap(err, "invalid authority proof")
	}
	if !bytes.Equal(derived, addr) {
		return errors.Errorf("authority proof derives %s, expected %s", derived, addr)
	}
	return nil
}

func (p Proof) String() string {
	return fmt.Sprintf("Proof{program=%s, seeds=%d, bump=%d}", p.Program, len(p.Seeds), p.Bump)
}
