package custody

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
	lru "github.com/hashicorp/golang-lru"
)

type derivation struct {
	authority Authority
	bump      uint8
}

// Cache memoises FindAuthority for a single program.
type Cache struct {
	program sdk.AccAddress
	entries *lru.Cache
}

func NewCache(program sdk.AccAddress, size int) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{program: program, entries: entries}, nil
}

func (c *Cache) Program() sdk.AccAddress {
	return c.program
}

func (c *Cache) FindAuthority(seeds ...[]byte) (Authority, uint8, error) {
	key := cacheKey(seeds)
	if v, ok := c.entries.Get(key); ok {
		d := v.(derivation)
		return d.authority, d.bump, nil
	}

	authority, bump, err := FindAuthority(c.program, seeds...)
	if err != nil {
		return Authority{}, 0, err
	}
	c.entries.Add(key, derivation{authority: authority, bump: bump})
	return authority, bump, nil
}

// seeds are length prefixed so that ("ab","c") and ("a","bc") never share a key
func cacheKey(seeds [][]byte) string {
	var buf bytes.Buffer
	for _, seed := range seeds {
		buf.WriteByte(byte(len(seed)))
		buf.Write(seed)
	}
	return buf.String()
}
