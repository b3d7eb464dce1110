package service

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
)

// ShortIDLength is how many hex characters of the seed digest become the
// visible handle. 7 characters is 28 bits: short enough to read at a glance,
// long enough that accidental collisions stay rare on a small board.
const ShortIDLength = 7

// DeriveIdentity maps a visitor's seed to a stable pseudonymous identity.
// The same seed always yields the same identity, across requests and across
// process restarts, which is what lets a visitor keep a handle without an
// account.
func DeriveIdentity(seed string) domain.Identity {
	sum := sha256.Sum256([]byte(seed))
	hashed := hex.EncodeToString(sum[:])
	return domain.Identity{
		HashedSeed: hashed,
		ShortID:    hashed[:ShortIDLength],
	}
}
