package mnemonic

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// Seed derivation parameters fixed by BIP-0039.
const (
	seedSaltPrefix = "mnemonic"
	seedIterations = 2048
)

// Seed is an opaque 64-byte value derived from a phrase and
// passphrase, used to initialize an HD wallet's key hierarchy.
// Immutable once produced.
type Seed struct {
	bytes [SeedSize]byte
}

// NewSeed derives the seed for a phrase and passphrase with
// PBKDF2-HMAC-SHA512, 2048 iterations, salt "mnemonic"+passphrase.
//
// Both inputs are NFKD-normalized first, as BIP-0039 requires for
// cross-implementation compatibility. For ASCII input normalization is
// the identity, so English phrases derive the same seed everywhere.
//
// Derivation is pure: identical inputs always yield an identical seed.
// The phrase is not validated here; use Validate or FromPhrase when
// checksum guarantees are needed.
func NewSeed(phrase, passphrase string) Seed {
	password := []byte(norm.NFKD.String(phrase))
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))

	var s Seed
	copy(s.bytes[:], pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New))
	return s
}

// Bytes returns a copy of the raw 64-byte seed.
func (s Seed) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, s.bytes[:])
	return out
}

// Hex returns the seed as a 128-character uppercase hex string.
func (s Seed) Hex() string {
	return fmt.Sprintf("%X", s.bytes[:])
}
