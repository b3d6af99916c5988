package mnemonic

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// Mnemonic is a fully validated phrase together with the entropy it
// encodes and the seed derived from it. Instances are immutable;
// construction either succeeds completely or returns an error.
type Mnemonic struct {
	phrase  string
	entropy []byte
	seed    Seed
}

// Generate draws fresh entropy from crypto/rand sized for t, encodes
// it under list, and derives the seed.
func Generate(t Type, list *WordList, passphrase string) (*Mnemonic, error) {
	return GenerateFrom(rand.Reader, t, list, passphrase)
}

// GenerateFrom is Generate with an injected entropy source, so
// deterministic tests can substitute a fixed byte stream without
// touching the codec. Read failures surface as ErrProvisioning.
func GenerateFrom(random io.Reader, t Type, list *WordList, passphrase string) (*Mnemonic, error) {
	entropy := make([]byte, t.EntropyBits()/8)
	if _, err := io.ReadFull(random, entropy); err != nil {
		return nil, fmt.Errorf("%w: read entropy: %v", ErrProvisioning, err)
	}
	return FromEntropy(entropy, list, passphrase)
}

// FromEntropy builds a Mnemonic from caller-supplied entropy bytes.
func FromEntropy(entropy []byte, list *WordList, passphrase string) (*Mnemonic, error) {
	phrase, err := EncodeEntropy(entropy, list)
	if err != nil {
		return nil, err
	}
	return FromPhrase(phrase, list, passphrase)
}

// FromEntropyHex builds a Mnemonic from hex-encoded entropy. Either
// case is accepted; malformed hex fails with ErrDecode.
func FromEntropyHex(entropyHex string, list *WordList, passphrase string) (*Mnemonic, error) {
	entropy, err := hex.DecodeString(entropyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromEntropy(entropy, list, passphrase)
}

// FromPhrase builds a Mnemonic from an existing phrase, validating
// word count, vocabulary, and checksum before deriving the seed.
func FromPhrase(phrase string, list *WordList, passphrase string) (*Mnemonic, error) {
	entropy, err := DecodeMnemonic(phrase, list)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{
		phrase:  phrase,
		entropy: entropy,
		seed:    NewSeed(phrase, passphrase),
	}, nil
}

// Phrase returns the mnemonic phrase.
func (m *Mnemonic) Phrase() string { return m.phrase }

// Entropy returns a copy of the entropy bytes. The entropy is not a
// wallet seed and must never be used as one.
func (m *Mnemonic) Entropy() []byte {
	out := make([]byte, len(m.entropy))
	copy(out, m.entropy)
	return out
}

// EntropyHex returns the entropy as an uppercase hex string.
func (m *Mnemonic) EntropyHex() string {
	return fmt.Sprintf("%X", m.entropy)
}

// Seed returns the derived 64-byte seed value.
func (m *Mnemonic) Seed() Seed { return m.seed }
