// Package mnemonic implements the BIP-0039 standard: encoding random
// entropy as a human-memorable phrase drawn from a 2048-word list,
// validating such phrases via an embedded checksum, and deriving a
// 512-bit wallet seed from a phrase plus an optional passphrase.
//
// The package is side-effect-free over its inputs and holds no global
// state; a WordList is an explicit value passed into every call.
package mnemonic

import "fmt"

// wordBits is the number of bits encoded by one word (2^11 = 2048).
const wordBits = 11

// Type fixes the three linked sizes of a mnemonic: word count, entropy
// bits, and checksum bits. Only the five standard configurations
// exist; construct one through TypeForWordCount or TypeForEntropyBits.
type Type struct {
	words        int
	entropyBits  int
	checksumBits int
}

// The defining invariant, words*11 == entropyBits + checksumBits,
// holds for every row. It guarantees decode always lands on an exact
// byte boundary.
var types = [...]Type{
	{words: 12, entropyBits: 128, checksumBits: 4},
	{words: 15, entropyBits: 160, checksumBits: 5},
	{words: 18, entropyBits: 192, checksumBits: 6},
	{words: 21, entropyBits: 224, checksumBits: 7},
	{words: 24, entropyBits: 256, checksumBits: 8},
}

// TypeForWordCount returns the configuration for a phrase of n words.
func TypeForWordCount(n int) (Type, error) {
	for _, t := range types {
		if t.words == n {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("%w: %d", ErrUnsupportedWordCount, n)
}

// TypeForEntropyBits returns the configuration for an entropy length
// of bits bits.
func TypeForEntropyBits(bits int) (Type, error) {
	for _, t := range types {
		if t.entropyBits == bits {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("%w: %d bits", ErrUnsupportedEntropyLength, bits)
}

// WordCount returns the number of words in a phrase of this type.
func (t Type) WordCount() int { return t.words }

// EntropyBits returns the entropy length in bits.
func (t Type) EntropyBits() int { return t.entropyBits }

// ChecksumBits returns the checksum length in bits.
func (t Type) ChecksumBits() int { return t.checksumBits }

// totalBits is the full encoded length: entropy followed by checksum.
func (t Type) totalBits() int { return t.entropyBits + t.checksumBits }
