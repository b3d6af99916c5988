package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// EncodeEntropy converts entropy bytes into a mnemonic phrase: the
// entropy bits followed by the leading entropy_bits/32 bits of
// SHA-256(entropy) are split into 11-bit groups, each mapped through
// the word list, joined with single spaces.
func EncodeEntropy(entropy []byte, list *WordList) (string, error) {
	t, err := TypeForEntropyBits(len(entropy) * 8)
	if err != nil {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidEntropyLength, len(entropy))
	}

	checksum := sha256.Sum256(entropy)

	bits := newBitBuffer(t.totalBits())
	bits.appendBytes(entropy)
	bits.appendBits(uint(checksum[0])>>uint(8-t.ChecksumBits()), t.ChecksumBits())
	if bits.len() != t.WordCount()*wordBits {
		panic("mnemonic: encoded bit length disagrees with size table")
	}

	words := make([]string, t.WordCount())
	for i := range words {
		w, err := list.WordAt(int(bits.readBits(i*wordBits, wordBits)))
		if err != nil {
			return "", err
		}
		words[i] = w
	}
	return strings.Join(words, " "), nil
}

// DecodeMnemonic converts a phrase back into its entropy bytes,
// verifying the embedded checksum. The phrase is split on whitespace;
// each word must match the list exactly (case-sensitive, no trimming
// beyond the split). The first unmatched word is named in the error.
func DecodeMnemonic(phrase string, list *WordList) ([]byte, error) {
	words := strings.Fields(phrase)

	t, err := TypeForWordCount(len(words))
	if err != nil {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidWordCount, len(words))
	}

	bits := newBitBuffer(t.totalBits())
	for _, w := range words {
		n, ok := list.IndexOf(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		bits.appendBits(uint(n), wordBits)
	}
	if bits.len() != t.totalBits() {
		panic("mnemonic: decoded bit length disagrees with size table")
	}

	entropy := bits.bytesRange(0, t.EntropyBits())
	claimed := bits.readBits(t.EntropyBits(), t.ChecksumBits())

	checksum := sha256.Sum256(entropy)
	want := uint(checksum[0]) >> uint(8-t.ChecksumBits())
	if claimed != want {
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}

// Validate checks a phrase for word count, vocabulary membership, and
// checksum without returning the entropy. It computes no seed.
func Validate(phrase string, list *WordList) error {
	_, err := DecodeMnemonic(phrase, list)
	return err
}
