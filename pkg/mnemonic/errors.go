package mnemonic

import "errors"

// Every failure mode is a distinct sentinel so callers can tell
// "wrong word" from "bad checksum" from "wrong phrase length" with
// errors.Is, without parsing message strings. Functions wrap these
// with context via fmt.Errorf("...: %w", ...).
var (
	// ErrUnsupportedWordCount means a word count outside {12,15,18,21,24}
	// was requested from the type table.
	ErrUnsupportedWordCount = errors.New("unsupported word count")

	// ErrUnsupportedEntropyLength means an entropy bit length outside
	// {128,160,192,224,256} was requested from the type table.
	ErrUnsupportedEntropyLength = errors.New("unsupported entropy length")

	// ErrInvalidEntropyLength means an entropy buffer's size does not
	// match any supported mnemonic type.
	ErrInvalidEntropyLength = errors.New("invalid entropy length")

	// ErrInvalidWordListSize means a word list was built from a
	// vocabulary that does not contain exactly 2048 words.
	ErrInvalidWordListSize = errors.New("invalid word list size")

	// ErrDuplicateWord means a word list contains the same word twice.
	ErrDuplicateWord = errors.New("duplicate word in word list")

	// ErrIndexOutOfRange means a word list lookup used an index >= 2048.
	ErrIndexOutOfRange = errors.New("word index out of range")

	// ErrInvalidWordCount means a phrase's word count is not one of the
	// five supported sizes.
	ErrInvalidWordCount = errors.New("invalid phrase word count")

	// ErrInvalidWord means a phrase contains a word absent from the
	// word list. Matching is exact and case-sensitive.
	ErrInvalidWord = errors.New("word not in word list")

	// ErrInvalidChecksum means the checksum bits embedded in a phrase
	// do not match the hash of its entropy.
	ErrInvalidChecksum = errors.New("checksum mismatch")

	// ErrDecode means hex input to FromEntropyHex was malformed.
	ErrDecode = errors.New("malformed hex entropy")

	// ErrProvisioning wraps failures from external collaborators (the
	// word list source or the random byte source). The core does not
	// interpret these further.
	ErrProvisioning = errors.New("provisioning failure")
)
