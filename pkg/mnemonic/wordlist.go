package mnemonic

import "fmt"

// WordListSize is the required vocabulary size: one word per 11-bit value.
const WordListSize = 2048

// WordList is an immutable, language-tagged, ordered vocabulary of
// exactly 2048 unique words. Index 0..2047 assigns each word its
// 11-bit value; a reverse map is built once at construction. After
// NewWordList returns, nothing mutates the list, so a single WordList
// is safe for any number of concurrent readers.
type WordList struct {
	language string
	words    []string
	index    map[string]int
}

// NewWordList builds a WordList from an ordered vocabulary. The words
// are expected to be pre-normalized; no trimming or case folding is
// applied here or during lookup.
func NewWordList(language string, words []string) (*WordList, error) {
	if len(words) != WordListSize {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrInvalidWordListSize, len(words), WordListSize)
	}
	index := make(map[string]int, WordListSize)
	owned := make([]string, WordListSize)
	for i, w := range words {
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		index[w] = i
		owned[i] = w
	}
	return &WordList{language: language, words: owned, index: index}, nil
}

// Language returns the language tag the list was built with.
func (wl *WordList) Language() string { return wl.language }

// WordAt returns the word at an 11-bit position.
func (wl *WordList) WordAt(i int) (string, error) {
	if i < 0 || i >= WordListSize {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return wl.words[i], nil
}

// IndexOf returns the 11-bit position of word. The match is exact and
// case-sensitive; ok is false when the word is absent.
func (wl *WordList) IndexOf(word string) (i int, ok bool) {
	i, ok = wl.index[word]
	return i, ok
}
