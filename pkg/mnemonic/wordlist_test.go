package mnemonic

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// syntheticWords returns n distinct placeholder words.
func syntheticWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	return words
}

func TestNewWordList(t *testing.T) {
	wl, err := NewWordList("synthetic", syntheticWords(WordListSize))
	if err != nil {
		t.Fatalf("NewWordList() error: %v", err)
	}
	if wl.Language() != "synthetic" {
		t.Errorf("language = %q, want %q", wl.Language(), "synthetic")
	}

	w, err := wl.WordAt(0)
	if err != nil || w != "word0000" {
		t.Errorf("WordAt(0) = %q, %v", w, err)
	}
	w, err = wl.WordAt(2047)
	if err != nil || w != "word2047" {
		t.Errorf("WordAt(2047) = %q, %v", w, err)
	}

	i, ok := wl.IndexOf("word1024")
	if !ok || i != 1024 {
		t.Errorf("IndexOf(word1024) = %d, %v", i, ok)
	}
}

func TestNewWordList_WrongSize(t *testing.T) {
	for _, n := range []int{0, 1, 2047, 2049} {
		_, err := NewWordList("synthetic", syntheticWords(n))
		if !errors.Is(err, ErrInvalidWordListSize) {
			t.Errorf("NewWordList with %d words = %v, want ErrInvalidWordListSize", n, err)
		}
	}
}

func TestNewWordList_Duplicate(t *testing.T) {
	words := syntheticWords(WordListSize)
	words[100] = words[42]
	_, err := NewWordList("synthetic", words)
	if !errors.Is(err, ErrDuplicateWord) {
		t.Errorf("NewWordList with duplicate = %v, want ErrDuplicateWord", err)
	}
	if err != nil && !strings.Contains(err.Error(), words[42]) {
		t.Errorf("error %q should name the duplicated word", err)
	}
}

func TestWordAt_OutOfRange(t *testing.T) {
	wl, err := NewWordList("synthetic", syntheticWords(WordListSize))
	if err != nil {
		t.Fatalf("NewWordList() error: %v", err)
	}
	for _, i := range []int{-1, 2048, 1 << 20} {
		if _, err := wl.WordAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("WordAt(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestIndexOf_CaseSensitive(t *testing.T) {
	wl, err := NewWordList("synthetic", syntheticWords(WordListSize))
	if err != nil {
		t.Fatalf("NewWordList() error: %v", err)
	}
	if _, ok := wl.IndexOf("WORD0000"); ok {
		t.Error("IndexOf should be case-sensitive")
	}
	if _, ok := wl.IndexOf(" word0000"); ok {
		t.Error("IndexOf should not trim input")
	}
	if _, ok := wl.IndexOf("missing"); ok {
		t.Error("IndexOf of absent word should report !ok")
	}
}

// The input slice must not alias the list's internal storage.
func TestNewWordList_CopiesInput(t *testing.T) {
	words := syntheticWords(WordListSize)
	wl, err := NewWordList("synthetic", words)
	if err != nil {
		t.Fatalf("NewWordList() error: %v", err)
	}
	words[0] = "mutated"
	w, err := wl.WordAt(0)
	if err != nil || w != "word0000" {
		t.Errorf("WordAt(0) after caller mutation = %q, %v", w, err)
	}
}
