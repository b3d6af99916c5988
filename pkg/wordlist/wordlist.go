// Package wordlist provisions word-list data for the mnemonic core.
//
// The external format is a JSON object with a "language" tag and a
// "words" array of exactly 2048 strings. The English list ships
// embedded; other lists can be loaded from any io.Reader or file.
// Provisioning failures (I/O, malformed JSON) are reported as
// mnemonic.ErrProvisioning; structural problems with the vocabulary
// itself keep their specific mnemonic package errors.
package wordlist

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mnemo-wallet/mnemo/pkg/mnemonic"
)

//go:embed english.json
var englishJSON []byte

// file is the on-disk JSON format.
type file struct {
	Language string   `json:"language"`
	Words    []string `json:"words"`
}

// English returns a word list built from the embedded English data.
// Each call constructs a fresh value; callers own the result.
func English() (*mnemonic.WordList, error) {
	return FromReader(bytes.NewReader(englishJSON))
}

// FromReader parses word-list JSON from r and constructs the list.
func FromReader(r io.Reader) (*mnemonic.WordList, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: parse word list: %v", mnemonic.ErrProvisioning, err)
	}
	return mnemonic.NewWordList(f.Language, f.Words)
}

// FromFile loads word-list JSON from a file path.
func FromFile(path string) (*mnemonic.WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open word list: %v", mnemonic.ErrProvisioning, err)
	}
	defer f.Close()
	return FromReader(f)
}
