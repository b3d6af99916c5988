// gen_entropy.go prints freshly drawn entropy in hex, sized for a
// given mnemonic word count, for feeding into `mnemo-cli encode`.
// Usage: go run scripts/gen_entropy.go [words]
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"

	"github.com/mnemo-wallet/mnemo/pkg/mnemonic"
)

func main() {
	words := 24
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "usage: gen_entropy [words]")
			os.Exit(1)
		}
		words = n
	}
	t, err := mnemonic.TypeForWordCount(words)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	entropy := make([]byte, t.EntropyBits()/8)
	if _, err := rand.Read(entropy); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%X\n", entropy)
}
