// mnemo-cli is a command-line front end for the BIP-39 mnemonic codec:
// generating phrases, validating them, and deriving wallet seeds.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mnemo-wallet/mnemo/config"
	"github.com/mnemo-wallet/mnemo/internal/log"
	"github.com/mnemo-wallet/mnemo/pkg/mnemonic"
	"github.com/mnemo-wallet/mnemo/pkg/wordlist"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Default()

	// Scan global flags that appear before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--wordlist" && len(args) > 1:
			cfg.WordListFile = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--wordlist="):
			cfg.WordListFile = args[0][len("--wordlist="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json":
			cfg.JSON = true
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(cfg.Log.Level, cfg.Log.JSON)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "generate":
		cmdGenerate(cfg, cmdArgs)
	case "encode":
		cmdEncode(cfg, cmdArgs)
	case "decode":
		cmdDecode(cfg, cmdArgs)
	case "validate":
		cmdValidate(cfg, cmdArgs)
	case "seed":
		cmdSeed(cfg, cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: mnemo-cli [global flags] <command> [flags]

Global flags:
  --wordlist <path>   Word-list JSON file (default: embedded English)
  --log-level <lvl>   debug, info, warn (default), or error
  --json              Machine-readable JSON output

Commands:
  generate [--words N] [--passphrase]
                      Generate a new mnemonic (12, 15, 18, 21, or 24
                      words; default 24) and print phrase, entropy,
                      and seed
  encode <entropy-hex>
                      Encode entropy bytes as a mnemonic phrase
  decode <phrase...>  Decode a phrase back to entropy hex
  validate <phrase...>
                      Check word count, vocabulary, and checksum
  seed <phrase...> [--passphrase]
                      Derive the 64-byte wallet seed for a phrase
`)
}

// loadWordList builds the word list from the configured source.
func loadWordList(cfg *config.Config) *mnemonic.WordList {
	logger := log.WithComponent("wordlist")
	if cfg.WordListFile == "" {
		list, err := wordlist.English()
		if err != nil {
			fatal("load embedded word list: %v", err)
		}
		logger.Debug().Str("language", list.Language()).Msg("using embedded word list")
		return list
	}
	list, err := wordlist.FromFile(cfg.WordListFile)
	if err != nil {
		fatal("load word list %s: %v", cfg.WordListFile, err)
	}
	logger.Debug().
		Str("file", cfg.WordListFile).
		Str("language", list.Language()).
		Msg("loaded word list")
	return list
}

func cmdGenerate(cfg *config.Config, args []string) {
	words := 24
	passphrase := ""
	for len(args) > 0 {
		switch {
		case args[0] == "--words" && len(args) > 1:
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fatal("invalid --words value: %s", args[1])
			}
			words = n
			args = args[2:]
		case args[0] == "--passphrase":
			passphrase = promptPassphrase()
			args = args[1:]
		default:
			fatal("unknown flag: %s", args[0])
		}
	}

	t, err := mnemonic.TypeForWordCount(words)
	if err != nil {
		fatal("%v", err)
	}

	list := loadWordList(cfg)
	m, err := mnemonic.Generate(t, list, passphrase)
	if err != nil {
		fatal("generate: %v", err)
	}
	printMnemonic(cfg, m)
}

func cmdEncode(cfg *config.Config, args []string) {
	passphrase := ""
	var entropyHex string
	for len(args) > 0 {
		switch {
		case args[0] == "--passphrase":
			passphrase = promptPassphrase()
			args = args[1:]
		default:
			entropyHex = args[0]
			args = args[1:]
		}
	}
	if entropyHex == "" {
		fatal("encode requires an entropy hex argument")
	}

	list := loadWordList(cfg)
	m, err := mnemonic.FromEntropyHex(entropyHex, list, passphrase)
	if err != nil {
		fatal("encode: %v", err)
	}
	printMnemonic(cfg, m)
}

func cmdDecode(cfg *config.Config, args []string) {
	phrase := strings.Join(args, " ")
	if phrase == "" {
		fatal("decode requires a phrase argument")
	}

	list := loadWordList(cfg)
	entropy, err := mnemonic.DecodeMnemonic(phrase, list)
	if err != nil {
		fatal("decode: %v", err)
	}
	if cfg.JSON {
		printJSON(map[string]string{"entropy": fmt.Sprintf("%X", entropy)})
		return
	}
	fmt.Printf("%X\n", entropy)
}

func cmdValidate(cfg *config.Config, args []string) {
	phrase := strings.Join(args, " ")
	if phrase == "" {
		fatal("validate requires a phrase argument")
	}

	list := loadWordList(cfg)
	err := mnemonic.Validate(phrase, list)
	if cfg.JSON {
		out := map[string]interface{}{"valid": err == nil}
		if err != nil {
			out["reason"] = validationReason(err)
		}
		printJSON(out)
		if err != nil {
			os.Exit(1)
		}
		return
	}
	if err != nil {
		fatal("invalid: %v", err)
	}
	fmt.Println("valid")
}

func cmdSeed(cfg *config.Config, args []string) {
	passphrase := ""
	var words []string
	for len(args) > 0 {
		switch {
		case args[0] == "--passphrase":
			passphrase = promptPassphrase()
			args = args[1:]
		default:
			words = append(words, args[0])
			args = args[1:]
		}
	}
	phrase := strings.Join(words, " ")
	if phrase == "" {
		fatal("seed requires a phrase argument")
	}

	list := loadWordList(cfg)
	m, err := mnemonic.FromPhrase(phrase, list, passphrase)
	if err != nil {
		fatal("seed: %v", err)
	}
	if cfg.JSON {
		printJSON(map[string]string{"seed": m.Seed().Hex()})
		return
	}
	fmt.Println(m.Seed().Hex())
}

// validationReason maps a codec error to a stable machine-readable tag.
func validationReason(err error) string {
	switch {
	case errors.Is(err, mnemonic.ErrInvalidWordCount):
		return "word_count"
	case errors.Is(err, mnemonic.ErrInvalidWord):
		return "unknown_word"
	case errors.Is(err, mnemonic.ErrInvalidChecksum):
		return "checksum"
	default:
		return "error"
	}
}

func printMnemonic(cfg *config.Config, m *mnemonic.Mnemonic) {
	if cfg.JSON {
		printJSON(map[string]string{
			"phrase":  m.Phrase(),
			"entropy": m.EntropyHex(),
			"seed":    m.Seed().Hex(),
		})
		return
	}
	fmt.Printf("Phrase:  %s\n", m.Phrase())
	fmt.Printf("Entropy: %s\n", m.EntropyHex())
	fmt.Printf("Seed:    %s\n", m.Seed().Hex())
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

// ── Passphrase helper ───────────────────────────────────────────────────

func promptPassphrase() string {
	fmt.Fprint(os.Stderr, "Enter passphrase: ")
	passphrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	return string(passphrase)
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
