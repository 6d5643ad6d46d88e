package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prolom/pkg/cipher"
	"prolom/pkg/mcmc"
)

var encryptFlags struct {
	file string
	key  string
	seed uint64
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt text under a substitution key",
	Long: `Normalizes text into the 27-symbol alphabet (A-Z plus '_' for word
gaps) and encrypts it under the given permutation. Without --key a random
permutation is drawn and printed, which is handy for producing test
ciphertexts for 'prolom solve'.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEncrypt,
}

func init() {
	f := encryptCmd.Flags()
	f.StringVarP(&encryptFlags.file, "file", "f", "", "Read text from file ('-' = stdin)")
	f.StringVarP(&encryptFlags.key, "key", "k", "", "27-symbol permutation of A-Z_ (default: random)")
	f.Uint64Var(&encryptFlags.seed, "seed", 0, "Seed for the random key draw (0 = entropy)")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	text, err := readText(args, encryptFlags.file)
	if err != nil {
		return err
	}

	alpha := cipher.Standard()
	var key *cipher.Key
	if encryptFlags.key != "" {
		key, err = cipher.NewKey(alpha, strings.ToUpper(encryptFlags.key))
		if err != nil {
			return err
		}
	} else {
		seed := encryptFlags.seed
		if seed == 0 {
			seed = randomSeed()
		}
		key = mcmc.RandomKey(alpha, mcmc.NewSource(seed))
	}

	norm := alpha.Normalize(text)
	if norm == "" {
		return fmt.Errorf("text has no alphabet symbols")
	}
	ct, err := key.Encrypt(norm)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key:        %s\n", key)
	fmt.Fprintf(out, "Ciphertext: %s\n", ct)
	return nil
}
