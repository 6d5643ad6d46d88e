package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prolom/internal/corpus"
	"prolom/pkg/cipher"
	"prolom/pkg/ngram"
)

var trainFlags struct {
	corpus string
	output string
}

var trainCmd = &cobra.Command{
	Use:   "train [file...]",
	Short: "Train a transition matrix and write it as CSV",
	Long: `Counts bigrams over the given text files (or over an embedded corpus
when none are given) and writes the add-one-smoothed log-probability matrix
as CSV. The CSV feeds 'prolom solve --matrix'.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.StringVar(&trainFlags.corpus, "corpus", "", "Embedded corpus to train on when no files are given")
	f.StringVarP(&trainFlags.output, "output", "o", "", "Output CSV path (required)")

	_ = trainCmd.MarkFlagRequired("output")
}

func runTrain(cmd *cobra.Command, args []string) error {
	trainer := ngram.NewTrainer(cipher.Standard())

	if len(args) == 0 {
		name := trainFlags.corpus
		if name == "" {
			name = corpus.Default
		}
		text, err := corpus.Load(name)
		if err != nil {
			return err
		}
		trainer.Add(text)
	} else {
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open corpus file: %w", err)
			}
			err = trainer.AddReader(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	out, err := os.Create(trainFlags.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	if err := trainer.Matrix().WriteCSV(out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Matrix: %s\n", trainFlags.output)
	return nil
}
