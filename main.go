package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func rootCommand() *cobra.Command {
	var (
		inputFile       string
		outputFile      string
		statsFile       string
		baseThreshold   int
		windowThreshold int
		windowSize      int
		strict          bool
	)

	cmd := &cobra.Command{
		Use:   "qualtrimmer",
		Short: "Trim low-quality ends from FASTQ reads",
		Long: `Trim low-quality bases from both ends of FASTQ reads, either base by base
against a quality threshold or by sliding-window average quality. Reads whose
quality never reaches the threshold are discarded. Input and output may be
plain FASTQ or gzip-compressed (.gz).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" || outputFile == "" {
				return fmt.Errorf("input and output files are required")
			}

			cfg, err := NewConfig(baseThreshold, windowThreshold, windowSize, strict)
			if err != nil {
				return err
			}

			summary, err := ProcessReads(inputFile, outputFile, statsFile, cfg)
			if summary != nil {
				summary.Print()
			}
			if err != nil {
				return err
			}
			fmt.Println("\nTrimming completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "input FASTQ file (required)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "output FASTQ file (required)")
	cmd.Flags().StringVar(&statsFile, "stats", "", "write per-read trim statistics (TSV) to this file")
	cmd.Flags().IntVar(&baseThreshold, "base-threshold", 0, "quality threshold for base-by-base trimming")
	cmd.Flags().IntVar(&windowThreshold, "window-threshold", 0, "average quality threshold for window-based trimming")
	cmd.Flags().IntVar(&windowSize, "window-size", 5, "window size for window-based trimming")
	cmd.Flags().BoolVar(&strict, "strict", false, "abort the run on the first malformed read")
	cmd.SilenceUsage = true

	return cmd
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
