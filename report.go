package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
)

// TrimStats describes the outcome of trimming a single read.
type TrimStats struct {
	ID             string
	OriginalLength int
	TrimmedLength  int
	BasesTrimmed   int
	LeftTrim       int
	RightTrim      int
	Unit           string
}

// buildStats derives per-read statistics from a trim boundary. For a fully
// discarded read the whole length is attributed to the left trim and zero to
// the right, matching the exhausted left scan; downstream reporting relies
// on this convention.
func buildStats(id string, originalLength int, b Boundary, unit string) TrimStats {
	if b.Empty() {
		return TrimStats{
			ID:             id,
			OriginalLength: originalLength,
			BasesTrimmed:   originalLength,
			LeftTrim:       originalLength,
			Unit:           unit,
		}
	}
	trimmed := b.Length()
	return TrimStats{
		ID:             id,
		OriginalLength: originalLength,
		TrimmedLength:  trimmed,
		BasesTrimmed:   originalLength - trimmed,
		LeftTrim:       b.Left,
		RightTrim:      originalLength - 1 - b.Right,
		Unit:           unit,
	}
}

const statsHeader = "id\toriginal_length\ttrimmed_length\tbases_trimmed\tleft_trim\tright_trim\tunit\n"

func (s TrimStats) tsvLine() string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
		s.ID, s.OriginalLength, s.TrimmedLength, s.BasesTrimmed, s.LeftTrim, s.RightTrim, s.Unit)
}

// RunSummary accumulates run-level totals. Every read ends up in exactly one
// of trimmed, discarded, or skipped.
type RunSummary struct {
	TotalReads     int64
	TrimmedReads   int64
	DiscardedReads int64
	SkippedReads   int64
	BasesTrimmed   int64
	Elapsed        time.Duration
}

func (s *RunSummary) Print() {
	trimmedPercentage := 0.0
	if s.TotalReads > 0 {
		trimmedPercentage = float64(s.TrimmedReads) / float64(s.TotalReads) * 100
	}

	fmt.Printf("\nTotal reads: %s\n", Comma(s.TotalReads))
	fmt.Printf("Trimmed reads: %s\n", Comma(s.TrimmedReads))
	color.HiGreen("Percentage of trimmed reads: %.2f%%\n", trimmedPercentage)
	color.HiMagenta("\nDiscarded reads (all low quality): %s\n", Comma(s.DiscardedReads))
	color.HiMagenta("Skipped reads (malformed): %s\n", Comma(s.SkippedReads))
	fmt.Printf("\nTotal bases trimmed: %s\n", Comma(s.BasesTrimmed))
	fmt.Printf("\nApplication execution time: %s\n", s.Elapsed)
}

func Comma(value int64) string {
	str := strconv.FormatInt(value, 10)
	result := ""
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		if count > 0 && count%3 == 0 {
			result = "," + result
		}
		result = string(str[i]) + result
		count++
	}
	return result
}
