package main

import (
	"errors"
	"fmt"
)

const (
	phredOffset   = 33
	maxPhredScore = 93
)

// ErrMalformedQuality marks a quality string containing a character that
// decodes outside the valid Phred+33 range.
var ErrMalformedQuality = errors.New("malformed quality")

// decodeQuality converts a Phred+33 quality string into integer scores,
// one per base.
func decodeQuality(quality string) ([]int, error) {
	scores := make([]int, len(quality))
	for i := 0; i < len(quality); i++ {
		score := int(quality[i]) - phredOffset
		if score < 0 || score > maxPhredScore {
			return nil, fmt.Errorf("%w: character %q at position %d", ErrMalformedQuality, quality[i], i)
		}
		scores[i] = score
	}
	return scores, nil
}
