package main

// Boundary is the retained span of a read, inclusive on both ends.
// Left > Right means the whole read was trimmed away.
type Boundary struct {
	Left  int
	Right int
}

func (b Boundary) Empty() bool {
	return b.Left > b.Right
}

// Length returns the number of retained bases.
func (b Boundary) Length() int {
	if b.Empty() {
		return 0
	}
	return b.Right - b.Left + 1
}

// trimByBase scans from each end and keeps the span between the first and
// last base with a score >= threshold.
func trimByBase(scores []int, threshold int) Boundary {
	left := 0
	for left < len(scores) && scores[left] < threshold {
		left++
	}
	right := len(scores) - 1
	for right >= 0 && scores[right] < threshold {
		right--
	}
	return Boundary{Left: left, Right: right}
}

// trimByWindow keeps the span from the first base of the leftmost window
// whose mean score >= threshold through the last base of the rightmost such
// window. Window sums are maintained incrementally so each slide is O(1).
// A window larger than the read degrades to a single whole-read window.
func trimByWindow(scores []int, threshold, windowSize int) Boundary {
	n := len(scores)
	if n == 0 {
		return Boundary{Left: 0, Right: -1}
	}
	w := windowSize
	if w > n {
		w = n
	}

	sum := 0
	for i := 0; i < w; i++ {
		sum += scores[i]
	}
	left := -1
	for s := 0; s+w <= n; s++ {
		if s > 0 {
			sum += scores[s+w-1] - scores[s-1]
		}
		if float64(sum)/float64(w) >= float64(threshold) {
			left = s
			break
		}
	}
	if left < 0 {
		// No window qualifies; both ends collapse.
		return Boundary{Left: n, Right: -1}
	}

	sum = 0
	for i := n - w; i < n; i++ {
		sum += scores[i]
	}
	right := -1
	for e := n; e >= w; e-- {
		if e < n {
			sum += scores[e-w] - scores[e]
		}
		if float64(sum)/float64(w) >= float64(threshold) {
			right = e - 1
			break
		}
	}
	return Boundary{Left: left, Right: right}
}
