package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/pgzip"
)

type FastqRead struct {
	Header   string
	Sequence string
	Quality  string
}

// ErrLengthMismatch marks a read whose sequence and quality string differ in
// length. Handled per record, same as a malformed quality string.
var ErrLengthMismatch = errors.New("length mismatch")

// id returns the read identifier: the header up to the first space, without
// the leading '@'.
func (r *FastqRead) id() string {
	header := strings.TrimPrefix(r.Header, "@")
	if i := strings.IndexByte(header, ' '); i >= 0 {
		return header[:i]
	}
	return header
}

// trimResult pairs the trimmed read with its statistics. read is nil when
// the whole read was discarded; the stats entry is still emitted.
type trimResult struct {
	read  *FastqRead
	stats TrimStats
}

func trimRecord(read *FastqRead, cfg *Config) (*trimResult, error) {
	if len(read.Sequence) != len(read.Quality) {
		return nil, fmt.Errorf("%w: read %s has %d bases and %d quality characters",
			ErrLengthMismatch, read.id(), len(read.Sequence), len(read.Quality))
	}
	scores, err := decodeQuality(read.Quality)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", read.id(), err)
	}

	boundary := cfg.trim(scores)
	stats := buildStats(read.id(), len(read.Sequence), boundary, cfg.Method.String())
	if boundary.Empty() {
		return &trimResult{stats: stats}, nil
	}

	return &trimResult{
		read: &FastqRead{
			Header:   read.Header,
			Sequence: read.Sequence[boundary.Left : boundary.Right+1],
			Quality:  read.Quality[boundary.Left : boundary.Right+1],
		},
		stats: stats,
	}, nil
}

// runAbort is a once-set latch that stops the run in strict mode. Workers
// check it between records, the reader between batches.
type runAbort struct {
	mu  sync.Mutex
	err error
}

func (a *runAbort) set(err error) {
	a.mu.Lock()
	if a.err == nil {
		a.err = err
	}
	a.mu.Unlock()
}

func (a *runAbort) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Channel-based batch processor
func processBatch(
	batch []*FastqRead,
	cfg *Config,
	resultsChan chan<- *trimResult,
	wg *sync.WaitGroup,
	skippedCount, discardedCount *int64,
	abort *runAbort,
) {
	defer wg.Done()

	for _, read := range batch {
		if abort.Err() != nil {
			return
		}
		result, err := trimRecord(read, cfg)
		if err != nil {
			atomic.AddInt64(skippedCount, 1)
			if cfg.Strict {
				abort.set(err)
				return
			}
			continue
		}
		if result.read == nil {
			atomic.AddInt64(discardedCount, 1)
		}
		resultsChan <- result
	}
}

// Writer goroutine
func writeResults(
	writer *bufio.Writer,
	statsWriter *bufio.Writer,
	resultsChan <-chan *trimResult,
	doneChan chan<- struct{},
	trimmedCount, basesTrimmed *int64,
) {
	for result := range resultsChan {
		if statsWriter != nil {
			statsWriter.WriteString(result.stats.tsvLine())
		}
		if result.read == nil {
			continue
		}
		writer.WriteString(result.read.Header + "\n")
		writer.WriteString(result.read.Sequence + "\n")
		writer.WriteString("+\n")
		writer.WriteString(result.read.Quality + "\n")
		atomic.AddInt64(trimmedCount, 1)
		atomic.AddInt64(basesTrimmed, int64(result.stats.BasesTrimmed))
	}
	writer.Flush()
	if statsWriter != nil {
		statsWriter.Flush()
	}
	close(doneChan)
}

// ProcessReads streams a FASTQ file through the configured trimmer. Reads
// whose boundary collapses are omitted from the output, malformed reads are
// skipped (or abort the run in strict mode). The summary is valid even when
// an error is returned, covering the records processed up to that point.
func ProcessReads(inputFile, outputFile, statsFile string, cfg *Config) (*RunSummary, error) {
	startTime := time.Now()

	inFile, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer inFile.Close()

	var reader io.Reader = inFile
	if strings.HasSuffix(inputFile, ".gz") {
		gr, err := pgzip.NewReader(inFile)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		reader = gr
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		return nil, err
	}
	defer outFile.Close()

	var out io.Writer = outFile
	if strings.HasSuffix(outputFile, ".gz") {
		gw := pgzip.NewWriter(outFile)
		defer gw.Close()
		out = gw
	}
	writer := bufio.NewWriter(out)

	var statsWriter *bufio.Writer
	if statsFile != "" {
		statsOut, err := os.Create(statsFile)
		if err != nil {
			return nil, err
		}
		defer statsOut.Close()
		statsWriter = bufio.NewWriter(statsOut)
		statsWriter.WriteString(statsHeader)
	}

	resultsChan := make(chan *trimResult, 1000)
	doneChan := make(chan struct{})

	var wg sync.WaitGroup
	var skippedCount, discardedCount int64
	var totalReads, trimmedCount, basesTrimmed int64
	abort := &runAbort{}

	go writeResults(writer, statsWriter, resultsChan, doneChan, &trimmedCount, &basesTrimmed)

	const batchSize = 10000
	scanner := bufio.NewScanner(reader)
	reads := make([]*FastqRead, 0, batchSize)

	for scanner.Scan() {
		header := scanner.Text()
		if !strings.HasPrefix(header, "@") {
			return nil, fmt.Errorf("invalid fastq file: expected '@' at the beginning of header line, got: %s", header)
		}

		scanner.Scan()
		sequence := scanner.Text()

		scanner.Scan()
		plus := scanner.Text()
		if !strings.HasPrefix(plus, "+") {
			return nil, fmt.Errorf("invalid fastq file: expected '+' line, got: %s", plus)
		}

		scanner.Scan()
		quality := scanner.Text()

		reads = append(reads, &FastqRead{
			Header:   header,
			Sequence: sequence,
			Quality:  quality,
		})
		totalReads++

		if len(reads) == batchSize {
			wg.Add(1)
			go processBatch(reads, cfg, resultsChan, &wg, &skippedCount, &discardedCount, abort)
			reads = make([]*FastqRead, 0, batchSize)
			if abort.Err() != nil {
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}

	// Process remaining reads
	if len(reads) > 0 && abort.Err() == nil {
		wg.Add(1)
		go processBatch(reads, cfg, resultsChan, &wg, &skippedCount, &discardedCount, abort)
	}

	// Wait for all processing to complete
	wg.Wait()
	close(resultsChan)

	// Wait for writer to finish
	<-doneChan

	summary := &RunSummary{
		TotalReads:     totalReads,
		TrimmedReads:   trimmedCount,
		DiscardedReads: discardedCount,
		SkippedReads:   skippedCount,
		BasesTrimmed:   basesTrimmed,
		Elapsed:        time.Since(startTime),
	}
	return summary, abort.Err()
}
