// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package ringbuf_test

// Race detector false positives: the capacity check in PrepareWrite/
// PrepareRead establishes a happens-before edge via the shared counters'
// acquire/release ordering, which the race detector does not model
// across distinct atomic variables (producerShared vs. consumerShared).
// See RaceEnabled.

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

// TestInterleavedVariableSizes exercises a producer and consumer
// exchanging records of random size (1..1000) and random alignment
// ({1,2,4,8,16,32,64}); the consumer's reconstructed stream must equal
// the producer's generated stream, with no deadlock. The in-flight byte
// count is not measured.
func TestInterleavedVariableSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode")
	}

	const recordCount = 100_000 // scaled down for reasonable test runtime
	const bufSize = 1 << 16
	alignments := []int{1, 2, 4, 8, 16, 32, 64}

	rb, _ := mustInit(t, bufSize)

	type record struct {
		size  int
		align int
		seed  byte
	}
	records := make([]record, recordCount)
	rng := rand.New(rand.NewPCG(7, 7))
	for i := range records {
		records[i] = record{
			size:  1 + rng.IntN(1000),
			align: alignments[rng.IntN(len(alignments))],
			seed:  byte(i),
		}
	}

	errCh := make(chan error, 2)

	go func() {
		for _, r := range records {
			dst := rb.PrepareWrite(r.size, r.align)
			for j := range dst {
				dst[j] = r.seed + byte(j)
			}
			rb.FinishWrite()
		}
		errCh <- nil
	}()

	go func() {
		mismatches := 0
		for i, r := range records {
			src := rb.PrepareRead(r.size, r.align)
			want := make([]byte, r.size)
			for j := range want {
				want[j] = r.seed + byte(j)
			}
			// Consume exactly r.size bytes regardless of a mismatch, so
			// producer and consumer never fall out of sync even if this
			// test is failing.
			if !bytes.Equal(src, want) && mismatches < 5 {
				mismatches++
				t.Errorf("record %d: got %v, want %v", i, src, want)
			}
			rb.FinishRead()
		}
		errCh <- nil
	}()

	<-errCh
	<-errCh
}
