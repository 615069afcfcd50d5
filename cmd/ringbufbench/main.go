// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringbufbench drives a producer goroutine and a consumer
// goroutine over a [code.hybscloud.com/ringbuf.RingBuffer] backed by a
// [code.hybscloud.com/ringbuf/shmbuf] region, exchanging records of
// random size and alignment, and reports throughput. It drives the same
// interleaved-variable-sizes workload a correctness test would, without
// the assertions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"code.hybscloud.com/ringbuf"
	"code.hybscloud.com/ringbuf/shmbuf"
)

func main() {
	capacity := flag.Int("capacity", 1<<20, "ring buffer capacity in bytes (rounded up to a power of two)")
	records := flag.Int("records", 1_000_000, "number of records to exchange")
	maxRecord := flag.Int("max-record-size", 1000, "maximum record size in bytes")
	seconds := flag.Duration("timeout", 30*time.Second, "abort if the exchange has not finished by this deadline")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	region, err := shmbuf.Allocate(*capacity)
	if err != nil {
		logger.Error("allocate storage region", "error", err)
		os.Exit(1)
	}
	defer region.Close()

	var rb ringbuf.RingBuffer
	if err := rb.Initialize(region.Bytes()); err != nil {
		logger.Error("initialize ring buffer", "error", err)
		os.Exit(1)
	}
	logger.Info("ring buffer ready", "capacity", rb.Cap(), "records", *records)

	alignments := []int{1, 2, 4, 8, 16, 32, 64}
	var bytesWritten atomic.Int64

	var wg sync.WaitGroup
	wg.Add(2)

	start := time.Now()

	go func() {
		defer wg.Done()
		rng := rand.New(rand.NewPCG(1, 1))
		for i := 0; i < *records; i++ {
			size := 1 + rng.IntN(*maxRecord)
			align := alignments[rng.IntN(len(alignments))]
			dst := rb.PrepareWrite(size, align)
			for j := range dst {
				dst[j] = byte(i + j)
			}
			rb.FinishWrite()
			bytesWritten.Add(int64(size))
		}
	}()

	go func() {
		defer wg.Done()
		rng := rand.New(rand.NewPCG(1, 1))
		for i := 0; i < *records; i++ {
			size := 1 + rng.IntN(*maxRecord)
			align := alignments[rng.IntN(len(alignments))]
			rb.PrepareRead(size, align)
			rb.FinishRead()
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(*seconds):
		logger.Error("exchange did not finish before timeout", "timeout", *seconds)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("exchanged %d records, %d bytes, in %s (%.1f MB/s)\n",
		*records, bytesWritten.Load(), elapsed, float64(bytesWritten.Load())/elapsed.Seconds()/1e6)
}
