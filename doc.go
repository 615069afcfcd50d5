// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringbuf provides a single-producer/single-consumer lock-free
// byte-stream ring buffer for arbitrarily-sized, variably-aligned records.
//
// # Quick Start
//
//	var rb ringbuf.RingBuffer
//	buf := storage // must be cache-line aligned, power-of-two size
//	if err := rb.Initialize(buf); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Producer goroutine
//	dst := rb.PrepareWrite(12, 4)
//	copy(dst, payload)
//	rb.FinishWrite()
//
//	// Consumer goroutine
//	src := rb.PrepareRead(12, 4)
//	use(src)
//	rb.FinishRead()
//
// # Reservation Protocol
//
// The producer reserves space with PrepareWrite, writes into the returned
// slice, then calls FinishWrite to publish the reservation. The consumer
// mirrors this with PrepareRead/FinishRead. The only synchronization between
// the two sides is a pair of atomic running-total counters; there is no
// mutex, no channel, no condition variable.
//
//	producer: PrepareWrite -> write bytes -> FinishWrite
//	consumer: PrepareRead  -> read bytes  -> FinishRead
//
// Both Prepare calls spin (busy-wait) when the peer has not yet made
// enough progress. TryPrepareWrite/TryPrepareRead are non-spinning
// variants that return [ErrWouldBlock] instead, for callers that want to
// supply their own backoff policy.
//
// # Running-Total Counters
//
// Unlike a textbook ring buffer that tracks read/write offsets modulo the
// buffer size, this design tracks monotonically increasing totals. The
// difference between the two sides' totals is exactly the number of bytes
// in flight, and size-minus-that-difference is the free capacity -- one
// subtraction, no full/empty flag. The counters are allowed to overflow;
// all capacity arithmetic is done as a signed difference (two's-complement
// wraparound), which remains correct across overflow.
//
// # Wrap-Around
//
// When a reservation would straddle the physical end of the buffer, the
// producer (or consumer) unconditionally teleports to offset zero and
// advances its wrap-epoch base by size. The peer detects and mirrors this
// transition purely from the running-total counters; no marker is ever
// written into the byte stream.
//
// # Typed Wrappers
//
// [Write], [Read], [WriteArray], and [ReadArray] are thin generic
// conveniences built on PrepareWrite/PrepareRead: they reserve
// sizeof(T) bytes aligned to alignof(T) and reinterpret them as T. They do not call
// FinishWrite/FinishRead; the caller still must call Finish once the
// value has been constructed or consumed.
//
// # Shared Memory
//
// RingBuffer itself only requires a borrowed, cache-line-aligned
// power-of-two-sized []byte; it does not allocate or map memory. The
// [code.hybscloud.com/ringbuf/shmbuf] package is one concrete backend
// that can supply such a region across process boundaries, paired with
// ReattachReader/ReattachWriter to reinstall a view's buffer pointer
// after the region has been mapped at a different virtual address in
// each process.
//
// # Concurrency Model
//
// Exactly one producer goroutine and exactly one consumer goroutine.
// Violating this is a caller bug the implementation does not detect.
// There is no blocking, no cancellation, and no dynamic resize; see
// [RingBuffer] for the full set of invariants.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic counters with
// explicit memory ordering, [code.hybscloud.com/spin] for the
// capacity-acquisition spin loop, and [code.hybscloud.com/iox] for the
// semantic ErrWouldBlock error returned by the non-spinning Try variants.
package ringbuf
