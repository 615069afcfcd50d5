// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ringbuf/cacheline"
)

// pad is cache-line padding inserted between independently-written fields
// to prevent false sharing. Its length is the build's cache-line constant,
// see [code.hybscloud.com/ringbuf/cacheline].
type pad [cacheline.Size]byte

// localState is one side's private view of the shared buffer: the base
// pointer it currently uses to address the storage region, its write (or
// read) cursor, the cached upper bound of its currently-writable (or
// readable) window, and the wrap-epoch accumulator. Only the side that
// owns a localState ever mutates it.
type localState struct {
	buf  []byte
	pos  uint64
	end  uint64
	base uint64
	size uint64
}

// computeWrap applies the unconditional wrap-around rule: if the
// tentative reservation [pos, end) runs past the physical end of the
// buffer, teleport to offset zero and advance the wrap-epoch base. It
// does not mutate v; the caller commits pos/end/base only once capacity
// for the (possibly rebased) reservation is confirmed available.
func (v *localState) computeWrap(pos, end uint64) (newPos, newEnd, newBase uint64) {
	base := v.base
	if end > v.size {
		end -= pos
		pos = 0
		base += v.size
	}
	return pos, end, base
}

// RingBuffer is a single-producer/single-consumer lock-free byte-stream
// ring buffer. The zero value is a valid, uninitialized instance; call
// [RingBuffer.Initialize] before use.
//
// Invariants, maintained between Initialize and Reset:
//
//  1. size is a power of two, at least as large as the largest single
//     reservation ever performed.
//  2. The storage region is aligned to the cache line.
//  3. producerShared >= consumerShared (interpreted as a signed
//     difference, see PrepareWrite/PrepareRead).
//  4. producerShared - consumerShared <= size: the buffer never holds
//     more than its capacity.
//  5. Each side's base+pos equals the value its next Finish will publish.
//  6. producerShared, consumerShared, producerView, and consumerView each
//     occupy distinct cache lines.
//
// The producer goroutine is the sole owner of producerView and
// producerShared; the consumer goroutine is the sole owner of
// consumerView and consumerShared. Either side may read the other's
// shared counter. RingBuffer does not own the storage region -- it is
// borrowed from the caller for the RingBuffer's lifetime.
type RingBuffer struct {
	_              pad
	producerShared atomix.Uint64
	_              pad
	consumerShared atomix.Uint64
	_              pad
	producerView   localState
	_              pad
	consumerView   localState
	_              pad

	noAlign bool
	pause   PauseStrategy
}

func (rb *RingBuffer) spinner() Spinner {
	if rb.pause != nil {
		return rb.pause()
	}
	return defaultPauseStrategy()
}

// Initialize prepares rb to use buffer as its storage region. buffer's
// length must be a power of two and buffer must start on a cache-line
// boundary; len(buffer) becomes the ring's fixed capacity. Initialize
// zeroes all local and shared state (as Reset does), then installs
// buffer as both the producer's and the consumer's view.
//
// Initialize returns an error, never panics, for three environment
// conditions: a cache-line size mismatch between build and runtime, a
// misaligned buffer, and a non-power-of-two size. All three are fatal
// to this instance.
func (rb *RingBuffer) Initialize(buffer []byte) error {
	if got := cacheline.RuntimeSize(); got != cacheline.Size {
		return wrapInitErr(errCacheLineMismatch)
	}
	if len(buffer) == 0 {
		return wrapInitErr(errSizeNotPowerOfTwo)
	}
	if uintptr(unsafe.Pointer(&buffer[0]))%uintptr(cacheline.Size) != 0 {
		return wrapInitErr(errBufferNotAligned)
	}
	size := uint64(len(buffer))
	if size&(size-1) != 0 {
		return wrapInitErr(errSizeNotPowerOfTwo)
	}

	rb.Reset()
	rb.producerView.buf = buffer
	rb.consumerView.buf = buffer
	rb.producerView.size = size
	rb.consumerView.size = size
	// Initial writable window is the whole buffer; initial readable
	// window is empty until the producer publishes.
	rb.producerView.end = size
	return nil
}

// ReattachReader reinstalls the consumer view's buffer pointer without
// touching any counters or cursors. Used in cross-process deployments
// where the same physical storage region is mapped at a different
// virtual address in the consumer's process. The caller must ensure the
// consumer side is quiesced; ReattachReader performs no synchronization.
func (rb *RingBuffer) ReattachReader(buffer []byte) {
	rb.consumerView.buf = buffer
}

// ReattachWriter is the producer-side analog of ReattachReader.
func (rb *RingBuffer) ReattachWriter(buffer []byte) {
	rb.producerView.buf = buffer
}

// Reset returns rb to the post-Initialize-zero state: both local views
// and both shared counters are cleared. The caller must ensure the
// producer and consumer are quiesced; Reset performs no synchronization
// beyond the stores themselves.
func (rb *RingBuffer) Reset() {
	rb.producerView = localState{}
	rb.consumerView = localState{}
	rb.producerShared.StoreRelease(0)
	rb.consumerShared.StoreRelease(0)
}

// Cap returns the ring's fixed capacity in bytes, as set by Initialize.
func (rb *RingBuffer) Cap() int {
	return int(rb.producerView.size)
}
