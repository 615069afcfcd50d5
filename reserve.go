// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// PrepareWrite reserves size bytes, naturally aligned to alignment (a
// power of two), and returns a slice over the reserved extent within the
// storage region. The caller must write at most size bytes into the
// returned slice and then call FinishWrite before the next PrepareWrite.
//
// Calling PrepareWrite again before FinishWrite is not an error: the
// pending reservation is silently replaced (the local cursor advances,
// but nothing is published to the consumer until FinishWrite runs).
//
// PrepareWrite panics if size exceeds the buffer's capacity or if
// alignment is not a power of two -- both are caller-programming errors,
// not steady-state conditions. When the buffer lacks space, PrepareWrite
// spins (see [RingBuffer.spinner]) until the consumer makes enough
// progress; it never returns an error.
func (rb *RingBuffer) PrepareWrite(size, alignment int) []byte {
	v := &rb.producerView
	assertReservation(size, alignment, v.size)

	pos := v.pos
	if !rb.noAlign {
		pos = alignUp(pos, alignment)
	}
	end := pos + uint64(size)

	if end > v.end {
		var base uint64
		pos, end, base = v.computeWrap(pos, end)

		sw := rb.spinner()
		for {
			peer := rb.consumerShared.LoadAcquire()
			available := peer - base + v.size
			if int64(available-end) >= 0 {
				v.end = min(available, v.size)
				break
			}
			sw.Once()
		}
		v.base = base
	}

	v.pos = end
	return v.buf[pos : pos+uint64(size) : pos+uint64(size)]
}

// FinishWrite publishes the most recent PrepareWrite's reservation,
// making its contents visible to the consumer. It is the sole
// synchronization point on the producer side: the store uses release
// ordering, so every byte-region write issued before FinishWrite is
// observable to the consumer once it acquire-loads this counter.
func (rb *RingBuffer) FinishWrite() {
	v := &rb.producerView
	rb.producerShared.StoreRelease(v.base + v.pos)
}

// PrepareRead is the consumer-side mirror of PrepareWrite: it reserves
// size bytes, naturally aligned to alignment, and returns a slice over
// data the producer has already published. It spins until the producer
// has published enough bytes in the current epoch.
//
// PrepareRead panics if size exceeds the buffer's capacity or alignment
// is not a power of two.
func (rb *RingBuffer) PrepareRead(size, alignment int) []byte {
	v := &rb.consumerView
	assertReservation(size, alignment, v.size)

	pos := v.pos
	if !rb.noAlign {
		pos = alignUp(pos, alignment)
	}
	end := pos + uint64(size)

	if end > v.end {
		var base uint64
		pos, end, base = v.computeWrap(pos, end)

		sw := rb.spinner()
		for {
			peer := rb.producerShared.LoadAcquire()
			available := peer - base
			if int64(available-end) >= 0 {
				v.end = min(available, v.size)
				break
			}
			sw.Once()
		}
		v.base = base
	}

	v.pos = end
	return v.buf[pos : pos+uint64(size) : pos+uint64(size)]
}

// FinishRead publishes the most recent PrepareRead's progress, releasing
// the corresponding space back to the producer.
func (rb *RingBuffer) FinishRead() {
	v := &rb.consumerView
	rb.consumerShared.StoreRelease(v.base + v.pos)
}

// TryPrepareWrite is the non-spinning variant of PrepareWrite. It makes a
// single capacity check and returns [ErrWouldBlock] instead of spinning
// when the consumer has not yet released enough space. On failure, rb's
// state is left exactly as it was before the call -- a subsequent
// TryPrepareWrite or PrepareWrite call recomputes the identical
// reservation.
func (rb *RingBuffer) TryPrepareWrite(size, alignment int) ([]byte, error) {
	v := &rb.producerView
	assertReservation(size, alignment, v.size)

	pos := v.pos
	if !rb.noAlign {
		pos = alignUp(pos, alignment)
	}
	end := pos + uint64(size)
	base := v.base
	windowEnd := v.end

	if end > windowEnd {
		pos, end, base = v.computeWrap(pos, end)
		peer := rb.consumerShared.LoadAcquire()
		available := peer - base + v.size
		if int64(available-end) < 0 {
			return nil, ErrWouldBlock
		}
		windowEnd = min(available, v.size)
	}

	v.base = base
	v.end = windowEnd
	v.pos = end
	return v.buf[pos : pos+uint64(size) : pos+uint64(size)], nil
}

// TryPrepareRead is the non-spinning, consumer-side mirror of
// TryPrepareWrite.
func (rb *RingBuffer) TryPrepareRead(size, alignment int) ([]byte, error) {
	v := &rb.consumerView
	assertReservation(size, alignment, v.size)

	pos := v.pos
	if !rb.noAlign {
		pos = alignUp(pos, alignment)
	}
	end := pos + uint64(size)
	base := v.base
	windowEnd := v.end

	if end > windowEnd {
		pos, end, base = v.computeWrap(pos, end)
		peer := rb.producerShared.LoadAcquire()
		available := peer - base
		if int64(available-end) < 0 {
			return nil, ErrWouldBlock
		}
		windowEnd = min(available, v.size)
	}

	v.base = base
	v.end = windowEnd
	v.pos = end
	return v.buf[pos : pos+uint64(size) : pos+uint64(size)], nil
}

// assertReservation checks the caller-programming-error preconditions
// for a reservation, failing loudly rather than exhibiting undefined
// behavior.
func assertReservation(size, alignment int, capacity uint64) {
	if uint64(size) > capacity {
		panic("ringbuf: reservation size exceeds buffer capacity")
	}
	if !isPowerOfTwo(alignment) {
		panic("ringbuf: alignment must be a power of two")
	}
}
