// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shmbuf

import (
	"errors"
	"unsafe"

	"code.hybscloud.com/ringbuf/cacheline"
)

// rawAddr returns the address of b's first byte. b must be non-empty.
func rawAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

// ErrAlreadyClosed is returned by Close if the region was already closed.
var ErrAlreadyClosed = errors.New("shmbuf: region already closed")

// Region is a cache-line-aligned (and, on unix, page-aligned),
// power-of-two-sized byte region suitable as a
// [code.hybscloud.com/ringbuf.RingBuffer] storage region. The zero value is not usable; obtain one from Allocate.
type Region struct {
	buf    []byte
	closed bool
	unmap  func([]byte) error
}

// Bytes returns the region's backing slice. The returned slice must not
// be resliced or appended to in a way that reallocates; pass it directly
// to RingBuffer.Initialize, ReattachReader, or ReattachWriter.
func (r *Region) Bytes() []byte {
	return r.buf
}

// Close releases the region. After Close, Bytes' result must not be
// used.
func (r *Region) Close() error {
	if r.closed {
		return ErrAlreadyClosed
	}
	r.closed = true
	if r.unmap == nil {
		return nil
	}
	return r.unmap(r.buf)
}

// roundUpPow2 rounds n up to the next power of two, minimum 1.
func roundUpPow2(n int) int {
	if n < 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// ringSize computes the smallest power of two that is both >= minSize
// and a multiple of the cache line (so the region trivially satisfies
// RingBuffer.Initialize's alignment and power-of-two checks once the
// allocator itself hands back a cache-line-aligned address).
func ringSize(minSize int) int {
	size := roundUpPow2(minSize)
	if size < cacheline.Size {
		size = roundUpPow2(cacheline.Size)
	}
	return size
}
