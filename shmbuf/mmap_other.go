// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package shmbuf

import "code.hybscloud.com/ringbuf/cacheline"

// Allocate returns a Region backed by a plain, cache-line-aligned heap
// allocation of at least minSize bytes, rounded up to a power of two.
// This platform has no mmap, so the region is only usable in-process;
// it cannot be shared with another process.
func Allocate(minSize int) (*Region, error) {
	size := ringSize(minSize)
	// Over-allocate by one cache line so an aligned window of size bytes
	// is guaranteed to exist inside the raw allocation, then slice down
	// to that window.
	raw := make([]byte, size+cacheline.Size)
	off := 0
	if rem := uintptr(rawAddr(raw)) % uintptr(cacheline.Size); rem != 0 {
		off = int(uintptr(cacheline.Size) - rem)
	}
	buf := raw[off : off+size : off+size]
	return &Region{buf: buf}, nil
}
