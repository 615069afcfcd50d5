// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package shmbuf

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Allocate returns a Region backed by an anonymous MAP_SHARED mapping of
// at least minSize bytes, rounded up to a power of two. The mapping is
// page-aligned, which on every supported platform is also cache-line
// aligned, so the result satisfies RingBuffer.Initialize directly.
func Allocate(minSize int) (*Region, error) {
	size := ringSize(minSize)
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shmbuf: mmap: %w", err)
	}
	return &Region{buf: buf, unmap: unix.Munmap}, nil
}
