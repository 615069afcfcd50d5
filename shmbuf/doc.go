// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shmbuf provides one concrete storage-region backend for
// [code.hybscloud.com/ringbuf]. The ring buffer's core deliberately
// stays agnostic to how its storage region is obtained: it only
// consumes an aligned byte region of power-of-two size and exposes
// ReattachReader/ReattachWriter so a caller can install that region
// after mapping it into more than one address space. shmbuf is that
// caller.
//
// On unix platforms, Allocate anonymously mmaps a page- and cache-line-
// aligned region with MAP_SHARED, suitable for a producer and consumer
// that share the mapping across a fork. The mapping is anonymous: Allocate
// creates no named object (shm_open, memfd_create), so an unrelated
// second process cannot map the same region through this package.
// ReattachReader/ReattachWriter accept the bytes of any mapping the
// caller makes of a shared object in such a process.
//
// On platforms without mmap, Allocate falls back to a plain
// cache-line-aligned heap allocation, which is correct for in-process
// use but cannot be shared across processes.
package shmbuf
