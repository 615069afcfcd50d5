// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates TryPrepareWrite/TryPrepareRead cannot proceed
// immediately: the buffer is full (write side) or empty (read side).
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later, typically after a backoff, rather than propagating the
// error. PrepareWrite/PrepareRead never return it -- they spin instead.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    dst, err := rb.TryPrepareWrite(len(payload), 1)
//	    if err == nil {
//	        copy(dst, payload)
//	        rb.FinishWrite()
//	        backoff.Reset()
//	        break
//	    }
//	    if ringbuf.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// Initialize failure sentinels. Initialize wraps them with a "ringbuf: "
// prefix via fmt.Errorf. They are unexported, so code outside this
// package cannot match them with errors.Is; the error text carries the
// cause.
var (
	// errCacheLineMismatch reports that the runtime-queried cache-line
	// size differs from the compile-time constant. Fatal to the instance.
	errCacheLineMismatch = errors.New("wrong cache line size")
	// errBufferNotAligned reports that the caller-provided storage is not
	// aligned to the cache line. Fatal to the instance.
	errBufferNotAligned = errors.New("buffer is not aligned on cache line")
	// errSizeNotPowerOfTwo reports that the buffer length is not a power
	// of two. Fatal to the instance.
	errSizeNotPowerOfTwo = errors.New("size must be a power of two")
)

func wrapInitErr(cause error) error {
	return fmt.Errorf("ringbuf: %w", cause)
}
