// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "code.hybscloud.com/spin"

// Spinner is the interface a pause strategy must satisfy. Once is called
// once per failed capacity-acquisition attempt in the slow path of
// PrepareWrite/PrepareRead; implementations typically insert a CPU pause
// instruction or an exponential backoff.
//
// [code.hybscloud.com/spin.Wait] satisfies Spinner and is the default.
type Spinner interface {
	Once()
}

// PauseStrategy constructs a fresh [Spinner] for one slow-path retry loop.
// A fresh Spinner is requested every time PrepareWrite or PrepareRead
// enters its slow path.
type PauseStrategy func() Spinner

// defaultPauseStrategy constructs the package's default Spinner, backed
// by [code.hybscloud.com/spin.Wait]: a real pause instruction rather
// than a bare spin, overridable via [WithPauseStrategy].
func defaultPauseStrategy() Spinner {
	return &spin.Wait{}
}

// Option configures a RingBuffer at construction time. Options are applied
// in New, before Initialize is called.
type Option func(*RingBuffer)

// WithAlignmentDisabled opts out of the alignment upshift PrepareWrite
// and PrepareRead normally perform: reservations are no longer
// guaranteed naturally aligned, so the caller must not rely on in-place
// typed construction via [Write]/[Read] for types with alignment
// requirements stricter than 1.
func WithAlignmentDisabled() Option {
	return func(rb *RingBuffer) {
		rb.noAlign = true
	}
}

// WithPauseStrategy overrides the Spinner constructor used by the
// capacity-acquisition slow path. Pass a PauseStrategy that returns a
// no-op Spinner to busy-spin with no pause instruction at all, or one
// that yields the OS thread for cross-process deployments on
// oversubscribed CPUs, where a bare spin risks starving the peer.
func WithPauseStrategy(strategy PauseStrategy) Option {
	return func(rb *RingBuffer) {
		rb.pause = strategy
	}
}

// New constructs a RingBuffer with the given options applied. The result
// is still uninitialized; call Initialize before use.
//
// Example:
//
//	rb := ringbuf.New(ringbuf.WithAlignmentDisabled())
//	if err := rb.Initialize(buf); err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) *RingBuffer {
	rb := &RingBuffer{}
	for _, opt := range opts {
		opt(rb)
	}
	return rb
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// alignUp rounds pos up to the next multiple of alignment, which must be
// a power of two.
func alignUp(pos uint64, alignment int) uint64 {
	a := uint64(alignment)
	return (pos + a - 1) &^ (a - 1)
}
