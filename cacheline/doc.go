// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cacheline supplies the compile-time cache-line-size constant
// and a runtime probe to verify it, as external collaborators of
// [code.hybscloud.com/ringbuf]. The ring buffer core treats the constant
// as part of its ABI: it pads independently-written fields onto separate
// cache lines, and a mismatch between the compile-time value and the
// platform's actual line size would silently reintroduce false sharing.
//
// Size is a build-time default, selected per GOARCH via build tags
// (amd64 and most arm64 get 64, Apple Silicon gets 128 via a
// darwin+arm64 build tag). It must remain a compile-time constant: the
// ring buffer uses it as a padding-array length, which Go requires to
// be const.
//
// RuntimeSize queries the operating system for the actual L1 data cache
// line size, when the platform exposes one, so [ringbuf.RingBuffer.Initialize]
// can fail loudly on a mismatch instead of silently corrupting throughput.
package cacheline
