// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "unsafe"

// Write reserves sizeof(T) bytes aligned to alignof(T) and constructs
// value in place. It is a thin convenience over PrepareWrite: it does not
// call FinishWrite -- the caller must do so once ready to publish.
//
// Write panics under the same conditions as PrepareWrite.
func Write[T any](rb *RingBuffer, value T) {
	dst := rb.PrepareWrite(int(unsafe.Sizeof(value)), int(unsafe.Alignof(value)))
	*(*T)(unsafe.Pointer(&dst[0])) = value
}

// WriteArray reserves sizeof(T)*len(values) bytes aligned to alignof(T)
// and copies values into place. It does not call FinishWrite.
func WriteArray[T any](rb *RingBuffer, values []T) {
	if len(values) == 0 {
		return
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	dst := rb.PrepareWrite(elemSize*len(values), int(unsafe.Alignof(zero)))
	typed := unsafe.Slice((*T)(unsafe.Pointer(&dst[0])), len(values))
	copy(typed, values)
}

// Read reserves sizeof(T) bytes aligned to alignof(T) from data the
// producer has already published, and reinterprets it as T. It does not
// call FinishRead -- the caller must do so once done reading.
//
// Read panics under the same conditions as PrepareRead.
func Read[T any](rb *RingBuffer) T {
	var zero T
	src := rb.PrepareRead(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	return *(*T)(unsafe.Pointer(&src[0]))
}

// ReadArray reserves sizeof(T)*n bytes aligned to alignof(T) and copies
// them into a freshly allocated []T. It does not call FinishRead.
func ReadArray[T any](rb *RingBuffer, n int) []T {
	out := make([]T, n)
	if n == 0 {
		return out
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	src := rb.PrepareRead(elemSize*n, int(unsafe.Alignof(zero)))
	typed := unsafe.Slice((*T)(unsafe.Pointer(&src[0])), n)
	copy(out, typed)
	return out
}
