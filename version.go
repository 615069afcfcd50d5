// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// Version identifies the in-memory layout this package produces when a
// RingBuffer is placed in shared memory: the cache-line constant and the
// field order of localState/the shared counters are effectively part of
// the ABI. Two processes attaching to the same region should embed and
// compare Version before trusting ReattachReader/ReattachWriter.
var Version = struct {
	Major, Minor, Patch int
}{Major: 1, Minor: 0, Patch: 0}
