// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringbuf

// RaceEnabled is true when the race detector is active.
// This package's own concurrent producer/consumer stress test is excluded
// from race builds by a "//go:build !race" constraint rather than by this
// constant. That test triggers false positives: the race detector cannot
// observe the happens-before relationship established by acquire/release
// loads and stores on the two shared counters.
const RaceEnabled = true
