// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin

package cacheline

// RuntimeSize has no platform query on this GOOS and reports the build
// default as-is, the same posture original_source takes on platforms
// outside its #if defined(__APPLE__) / #elif defined(__linux__) ladder.
func RuntimeSize() int {
	return Size
}
