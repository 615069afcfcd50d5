// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(darwin && arm64)

package cacheline

// Size is the compile-time cache-line size in bytes for this build.
// 64 bytes covers amd64, most arm64 (Linux/Android), riscv64, and
// loong64. See size_apple_silicon.go for the one platform observed in
// practice with a wider line.
const Size = 64
