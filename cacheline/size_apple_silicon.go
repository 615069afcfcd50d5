// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build darwin && arm64

package cacheline

// Size is 128 bytes on Apple Silicon, which uses a wider L1/L2 coherency
// granule than x86-64 and most other arm64 platforms.
const Size = 128
