// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package cacheline

import (
	"os"
	"strconv"
	"strings"
)

// sysfsCoherencyLineSize is queried the way original_source's
// get_runtime_cache_line_size() queries sysconf(_SC_LEVEL1_DCACHE_LINESIZE)
// on Linux: via the per-CPU cache topology exposed under /sys.
const sysfsCoherencyLineSize = "/sys/devices/system/cpu/cpu0/cache/index0/coherency_line_size"

// RuntimeSize queries the kernel for the L1 data cache line size of CPU 0.
// Returns -1, an unusable value guaranteed not to match Size, if the sysfs
// node is unreadable or unparsable -- mirroring original_source's
// get_runtime_cache_line_size(), which returns static_cast<size_t>(-1) on
// sysconf failure rather than silently assuming the build default holds.
func RuntimeSize() int {
	raw, err := os.ReadFile(sysfsCoherencyLineSize)
	if err != nil {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n <= 0 {
		return -1
	}
	return n
}
