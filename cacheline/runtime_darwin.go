// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build darwin

package cacheline

import "golang.org/x/sys/unix"

// RuntimeSize queries the "hw.cachelinesize" sysctl, the same node
// original_source's get_runtime_cache_line_size() reads via sysctlbyname
// on Apple platforms. Returns -1 on failure, matching the Linux probe's
// fail-closed convention.
func RuntimeSize() int {
	n, err := unix.SysctlUint32("hw.cachelinesize")
	if err != nil || n == 0 {
		return -1
	}
	return int(n)
}
