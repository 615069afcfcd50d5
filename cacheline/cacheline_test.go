// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cacheline_test

import (
	"testing"

	"code.hybscloud.com/ringbuf/cacheline"
)

func TestSizeIsPowerOfTwo(t *testing.T) {
	if cacheline.Size <= 0 || cacheline.Size&(cacheline.Size-1) != 0 {
		t.Fatalf("cacheline.Size = %d, want a positive power of two", cacheline.Size)
	}
}

func TestRuntimeSizeMatchesOrFailsClosed(t *testing.T) {
	got := cacheline.RuntimeSize()
	if got != cacheline.Size && got != -1 {
		t.Fatalf("RuntimeSize() = %d, want either Size (%d) or the fail-closed sentinel -1", got, cacheline.Size)
	}
}
