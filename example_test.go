// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/ringbuf"
)

// Example demonstrates a single producer and a single consumer exchanging
// a handful of variably-sized records over a RingBuffer.
func Example() {
	buf := alignedTestBuffer(1 << 12)
	rb := &ringbuf.RingBuffer{}
	if err := rb.Initialize(buf); err != nil {
		panic(err)
	}

	messages := []string{"hello", "ring", "buffer"}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for _, m := range messages {
			dst := rb.PrepareWrite(len(m), 1)
			copy(dst, m)
			rb.FinishWrite()
		}
	}()

	go func() {
		defer wg.Done()
		for _, m := range messages {
			src := rb.PrepareRead(len(m), 1)
			fmt.Println(string(src))
			rb.FinishRead()
		}
	}()

	wg.Wait()
	// Output:
	// hello
	// ring
	// buffer
}
