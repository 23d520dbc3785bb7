// Package bsa provides a block-sized sparse array of int32 values.
//
// An Array stores values at non-negative indices without reserving one
// contiguous buffer for the largest index. Index space is split into rows
// that double in size:
//
//	row 0: index 0
//	row 1: indices 1-2
//	row 2: indices 3-6
//	row r: indices 2^r-1 .. 2^(r+1)-2
//
// A row's buffer is allocated on the first Set into it and released by the
// Delete that removes its last set index. A dense presence bitmap covering
// the whole capacity is allocated once by New and decides whether an index
// is set, so zero is an ordinary value.
//
// # Quick Start
//
//	arr, err := bsa.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer arr.Close()
//
//	_ = arr.Set(0, 4)
//	_ = arr.Set(5, 9)
//
//	if v, ok := arr.Get(5); ok {
//	    fmt.Println(*v) // 9
//	}
//
//	var sum int32
//	arr.ForEach(func(v, acc *int32) { *acc += *v }, &sum)
//
//	fmt.Println(arr.MaxIndex(), arr) // 5 {[0]=4}{}{[5]=9}
//
// # Memory Limits
//
// Row buffers and the bitmap are accounted with a resource.Controller. With a
// limit configured, Set fails with ErrResourceExhausted instead of growing:
//
//	arr, err := bsa.New(bsa.WithMemoryLimit(4 << 20))
//
// # Concurrency
//
// Array is not safe for concurrent use; callers sharing one must serialize
// access. A resource.Controller may be shared between arrays.
package bsa
