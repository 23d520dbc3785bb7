// Package resource implements memory accounting for arrays.
//
// A Controller tracks bytes reserved by row buffers and presence bitmaps.
// With a hard limit configured, AcquireMemory fails fast with
// ErrMemoryLimitExceeded instead of blocking:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides what to do
//	}
//	defer rc.ReleaseMemory(4096)
//
// A single Controller may be shared by several arrays to bound their combined
// footprint. All Controller methods are safe for concurrent use, and all of
// them treat a nil Controller as unlimited.
package resource
