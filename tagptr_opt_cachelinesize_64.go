//go:build tagptr_opt_cachelinesize_64

package tagptr

// Forced 64-byte cache line, overriding the detected size.
const CacheLineSize = 64
