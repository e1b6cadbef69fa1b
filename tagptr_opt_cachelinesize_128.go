//go:build tagptr_opt_cachelinesize_128

package tagptr

// Forced 128-byte cache line, overriding the detected size.
const CacheLineSize = 128
