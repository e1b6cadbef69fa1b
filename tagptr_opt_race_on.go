//go:build race

package tagptr

import "sync/atomic"

// Under race detector, disable TSO optimizations and use conservative
// atomic loads/stores
const isTSO = false

// Conservative: atomic word load to satisfy race detector
//
//go:nosplit
func loadWord(addr *uintptr, order Ordering) uintptr {
	return atomic.LoadUintptr(addr)
}

// Conservative: atomic word store to satisfy race detector
//
//go:nosplit
func storeWord(addr *uintptr, val uintptr, order Ordering) {
	atomic.StoreUintptr(addr, val)
}
