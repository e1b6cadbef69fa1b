//go:build !race

package tagptr

import (
	"runtime"
	"sync/atomic"
)

// Detect TSO architectures; on TSO, plain reads/writes of an aligned word
// are atomic and totally ordered, so Relaxed accesses can skip sync/atomic.
const isTSO = runtime.GOARCH == "amd64" ||
	runtime.GOARCH == "386" ||
	runtime.GOARCH == "s390x"

// Relaxed on TSO: plain word load; everything else: atomic.LoadUintptr
//
//go:nosplit
func loadWord(addr *uintptr, order Ordering) uintptr {
	if isTSO && order == Relaxed {
		return *addr
	}
	return atomic.LoadUintptr(addr)
}

// Relaxed on TSO: plain word store; everything else: atomic.StoreUintptr
//
//go:nosplit
func storeWord(addr *uintptr, val uintptr, order Ordering) {
	if isTSO && order == Relaxed {
		*addr = val
		return
	}
	atomic.StoreUintptr(addr, val)
}
