//go:build tagptr_opt_cgo

package tagptr

// The cgo backend delegates the double-word compare-exchange to the C
// compiler's __atomic builtin over a 16-byte value. It exists for platforms
// without a hand-written assembly backend and for cross-checking the
// assembly backends against an independent implementation; enable it with
// -tags tagptr_opt_cgo. Unlike the assembly backends it translates both
// ordering tokens instead of collapsing them.

/*
#cgo linux LDFLAGS: -latomic

#include <stdint.h>

typedef struct {
	uint64_t lo, hi;
} tagptr_pair_t;

static uint8_t tagptr_dwcas(tagptr_pair_t *dst, tagptr_pair_t *old,
                            tagptr_pair_t new, int success, int failure) {
	return __atomic_compare_exchange(dst, old, &new, 0, success, failure);
}
*/
import "C"

import "unsafe"

// atomicOrder maps an Ordering token to the compiler's __ATOMIC_*
// enumeration. Pure mapping, no shared state.
func atomicOrder(o Ordering) C.int {
	switch o {
	case Relaxed:
		return C.__ATOMIC_RELAXED
	case Acquire:
		return C.__ATOMIC_ACQUIRE
	case Release:
		return C.__ATOMIC_RELEASE
	case AcqRel:
		return C.__ATOMIC_ACQ_REL
	default:
		return C.__ATOMIC_SEQ_CST
	}
}

func casWideOrdered(addr *[2]uint64, old *[2]uint64, new0, new1 uint64, success, failure Ordering) bool {
	return C.tagptr_dwcas(
		(*C.tagptr_pair_t)(unsafe.Pointer(addr)),
		(*C.tagptr_pair_t)(unsafe.Pointer(old)),
		C.tagptr_pair_t{lo: C.uint64_t(new0), hi: C.uint64_t(new1)},
		atomicOrder(success), atomicOrder(failure)) != 0
}
