//go:build amd64 || arm64 || tagptr_opt_cgo

package tagptr

import (
	"fmt"
	"unsafe"
)

// WidePtr is a marked pointer whose tag occupies a full 64-bit word next to
// the address instead of being squeezed into alignment bits. The tag width is
// practically unrestricted and the pointee needs no particular alignment.
// Comparing WidePtr values with == compares address and tag together.
type WidePtr[T any] struct {
	ptr *T
	tag uint64
}

// ComposeWide combines ptr and a 64-bit tag into a wide marked pointer.
func ComposeWide[T any](ptr *T, tag uint64) WidePtr[T] {
	return WidePtr[T]{ptr: ptr, tag: tag}
}

// NewWide returns a wide marked pointer for ptr with a zero tag.
func NewWide[T any](ptr *T) WidePtr[T] {
	return WidePtr[T]{ptr: ptr}
}

// NullWide returns the null wide marked pointer with a zero tag.
func NullWide[T any]() WidePtr[T] {
	return WidePtr[T]{}
}

// Decompose splits the wide marked pointer into its address and tag.
func (p WidePtr[T]) Decompose() (*T, uint64) {
	return p.ptr, p.tag
}

// Ptr returns the address.
func (p WidePtr[T]) Ptr() *T {
	return p.ptr
}

// Tag returns the tag.
func (p WidePtr[T]) Tag() uint64 {
	return p.tag
}

// IsNull reports whether the address is null, regardless of the tag.
func (p WidePtr[T]) IsNull() bool {
	return p.ptr == nil
}

// WithTag returns a wide marked pointer with the same address and the given
// tag.
func (p WidePtr[T]) WithTag(tag uint64) WidePtr[T] {
	return WidePtr[T]{ptr: p.ptr, tag: tag}
}

// String formats the wide marked pointer as address|tag.
func (p WidePtr[T]) String() string {
	return fmt.Sprintf("%p|%d", p.ptr, p.tag)
}

// words returns the two-word wire form: low word address, high word tag.
// This layout is fixed across all compare-exchange backends.
func (p WidePtr[T]) words() [2]uint64 {
	return [2]uint64{uint64(uintptr(unsafe.Pointer(p.ptr))), p.tag}
}

func wideFromWords[T any](w [2]uint64) WidePtr[T] {
	return WidePtr[T]{ptr: (*T)(unsafe.Pointer(uintptr(w[0]))), tag: w[1]}
}

// AtomicWide is a wide marked pointer with atomic access through the
// platform's double-word compare-exchange. The zero value is a null pointer
// with a zero tag. An AtomicWide must not be copied after first use.
//
// The backing array over-allocates by one word so that a 16-byte-aligned
// two-word window always exists; Go only guarantees 8-byte alignment for
// uint64 fields, while every double-word backend requires natural 16-byte
// alignment of the location.
type AtomicWide[T any] struct {
	_ noCopy
	d [3]uint64
}

// addr returns the 16-byte-aligned two-word window inside the backing array.
func (a *AtomicWide[T]) addr() *[2]uint64 {
	if uintptr(unsafe.Pointer(&a.d[0]))%16 == 0 {
		return (*[2]uint64)(unsafe.Pointer(&a.d[0]))
	}
	return (*[2]uint64)(unsafe.Pointer(&a.d[1]))
}

// Load atomically reads the current wide marked pointer. Loading is
// implemented as a compare-exchange of null against null: on a null location
// it trivially succeeds and rewrites nothing of consequence, on any other it
// fails and reports the observed pair.
//
// Panics if order is Release or AcqRel.
func (a *AtomicWide[T]) Load(order Ordering) WidePtr[T] {
	checkLoadOrder(order)
	var cur [2]uint64
	casWideOrdered(a.addr(), &cur, 0, 0, order, order)
	return wideFromWords[T](cur)
}

// Store atomically writes p, retrying the compare-exchange until it wins a
// generation.
//
// Panics if order is Acquire or AcqRel.
func (a *AtomicWide[T]) Store(p WidePtr[T], order Ordering) {
	checkStoreOrder(order)
	w := p.words()
	var cur [2]uint64
	for !casWideOrdered(a.addr(), &cur, w[0], w[1], order, Relaxed) {
	}
}

// Swap atomically writes p and returns the previous wide marked pointer.
func (a *AtomicWide[T]) Swap(p WidePtr[T], order Ordering) WidePtr[T] {
	w := p.words()
	var cur [2]uint64
	for !casWideOrdered(a.addr(), &cur, w[0], w[1], order, strongestFailureOrdering(order)) {
	}
	return wideFromWords[T](cur)
}

// CompareExchange atomically replaces the stored pair with new if it equals
// current, comparing all 128 bits. On success it returns (current, true); on
// failure the location is unchanged and the observed pair is returned with
// false.
//
// The same failure-ordering obligations as for Atomic.CompareExchange apply.
func (a *AtomicWide[T]) CompareExchange(current, new WidePtr[T], success, failure Ordering) (WidePtr[T], bool) {
	if enableChecks {
		checkCASOrders(success, failure)
	}
	exp := current.words()
	w := new.words()
	if casWideOrdered(a.addr(), &exp, w[0], w[1], success, failure) {
		return current, true
	}
	return wideFromWords[T](exp), false
}

// PaddedWide is an AtomicWide padded out to a full cache line; see Padded.
type PaddedWide[T any] struct {
	AtomicWide[T]
	_ [CacheLineSize - 3*8]byte
}

// FetchUpdate repeatedly loads the current pair, applies f and tries to
// compare-exchange the result in, until either an exchange succeeds or f
// returns false. It returns the last loaded value and whether an exchange was
// performed.
func (a *AtomicWide[T]) FetchUpdate(order Ordering, f func(WidePtr[T]) (WidePtr[T], bool)) (WidePtr[T], bool) {
	failure := strongestFailureOrdering(order)
	prev := a.Load(failure)
	for {
		next, ok := f(prev)
		if !ok {
			return prev, false
		}
		observed, swapped := a.CompareExchange(prev, next, order, failure)
		if swapped {
			return prev, true
		}
		prev = observed
	}
}
