package tagptr

import "sync/atomic"

// noCopy signals go vet when a containing type is copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Atomic is a marked pointer that can be read and written atomically. It owns
// exactly one machine word of storage; distinct instances are fully
// independent. The zero value is a null pointer with a zero tag. An Atomic
// must not be copied after first use.
type Atomic[T any, B Bits] struct {
	_ noCopy
	v uintptr
}

// Load atomically reads the current marked pointer.
//
// Panics if order is Release or AcqRel.
func (a *Atomic[T, B]) Load(order Ordering) Ptr[T, B] {
	checkLoadOrder(order)
	return Ptr[T, B]{raw: loadWord(&a.v, order)}
}

// Store atomically writes p.
//
// Panics if order is Acquire or AcqRel.
func (a *Atomic[T, B]) Store(p Ptr[T, B], order Ordering) {
	checkStoreOrder(order)
	storeWord(&a.v, p.raw, order)
}

// Swap atomically writes p and returns the previous marked pointer.
func (a *Atomic[T, B]) Swap(p Ptr[T, B], order Ordering) Ptr[T, B] {
	return Ptr[T, B]{raw: atomic.SwapUintptr(&a.v, p.raw)}
}

// CompareExchange atomically replaces the stored value with new if it equals
// current, comparing the full packed bit pattern: a tag-only difference is a
// mismatch, which is what makes ABA transitions observable. On success it
// returns (current, true). On failure the location is unchanged and the
// observed value is returned with false; retrying is the caller's business.
//
// failure must not be Release or AcqRel and must not be stronger than
// success; this is a caller obligation checked only in tagptr_opt_checks
// builds.
func (a *Atomic[T, B]) CompareExchange(current, new Ptr[T, B], success, failure Ordering) (Ptr[T, B], bool) {
	if enableChecks {
		checkCASOrders(success, failure)
	}
	for {
		if atomic.CompareAndSwapUintptr(&a.v, current.raw, new.raw) {
			return current, true
		}
		if observed := loadWord(&a.v, failure); observed != current.raw {
			return Ptr[T, B]{raw: observed}, false
		}
	}
}

// FetchUpdate repeatedly loads the current value, applies f and tries to
// compare-exchange the result in, until either an exchange succeeds or f
// returns false to signal "no change". It returns the last loaded value and
// whether an exchange was performed. f may be called multiple times and must
// be side-effect free.
func (a *Atomic[T, B]) FetchUpdate(order Ordering, f func(Ptr[T, B]) (Ptr[T, B], bool)) (Ptr[T, B], bool) {
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

// FetchAdd atomically adds value to the packed word and returns the previous
// marked pointer. The intended use is tag arithmetic; a tag overflowing its
// width carries into the address bits, which is a documented precondition
// violation, not a checked error.
func (a *Atomic[T, B]) FetchAdd(value uintptr, order Ordering) Ptr[T, B] {
	return Ptr[T, B]{raw: atomic.AddUintptr(&a.v, value) - value}
}

// FetchSub atomically subtracts value from the packed word and returns the
// previous marked pointer. The same overflow caveat as for FetchAdd applies.
func (a *Atomic[T, B]) FetchSub(value uintptr, order Ordering) Ptr[T, B] {
	return Ptr[T, B]{raw: atomic.AddUintptr(&a.v, -value) + value}
}

// FetchOr atomically ORs value into the tag bits and returns the previous
// marked pointer. Bits of value outside the tag mask are ignored.
func (a *Atomic[T, B]) FetchOr(value uintptr, order Ordering) Ptr[T, B] {
	var b B
	return Ptr[T, B]{raw: atomic.OrUintptr(&a.v, value&tagMaskOf(b.TagBits()))}
}

// FetchAnd atomically ANDs value with the tag bits and returns the previous
// marked pointer. The address bits are never cleared.
func (a *Atomic[T, B]) FetchAnd(value uintptr, order Ordering) Ptr[T, B] {
	var b B
	m := tagMaskOf(b.TagBits())
	return Ptr[T, B]{raw: atomic.AndUintptr(&a.v, value&m|^m)}
}

// FetchXor atomically XORs value into the tag bits and returns the previous
// marked pointer. Bits of value outside the tag mask are ignored. There is no
// hardware xor-fetch for words, so this compiles to a CAS loop.
func (a *Atomic[T, B]) FetchXor(value uintptr, order Ordering) Ptr[T, B] {
	var b B
	v := value & tagMaskOf(b.TagBits())
	for {
		old := loadWord(&a.v, Relaxed)
		if atomic.CompareAndSwapUintptr(&a.v, old, old^v) {
			return Ptr[T, B]{raw: old}
		}
	}
}
