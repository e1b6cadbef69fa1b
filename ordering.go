package tagptr

// Ordering selects the memory ordering of an atomic operation, following the
// usual acquire/release model. Every backend is free to provide a stronger
// ordering than requested but never a weaker one; on TSO architectures and
// with Go's sync/atomic primitives most tokens collapse to sequential
// consistency.
type Ordering uint8

const (
	// Relaxed imposes no ordering beyond the atomicity of the access.
	Relaxed Ordering = iota
	// Acquire makes the access a load-acquire.
	Acquire
	// Release makes the access a store-release.
	Release
	// AcqRel combines Acquire and Release for read-modify-write operations.
	AcqRel
	// SeqCst additionally places the access in the single global order of
	// all sequentially consistent operations.
	SeqCst
)

func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	}
	return "Ordering(invalid)"
}

// checkLoadOrder panics on orderings that are meaningless for a pure load.
func checkLoadOrder(o Ordering) {
	if o == Release || o == AcqRel {
		panic("tagptr: invalid load ordering: " + o.String())
	}
}

// checkStoreOrder panics on orderings that are meaningless for a pure store.
func checkStoreOrder(o Ordering) {
	if o == Acquire || o == AcqRel {
		panic("tagptr: invalid store ordering: " + o.String())
	}
}

// strongestFailureOrdering derives the strongest failure ordering legally
// allowed for a compare-exchange issued with the given success ordering.
func strongestFailureOrdering(o Ordering) Ordering {
	switch o {
	case Release:
		return Relaxed
	case AcqRel:
		return Acquire
	default:
		return o
	}
}
