//go:build tagptr_opt_checks

package tagptr

import "fmt"

// Debug builds verify the documented preconditions that release builds leave
// unchecked. Enable with -tags tagptr_opt_checks.
const enableChecks = true

func checkPack(addr, tag, mask uintptr) {
	if tag&^mask != 0 {
		panic(fmt.Sprintf("tagptr: tag %#x exceeds tag mask %#x", tag, mask))
	}
	if addr&mask != 0 {
		panic(fmt.Sprintf("tagptr: address %#x has non-zero tag bits under mask %#x", addr, mask))
	}
}

func checkTag(tag, mask uintptr) {
	if tag&^mask != 0 {
		panic(fmt.Sprintf("tagptr: tag %#x exceeds tag mask %#x", tag, mask))
	}
}

func checkCASOrders(success, failure Ordering) {
	if failure == Release || failure == AcqRel {
		panic("tagptr: invalid failure ordering: " + failure.String())
	}
	if loadRank(failure) > loadRank(strongestFailureOrdering(success)) {
		panic("tagptr: failure ordering " + failure.String() +
			" stronger than success ordering " + success.String())
	}
}

func loadRank(o Ordering) int {
	switch o {
	case Relaxed:
		return 0
	case Acquire:
		return 1
	default:
		return 2
	}
}
