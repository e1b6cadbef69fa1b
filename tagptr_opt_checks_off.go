//go:build !tagptr_opt_checks

package tagptr

// Release builds compile the precondition checks away entirely; violating a
// documented precondition is undefined behavior. Build with
// -tags tagptr_opt_checks to enable them during testing.
const enableChecks = false

func checkPack(addr, tag, mask uintptr) {}

func checkTag(tag, mask uintptr) {}

func checkCASOrders(success, failure Ordering) {}
