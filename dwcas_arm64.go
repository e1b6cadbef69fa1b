//go:build arm64 && !tagptr_opt_cgo

package tagptr

// casWide performs a 128-bit compare-exchange on the 16-byte-aligned location
// at addr using an LDAXP/STLXP exclusive-pair loop, available on every ARMv8
// core. If *addr equals *old the location is set to (new0, new1) and casWide
// reports true; otherwise the location is unchanged, the observed pair is
// written back into *old and casWide reports false. Implemented in
// dwcas_arm64.s.
//
//go:noescape
func casWide(addr *[2]uint64, old *[2]uint64, new0, new1 uint64) bool

// casWideOrdered adapts casWide to the ordering-token contract. The exclusive
// pair uses acquire semantics on the load and release semantics on the store
// unconditionally, collapsing the success/failure pair to a single semantic
// at least as strong as any token this backend can be asked for.
func casWideOrdered(addr *[2]uint64, old *[2]uint64, new0, new1 uint64, success, failure Ordering) bool {
	return casWide(addr, old, new0, new1)
}
