//go:build amd64 && !tagptr_opt_cgo

package tagptr

import "golang.org/x/sys/cpu"

// CMPXCHG16B is technically optional in the x86-64 baseline even though every
// CPU of the last two decades has it. Refusing to start beats tearing a
// 128-bit location at runtime; emulating the instruction is not an option.
func init() {
	if !cpu.X86.HasCX16 {
		panic("tagptr: CPU does not support CMPXCHG16B, required for AtomicWide")
	}
}

// casWide issues LOCK CMPXCHG16B on the 16-byte-aligned location at addr.
// If *addr equals *old the location is set to (new0, new1) and casWide
// reports true; otherwise the location is unchanged, the observed pair is
// written back into *old and casWide reports false. Implemented in
// dwcas_amd64.s.
//
//go:noescape
func casWide(addr *[2]uint64, old *[2]uint64, new0, new1 uint64) bool

// casWideOrdered adapts casWide to the ordering-token contract. The lock
// prefix makes the instruction a full barrier, which subsumes every token
// this backend can be asked for; the parameters exist so all backends share
// one signature.
func casWideOrdered(addr *[2]uint64, old *[2]uint64, new0, new1 uint64, success, failure Ordering) bool {
	return casWide(addr, old, new0, new1)
}
