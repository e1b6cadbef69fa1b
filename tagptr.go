// Package tagptr provides marked pointers: a machine pointer packed together
// with a small integer tag so the pair still fits in the space of a bare
// pointer, plus atomic access to such packed values. Marked pointers are the
// building block of lock-free algorithms that need versioned or flagged
// slots, e.g. hazard-pointer schemes, epoch-based reclamation and ABA-safe
// CAS loops.
//
// Two representations are available. [Ptr] packs the tag into the low bits of
// the address that a known alignment guarantees to be zero; its atomic
// counterpart [Atomic] operates on a single machine word. [WidePtr] stores a
// full 64-bit tag in a second word next to the pointer; [AtomicWide] operates
// on the resulting 16-byte pair with a double-word compare-exchange
// instruction and is only available on platforms providing one.
//
// The atomic containers store packed words, not Go pointers, so the garbage
// collector does not see the referents. Callers must keep pointed-to memory
// reachable through other means for as long as it may be loaded from a
// container; the reclamation schemes these types exist for do exactly that.
package tagptr

import (
	"fmt"
	"unsafe"
)

// Bits is a zero-size marker type carrying the tag width of a marked pointer
// as part of its type. The width must not exceed the guaranteed-zero low bits
// of the pointee's alignment; violating this is not checked outside of
// tagptr_opt_checks builds.
type Bits interface {
	TagBits() uintptr
}

// B0 through B8 are the predeclared tag widths. B0 is a legal no-op
// configuration: the marked pointer degenerates to a plain pointer.
type (
	B0 struct{}
	B1 struct{}
	B2 struct{}
	B3 struct{}
	B4 struct{}
	B5 struct{}
	B6 struct{}
	B7 struct{}
	B8 struct{}
)

func (B0) TagBits() uintptr { return 0 }
func (B1) TagBits() uintptr { return 1 }
func (B2) TagBits() uintptr { return 2 }
func (B3) TagBits() uintptr { return 3 }
func (B4) TagBits() uintptr { return 4 }
func (B5) TagBits() uintptr { return 5 }
func (B6) TagBits() uintptr { return 6 }
func (B7) TagBits() uintptr { return 7 }
func (B8) TagBits() uintptr { return 8 }

// tagMaskOf returns the bitmask covering the low width bits.
func tagMaskOf(width uintptr) uintptr {
	return 1<<width - 1
}

// pack combines an address and a tag into a single word. The tag is truncated
// to the mask; a tag wider than the mask or an address with non-zero mask
// bits is a contract violation caught only by tagptr_opt_checks builds.
func pack(addr unsafe.Pointer, tag, mask uintptr) uintptr {
	if enableChecks {
		checkPack(uintptr(addr), tag, mask)
	}
	return uintptr(addr) | tag&mask
}

// unpack splits a packed word back into its address and tag components.
// All reinterpretation of raw pointer bits in this package happens in pack
// and unpack.
func unpack(raw, mask uintptr) (unsafe.Pointer, uintptr) {
	return unsafe.Pointer(raw &^ mask), raw & mask
}

// Ptr is a marked pointer: a *T address and a tag of width B packed into one
// machine word. The zero value is a null pointer with a zero tag. Ptr values
// are plain data; comparing them with == compares the full packed bit
// pattern, so two values are equal iff both address and tag match.
type Ptr[T any, B Bits] struct {
	raw uintptr
}

// Compose packs ptr and tag into a marked pointer. The low B bits of ptr must
// be zero, which a pointee aligned to at least 1<<B guarantees.
func Compose[T any, B Bits](ptr *T, tag uintptr) Ptr[T, B] {
	var b B
	return Ptr[T, B]{raw: pack(unsafe.Pointer(ptr), tag, tagMaskOf(b.TagBits()))}
}

// New returns a marked pointer for ptr with a zero tag.
func New[T any, B Bits](ptr *T) Ptr[T, B] {
	return Compose[T, B](ptr, 0)
}

// Null returns the null marked pointer with a zero tag.
func Null[T any, B Bits]() Ptr[T, B] {
	return Ptr[T, B]{}
}

// FromRaw reinterprets a packed word as a marked pointer. It is the unsafe
// interop escape hatch; raw must have been produced by Raw or by packing an
// address and tag by hand under the same width.
func FromRaw[T any, B Bits](raw uintptr) Ptr[T, B] {
	return Ptr[T, B]{raw: raw}
}

// mask returns the tag bitmask for the pointer's width.
func (p Ptr[T, B]) mask() uintptr {
	var b B
	return tagMaskOf(b.TagBits())
}

// Raw returns the packed word as is, tag bits included. The result is not a
// dereferenceable address unless the tag is zero.
func (p Ptr[T, B]) Raw() uintptr {
	return p.raw
}

// Decompose splits the marked pointer into its address and tag.
func (p Ptr[T, B]) Decompose() (*T, uintptr) {
	addr, tag := unpack(p.raw, p.mask())
	return (*T)(addr), tag
}

// Ptr returns the address with the tag bits cleared.
func (p Ptr[T, B]) Ptr() *T {
	addr, _ := unpack(p.raw, p.mask())
	return (*T)(addr)
}

// Tag returns the tag.
func (p Ptr[T, B]) Tag() uintptr {
	return p.raw & p.mask()
}

// IsNull reports whether the address component is null. The tag is ignored:
// a null pointer carrying a non-zero tag is still null.
func (p Ptr[T, B]) IsNull() bool {
	return p.raw&^p.mask() == 0
}

// WithTag returns a marked pointer with the same address and the given tag.
func (p Ptr[T, B]) WithTag(tag uintptr) Ptr[T, B] {
	m := p.mask()
	if enableChecks {
		checkTag(tag, m)
	}
	return Ptr[T, B]{raw: p.raw&^m | tag&m}
}

// ClearTag returns a marked pointer with the same address and a zero tag.
func (p Ptr[T, B]) ClearTag() Ptr[T, B] {
	return Ptr[T, B]{raw: p.raw &^ p.mask()}
}

// SplitTag returns the pointer with its tag cleared together with the tag.
func (p Ptr[T, B]) SplitTag() (Ptr[T, B], uintptr) {
	m := p.mask()
	return Ptr[T, B]{raw: p.raw &^ m}, p.raw & m
}

// UpdateTag returns a marked pointer whose tag is f applied to the current
// tag. The result of f is truncated to the tag width.
func (p Ptr[T, B]) UpdateTag(f func(uintptr) uintptr) Ptr[T, B] {
	m := p.mask()
	return Ptr[T, B]{raw: p.raw&^m | f(p.raw&m)&m}
}

// AddTag returns a marked pointer with value added to the tag. The addition
// wraps within the tag width; it never carries into the address bits.
func (p Ptr[T, B]) AddTag(value uintptr) Ptr[T, B] {
	m := p.mask()
	return Ptr[T, B]{raw: p.raw&^m | (p.raw+value)&m}
}

// SubTag returns a marked pointer with value subtracted from the tag,
// wrapping within the tag width.
func (p Ptr[T, B]) SubTag(value uintptr) Ptr[T, B] {
	m := p.mask()
	return Ptr[T, B]{raw: p.raw&^m | (p.raw-value)&m}
}

// String formats the marked pointer as address|tag.
func (p Ptr[T, B]) String() string {
	addr, tag := unpack(p.raw, p.mask())
	return fmt.Sprintf("%p|%d", addr, tag)
}
