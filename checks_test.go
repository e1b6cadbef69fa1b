//go:build tagptr_opt_checks

package tagptr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// These only run with -tags tagptr_opt_checks; release builds compile the
// precondition checks away.

func TestCheckedComposeRejectsWideTag(t *testing.T) {
	n := new(node)
	assert.Panics(t, func() { Compose[node, B3](n, 8) })
	assert.NotPanics(t, func() { Compose[node, B3](n, 7) })
	assert.Panics(t, func() { Compose[node, B3](n, 0).WithTag(8) })
}

func TestCheckedComposeRejectsMisalignedAddress(t *testing.T) {
	buf := make([]byte, 16)
	odd := (*node)(unsafe.Pointer(uintptr(unsafe.Pointer(&buf[0])) | 1))
	assert.Panics(t, func() { Compose[node, B3](odd, 0) })
}

func TestCheckedCASOrderings(t *testing.T) {
	var a Atomic[node, B3]
	p := Null[node, B3]()
	assert.Panics(t, func() { a.CompareExchange(p, p, SeqCst, Release) })
	assert.Panics(t, func() { a.CompareExchange(p, p, SeqCst, AcqRel) })
	assert.Panics(t, func() { a.CompareExchange(p, p, Relaxed, SeqCst) })
	assert.NotPanics(t, func() { a.CompareExchange(p, p, Release, Relaxed) })
	assert.NotPanics(t, func() { a.CompareExchange(p, p, AcqRel, Acquire) })
}
