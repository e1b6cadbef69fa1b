//go:build amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm || loong64

package tagptr

// wordSize is the native machine word width in bytes.
const wordSize = 8
