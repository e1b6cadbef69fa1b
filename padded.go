package tagptr

// Padded is an Atomic padded out to a full cache line, for dense arrays of
// independent slots where false sharing between neighbors would serialize
// otherwise unrelated compare-exchanges.
//
// Array lengths must be plain constants and unsafe.Sizeof on a generic
// struct is not one, so the storage sizes are spelled out via wordSize.
type Padded[T any, B Bits] struct {
	Atomic[T, B]
	_ [CacheLineSize - wordSize]byte
}
