package tagptr

import "testing"

func BenchmarkCompose(b *testing.B) {
	n := new(node)
	for i := 0; i < b.N; i++ {
		p := Compose[node, B3](n, uintptr(i)&7)
		if p.Tag() != uintptr(i)&7 {
			b.Fatal("bad tag")
		}
	}
}

func BenchmarkAtomicLoad(b *testing.B) {
	var a Atomic[node, B3]
	a.Store(Compose[node, B3](new(node), 3), SeqCst)
	b.Run("SeqCst", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = a.Load(SeqCst)
		}
	})
	b.Run("Relaxed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = a.Load(Relaxed)
		}
	})
}

func BenchmarkAtomicCompareExchange(b *testing.B) {
	var a Atomic[node, B3]
	n := new(node)
	a.Store(Compose[node, B3](n, 0), SeqCst)
	cur := a.Load(SeqCst)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next := cur.AddTag(1)
		if observed, ok := a.CompareExchange(cur, next, SeqCst, SeqCst); ok {
			cur = next
		} else {
			cur = observed
		}
	}
}

func BenchmarkAtomicCompareExchangeParallel(b *testing.B) {
	var a Atomic[node, B8]
	a.Store(Compose[node, B8](nil, 0), SeqCst)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a.FetchUpdate(SeqCst, func(p Ptr[node, B8]) (Ptr[node, B8], bool) {
				return p.AddTag(1), true
			})
		}
	})
}

func BenchmarkPaddedParallel(b *testing.B) {
	var slots [8]Padded[node, B8]
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			i++
			slots[i&7].FetchAdd(1, SeqCst)
		}
	})
}
