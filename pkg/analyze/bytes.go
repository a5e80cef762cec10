package analyze

type ByteAccumulator struct {
	total uint64
}

func (b *ByteAccumulator) Observe(size uint64) {
	b.total += size
}

func (b *ByteAccumulator) Total() uint64 {
	return b.total
}
