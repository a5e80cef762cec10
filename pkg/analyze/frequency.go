package analyze

type AddressCount struct {
	Address string
	Count   uint64
}

// FrequencyTable counts occurrences per client address and remembers the
// order in which addresses were first seen, which decides ties.
type FrequencyTable struct {
	index   map[string]int
	entries []AddressCount
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[string]int)}
}

func (f *FrequencyTable) Observe(address string) {
	if f.index == nil {
		f.index = make(map[string]int)
	}
	i, ok := f.index[address]
	if !ok {
		f.index[address] = len(f.entries)
		f.entries = append(f.entries, AddressCount{Address: address, Count: 1})
		return
	}
	f.entries[i].Count++
}

// MostFrequent returns the address with the highest count; among equal
// counts the one seen first wins. ok is false when nothing was observed.
func (f *FrequencyTable) MostFrequent() (ac AddressCount, ok bool) {
	return f.pick(func(candidate, best uint64) bool { return candidate > best })
}

// LeastFrequent is MostFrequent with the comparison reversed.
func (f *FrequencyTable) LeastFrequent() (ac AddressCount, ok bool) {
	return f.pick(func(candidate, best uint64) bool { return candidate < best })
}

func (f *FrequencyTable) pick(better func(candidate, best uint64) bool) (AddressCount, bool) {
	if len(f.entries) == 0 {
		return AddressCount{}, false
	}
	best := f.entries[0]
	for _, e := range f.entries[1:] {
		if better(e.Count, best.Count) {
			best = e
		}
	}
	return best, true
}

// Len returns the number of distinct addresses.
func (f *FrequencyTable) Len() int {
	return len(f.entries)
}

// Total returns the sum of all counts.
func (f *FrequencyTable) Total() uint64 {
	var total uint64
	for _, e := range f.entries {
		total += e.Count
	}
	return total
}
