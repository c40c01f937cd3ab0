package store

import "github.com/cespare/xxhash/v2"

// negativeFilter is a fixed-size Bloom filter guarding the existence
// cache: a miss here means this run has certainly not marked the path,
// letting the cache skip the badger lookup and go straight to the
// filesystem stat. Hash positions use Kirsch-Mitzenmacher double hashing off
// two xxhash digests of the key, rather than k independent hash
// functions.
type negativeFilter struct {
	bits []uint64
	k    int
}

func newNegativeFilter(bitCount int, k int) *negativeFilter {
	if bitCount < 64 {
		bitCount = 64
	}
	return &negativeFilter{
		bits: make([]uint64, (bitCount+63)/64),
		k:    k,
	}
}

func (f *negativeFilter) positions(key string) (h1, h2 uint64) {
	h1 = xxhash.Sum64String(key)
	h2 = xxhash.Sum64String(key + "\x00")
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func (f *negativeFilter) add(key string) {
	nbits := uint64(len(f.bits) * 64)
	h1, h2 := f.positions(key)
	for i := 0; i < f.k; i++ {
		pos := (h1 + uint64(i)*h2) % nbits
		f.bits[pos/64] |= 1 << (pos % 64)
	}
}

// mightContain reports whether key could be present. false is a
// definite answer; true requires a slower confirmation.
func (f *negativeFilter) mightContain(key string) bool {
	nbits := uint64(len(f.bits) * 64)
	h1, h2 := f.positions(key)
	for i := 0; i < f.k; i++ {
		pos := (h1 + uint64(i)*h2) % nbits
		if f.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}
