package lzwgc

// simplePRNG is a linear congruential generator used only by this package's
// tests to build deterministic, reproducible skewed-distribution input
// streams (spec.md §8.3 scenario 5). It uses Knuth's MMIX LCG multiplier and
// increment, so its output is the same on every platform.
type simplePRNG struct {
	state uint64
}

func newSimplePRNG(seed uint64) *simplePRNG {
	return &simplePRNG{state: seed}
}

func (p *simplePRNG) next() uint64 {
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return p.state
}

func (p *simplePRNG) uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return p.next() % n
}

// skewedBytes returns n bytes drawn from a small, unevenly weighted
// alphabet so that some byte values recur far more often than others,
// exercising the cyclic-LFU evictor under pressure instead of a uniform
// byte distribution that would evict almost at random.
func (p *simplePRNG) skewedBytes(n int) []byte {
	// Weighted alphabet: lower values chosen far more often than higher
	// ones, built once and indexed by a uniform draw over its length.
	var alphabet []byte
	for v := 0; v < 16; v++ {
		weight := 16 - v
		for i := 0; i < weight; i++ {
			alphabet = append(alphabet, byte(v))
		}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[p.uint64n(uint64(len(alphabet)))]
	}
	return out
}
