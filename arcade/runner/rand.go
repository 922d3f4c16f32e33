package runner

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// XorShift is a small deterministic Source.
type XorShift struct {
	state uint32
}

func NewXorShift(seed uint64) *XorShift {
	s := uint32(seed) ^ uint32(seed>>32)
	if s == 0 {
		s = 0x12345678
	}
	return &XorShift{state: s}
}

func (x *XorShift) Float64() float64 {
	x.state = xorshift32(x.state)
	return float64(x.state>>8) / (1 << 24)
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}
