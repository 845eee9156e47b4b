package dice

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

// randSource adapts a *math/rand.Rand to Source. Seeded battles and crypto
// battles share it; only the bit stream underneath differs.
type randSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// Intn returns a random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *randSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// cryptoBits is a math/rand.Source64 drawing every value from crypto/rand.
// It ignores seeding.
type cryptoBits struct{}

func (cryptoBits) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (c cryptoBits) Int63() int64 { return int64(c.Uint64() >> 1) }

func (cryptoBits) Seed(int64) {}

// NewCryptoSource returns a non-reproducible Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &randSource{rng: mrand.New(cryptoBits{})}
}

// NewSeededSource returns a reproducible Source. A zero seed is replaced by 1.
//
// Postcondition: two sources built from the same seed yield the same sequence.
func NewSeededSource(seed int64) Source {
	if seed == 0 {
		seed = 1
	}
	return &randSource{rng: mrand.New(mrand.NewSource(seed))}
}

// SourceForSeed returns a seeded Source for non-zero seeds and a crypto Source otherwise.
func SourceForSeed(seed int64) Source {
	if seed == 0 {
		return NewCryptoSource()
	}
	return NewSeededSource(seed)
}
