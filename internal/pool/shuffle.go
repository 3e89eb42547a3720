package pool

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Shuffler permutes slices uniformly at random. The production source is
// crypto/rand; tests use a seeded one for repeatable orderings.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewShuffler returns a Shuffler backed by crypto/rand.
func NewShuffler() *Shuffler {
	return &Shuffler{rng: rand.New(cryptoSource{})}
}

// NewSeededShuffler returns a deterministic Shuffler.
func NewSeededShuffler(seed uint64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle permutes items in place with Fisher-Yates, walking down from the
// last index and swapping each position with a uniform index in [0, i].
func Shuffle[T any](s *Shuffler, items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(items) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// cryptoSource adapts crypto/rand to math/rand/v2.Source.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	crand.Read(b[:]) // never returns an error since Go 1.24
	return binary.LittleEndian.Uint64(b[:])
}
