package colour

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// colourSpace is the number of distinct 24-bit colours.
const colourSpace = 1 << 24

// uint32Source is the part of *rand.Rand the generator draws from.
type uint32Source interface {
	Uint32N(n uint32) uint32
}

// Generator produces uniformly random colours over the full 24-bit space.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng  uint32Source
	seed uint64
}

// NewGenerator returns a Generator with a reproducible ChaCha8 source.
func NewGenerator(seed uint64) *Generator {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	return &Generator{
		// #nosec G404 -- deterministic colour generation, not cryptography
		rng:  mathrand.New(mathrand.NewChaCha8(seedArray)),
		seed: seed,
	}
}

// NewRandomGenerator returns a Generator seeded from crypto/rand.
func NewRandomGenerator() *Generator {
	var randomBytes [8]byte
	var seed uint64
	if _, err := rand.Read(randomBytes[:]); err == nil {
		seed = binary.LittleEndian.Uint64(randomBytes[:])
	} else {
		// #nosec G404 -- fallback seed only
		seed = mathrand.Uint64()
	}
	return NewGenerator(seed)
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Random returns a random colour. Both #000000 and #FFFFFF are reachable.
func (g *Generator) Random() Hex {
	return hexFromIndex(g.rng.Uint32N(colourSpace))
}

// hexFromIndex maps 0..colourSpace-1 onto #000000..#FFFFFF.
func hexFromIndex(v uint32) Hex {
	return RGB{
		R: uint8(v >> 16), // #nosec G115 -- v < 2^24
		G: uint8(v >> 8),  // #nosec G115
		B: uint8(v),       // #nosec G115
	}.Hex()
}

// RandomColor returns a random colour from a freshly seeded generator.
func RandomColor() Hex {
	return NewRandomGenerator().Random()
}
