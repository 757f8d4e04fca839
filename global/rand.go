package global

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

func CreateRandomSeed() *rand.PCG {
	var randBytes [16]byte
	if _, err := cryptoRand.Read(randBytes[:]); err != nil {
		// crypto/rand only fails when the OS has no entropy source at all
		panic(err)
	}

	return rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

func NewRng() *rand.Rand {
	return rand.New(CreateRandomSeed())
}

// HighSource always rolls the highest value: IntN(n) is n-1 and Float64 is just under 1.
type HighSource struct{}

func (HighSource) Uint64() uint64 {
	return math.MaxUint64
}
