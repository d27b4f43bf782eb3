package engine

import "math/rand"

// spawnTwoProb is the chance that a spawned tile is a 2 rather than a 4.
const spawnTwoProb = 0.9

// Source is the randomness used for spawning. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Spawn places a 2 (90%) or 4 (10%) in a uniformly chosen empty cell and
// records it as the last spawned tile. Returns false on a full board.
func (b *Board) Spawn() bool {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return false
	}

	index := empty[b.rng.Intn(len(empty))]

	value := 4
	if b.rng.Float64() < spawnTwoProb {
		value = 2
	}

	b.cells[index] = value
	b.lastSpawn = index
	return true
}
