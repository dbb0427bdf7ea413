package machine

import "math/rand"

// Random yields a uniform integer in [0, n).
type Random interface {
	Intn(n int) int
}

type defaultRandom struct{}

func (defaultRandom) Intn(n int) int {
	return rand.Intn(n)
}

// winnerOdds is the number of equally likely outcomes of a crank turn; only
// outcome zero produces a winner.
const winnerOdds = 10
