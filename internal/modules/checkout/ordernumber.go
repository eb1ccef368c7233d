package checkout

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NumberGenerator proposes ORD-YYYYMMDD-NNNN order numbers. They are
// advisory; the backend's number replaces them.
type NumberGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now, intn: rand.IntN}
}

func (g *NumberGenerator) Next() string {
	return fmt.Sprintf("ORD-%s-%04d", g.now().UTC().Format("20060102"), 1000+g.intn(9000))
}
