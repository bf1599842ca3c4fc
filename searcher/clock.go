package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Clock abstracts the monotonic time source so sandboxed hosts can supply
// their own timer and tests can fake one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// elapsedSince returns the time elapsed since start on the given clock. A
// negative delta (clock anomaly) is clamped to zero rather than allowed to
// underflow budget comparisons.
func elapsedSince(c Clock, start time.Time) time.Duration {
	d := c.Now().Sub(start)
	if d < 0 {
		log.Warn().Dur("delta", d).Msg("clock went backwards; treating elapsed time as zero")
		return 0
	}
	return d
}
