package searcher

import "math"

// DefaultExploration is the UCB1 exploration constant, sqrt(2).
const DefaultExploration = float32(1.41421356)

// unvisitedScore is the sentinel returned for a node that has never been
// visited. It is a large finite value rather than +Inf so that comparisons
// stay well-defined on runtimes where infinities and NaNs must not
// propagate; it still strictly exceeds any reachable visited score, since
// exploitation is bounded by 1 and the exploration term by a few units.
const unvisitedScore = float32(1e6)

// ucb1 scores a child for selection: mean reward plus the exploration
// bonus c*sqrt(ln(parentVisits)/visits). Inputs to ln and the division are
// guarded to be >= 1, and a non-finite bonus falls back to exploitation
// alone, clamped to >= 0.
func ucb1(totalReward float32, visits, parentVisits uint32, c float32) float32 {
	if visits == 0 {
		return unvisitedScore
	}

	exploitation := totalReward / float32(visits)

	if parentVisits < 1 {
		parentVisits = 1
	}
	exploration := float64(c) * math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
	if math.IsNaN(exploration) || math.IsInf(exploration, 0) {
		if exploitation < 0 {
			return 0
		}
		return exploitation
	}

	return exploitation + float32(exploration)
}
