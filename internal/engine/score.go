package engine

// Ranking bonus granted to value legs when candidates compete within a group.
const valueScoreBonus = 10.0

// qualityScore ranks candidates inside one market group; higher is better.
// Ties keep original order (callers sort stably).
func qualityScore(c Candidate) float64 {
	if c.IsValue {
		return c.Proba + valueScoreBonus
	}
	return c.Proba
}

// overlaps lists bet-type pairs that double-count the same underlying event.
// The rule set is intentionally narrow: only nested goal-count markets are
// declared dependent. Double chance vs straight win is not checked.
var overlaps = map[BetType][]BetType{
	BetBTTSYes: {BetOver05, BetOver15},
	BetOver25:  {BetOver05, BetOver15},
	BetOver35:  {BetOver05, BetOver15, BetOver25},
}

// redundant reports whether two bet types statistically overlap. Symmetric.
func redundant(a, b BetType) bool {
	for _, t := range overlaps[a] {
		if t == b {
			return true
		}
	}
	for _, t := range overlaps[b] {
		if t == a {
			return true
		}
	}
	return false
}

// conflicts reports whether adding c to legs would double-count any selected leg.
func conflicts(legs []Candidate, c Candidate) bool {
	for _, l := range legs {
		if redundant(l.Type, c.Type) {
			return true
		}
	}
	return false
}
