package engine

import (
	"sort"
	"time"

	"TicketForge/internal/model"
)

// TicketType identifies one of the three risk tiers.
type TicketType string

const (
	TicketSafe    TicketType = model.TicketSafe
	TicketFun     TicketType = model.TicketFun
	TicketJackpot TicketType = model.TicketJackpot
)

// Ticket statuses. An empty ticket is a valid terminal state, not an error.
const (
	StatusOK            = "ok"
	StatusNotEnoughData = "not_enough_data"
)

// Ticket is an ordered list of one-match combos multiplied into a single
// overall wager.
type Ticket struct {
	Type          TicketType `json:"type"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	Combos        []Combo    `json:"combos"`
	CombinedOdds  float64    `json:"combined_odds"`
	CombinedProba float64    `json:"combined_proba"`
	Stars         int        `json:"stars"`
}

// matchPool is one match's generated candidates with a by-type index. The
// ticket policies hand-pick legs by fixed market roles, so redundancy is
// avoided by construction rather than checked at runtime.
type matchPool struct {
	pred   *model.MatchPrediction
	byType map[BetType]Candidate
}

func newMatchPool(pred *model.MatchPrediction, cands []Candidate) matchPool {
	idx := make(map[BetType]Candidate, len(cands))
	for _, c := range cands {
		if _, ok := idx[c.Type]; !ok {
			idx[c.Type] = c
		}
	}
	return matchPool{pred: pred, byType: idx}
}

// find returns the candidate for a bet type, false when the market was skipped.
func (m matchPool) find(t BetType) (Candidate, bool) {
	c, ok := m.byType[t]
	return c, ok
}

// higherOf picks the higher-probability candidate among the given types.
// Input-order ties keep the earlier type, for determinism.
func (m matchPool) higherOf(types ...BetType) (Candidate, bool) {
	var best Candidate
	found := false
	for _, t := range types {
		c, ok := m.byType[t]
		if !ok {
			continue
		}
		if !found || c.Proba > best.Proba {
			best = c
			found = true
		}
	}
	return best, found
}

// Ticket score weights used to rank matches before greedy accumulation.
const (
	scoreProbaWeight      = 10.0
	scoreConfidenceWeight = 3.0
	scoreValueBonus       = 15.0
	scoreLegWeight        = 2.0
)

// ticketScore ranks a combo for the FUN and JACKPOT greedy selection.
func ticketScore(c Combo) float64 {
	s := c.Proba*scoreProbaWeight + c.Confidence*scoreConfidenceWeight + float64(len(c.Legs))*scoreLegWeight
	if c.HasValue {
		s += scoreValueBonus
	}
	return s
}

// greedyPolicy bounds the cross-match accumulation: take matches in rank order
// until the cumulative odds reach the target, within the match window.
type greedyPolicy struct {
	minMatches int
	maxMatches int
	oddsTarget float64
}

// greedySelect accumulates pre-ranked combos. It is a bounded heuristic, not
// an optimizer: once at least minMatches are in and the cumulative odds reach
// the target it stops; it never takes more than maxMatches.
func greedySelect(combos []Combo, pol greedyPolicy) []Combo {
	sort.SliceStable(combos, func(i, j int) bool {
		return ticketScore(combos[i]) > ticketScore(combos[j])
	})

	var picked []Combo
	cumOdds := 1.0
	for _, c := range combos {
		picked = append(picked, c)
		cumOdds *= c.Odds
		if len(picked) >= pol.minMatches && cumOdds >= pol.oddsTarget {
			break
		}
		if len(picked) >= pol.maxMatches {
			break
		}
	}
	return picked
}
