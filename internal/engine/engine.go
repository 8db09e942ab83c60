package engine

import (
	"math"
	"time"

	"TicketForge/internal/model"
)

// TicketSet is one generation run's output: the three tickets plus the date
// they were built for. Rerunning on identical inputs yields an identical set.
type TicketSet struct {
	Date    time.Time `json:"date"`
	Safe    Ticket    `json:"safe"`
	Fun     Ticket    `json:"fun"`
	Jackpot Ticket    `json:"jackpot"`
}

// BuildTicketSet runs the whole engine for one day: candidates per match,
// then the three independent ticket policies. Odds are keyed by fixture id;
// fixtures without an odds row fall back to fair odds throughout. The input
// slice order is the tie-break order, so callers must pass a stable ordering.
func BuildTicketSet(date time.Time, preds []*model.MatchPrediction, odds map[uint64]*model.MatchOdds) *TicketSet {
	pools := make([]matchPool, 0, len(preds))
	for _, p := range preds {
		cands := GenerateCandidates(p, odds[p.FixtureID])
		if len(cands) == 0 {
			continue
		}
		pools = append(pools, newMatchPool(p, cands))
	}

	return &TicketSet{
		Date:    date,
		Safe:    buildSafeTicket(date, pools),
		Fun:     buildFunTicket(date, pools),
		Jackpot: buildJackpotTicket(date, pools),
	}
}

// Tickets returns the three tickets in fixed order.
func (ts *TicketSet) Tickets() []*Ticket {
	return []*Ticket{&ts.Safe, &ts.Fun, &ts.Jackpot}
}

// Flatten explodes the set into one persistable pick per leg per ticket.
// The won flag starts unset; the grading job settles it later.
func (ts *TicketSet) Flatten() []*model.Pick {
	day := ts.Date.Truncate(24 * time.Hour)
	var picks []*model.Pick
	for _, t := range ts.Tickets() {
		for _, combo := range t.Combos {
			for _, leg := range combo.Legs {
				picks = append(picks, &model.Pick{
					TicketType:    string(t.Type),
					TicketDate:    day,
					FixtureID:     leg.FixtureID,
					HomeTeam:      combo.HomeTeam,
					AwayTeam:      combo.AwayTeam,
					MatchTime:     combo.Kickoff,
					BetType:       string(leg.Type),
					Selection:     leg.Selection,
					BetLabel:      leg.Label,
					Confidence:    clampConfidence(combo.Confidence),
					EstimatedOdds: leg.Odds,
				})
			}
		}
	}
	return picks
}

func clampConfidence(c float64) int {
	n := int(math.Round(c))
	if n < 0 {
		return 0
	}
	if n > maxConfidence {
		return maxConfidence
	}
	return n
}
