package engine

import "time"

// FUN policy: per match a straight win, a non-obvious goal line and a BTTS
// side, all three mandatory. Matches are ranked by ticket score and greedily
// accumulated until the combined odds reach the target.
var funPolicy = greedyPolicy{
	minMatches: 3,
	maxMatches: 5,
	oddsTarget: 10,
}

var funConfidence = confidenceTable{
	{40, 9}, {30, 8}, {22, 7}, {15, 6}, {10, 5}, {5, 4}, {0, 3},
}

// buildFunTicket assembles the balanced ticket.
func buildFunTicket(date time.Time, pools []matchPool) Ticket {
	var combos []Combo
	for _, m := range pools {
		win, ok := m.higherOf(BetHomeWin, BetAwayWin)
		if !ok {
			continue
		}
		// The 0.5/1.5 lines are excluded here: too obvious for this tier.
		line, ok := m.higherOf(BetOver25, BetUnder25, BetOver35, BetUnder35)
		if !ok {
			continue
		}
		btts, ok := m.higherOf(BetBTTSYes, BetBTTSNo)
		if !ok {
			continue
		}

		combo := newCombo([]Candidate{win, line, btts})
		combo.Confidence = calibrate(funConfidence, combo.Proba, win.IsValue)
		combos = append(combos, combo)
	}

	return finalizeTicket(TicketFun, date, greedySelect(combos, funPolicy))
}
