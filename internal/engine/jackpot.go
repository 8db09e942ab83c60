package engine

import "time"

// JACKPOT policy: per match a straight win plus the model's scorer prediction.
// Matches without a scorer prediction are excluded entirely.
var jackpotPolicy = greedyPolicy{
	minMatches: 3,
	maxMatches: 6,
	oddsTarget: 30,
}

var jackpotConfidence = confidenceTable{
	{20, 9}, {14, 8}, {9, 7}, {6, 6}, {4, 5}, {2, 4}, {0, 3},
}

// buildJackpotTicket assembles the high-variance ticket.
func buildJackpotTicket(date time.Time, pools []matchPool) Ticket {
	var combos []Combo
	for _, m := range pools {
		win, ok := m.higherOf(BetHomeWin, BetAwayWin)
		if !ok {
			continue
		}
		scorer, ok := m.find(BetTopScorer)
		if !ok {
			continue
		}

		combo := newCombo([]Candidate{win, scorer})
		combo.Confidence = calibrate(jackpotConfidence, combo.Proba, false)
		combos = append(combos, combo)
	}

	return finalizeTicket(TicketJackpot, date, greedySelect(combos, jackpotPolicy))
}
