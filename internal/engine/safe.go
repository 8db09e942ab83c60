package engine

import (
	"sort"
	"time"
)

// SAFE policy: per match, the better double-chance side plus the better
// available low goal line, ranked by combined probability across matches,
// top 3 kept.
const safeMaxCombos = 3

var safeConfidence = confidenceTable{
	{85, 9}, {75, 8}, {65, 7}, {55, 6}, {45, 5}, {0, 4},
}

// buildSafeTicket assembles the conservative ticket.
func buildSafeTicket(date time.Time, pools []matchPool) Ticket {
	var combos []Combo
	for _, m := range pools {
		dc, ok := m.higherOf(BetHomeOrDraw, BetDrawOrAway)
		if !ok {
			continue
		}
		line, ok := m.find(BetOver05)
		if !ok {
			line, ok = m.find(BetOver15)
		}
		if !ok {
			continue
		}

		combo := newCombo([]Candidate{dc, line})
		combo.Confidence = calibrate(safeConfidence, combo.Proba, combo.HasValue)
		combos = append(combos, combo)
	}

	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i].Proba > combos[j].Proba
	})
	if len(combos) > safeMaxCombos {
		combos = combos[:safeMaxCombos]
	}

	return finalizeTicket(TicketSafe, date, combos)
}
