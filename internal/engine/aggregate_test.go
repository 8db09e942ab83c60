package engine

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFinalizeTicket_CombinedFigures(t *testing.T) {
	combos := []Combo{
		newCombo([]Candidate{cand(BetHomeOrDraw, 90, false), cand(BetOver05, 95, false)}),
		newCombo([]Candidate{cand(BetDrawOrAway, 80, false), cand(BetOver15, 85, false)}),
	}
	combos[0].Confidence = 9
	combos[1].Confidence = 7

	ticket := finalizeTicket(TicketSafe, testDate, combos)

	wantOdds := round2(combos[0].Odds * combos[1].Odds)
	if ticket.CombinedOdds != wantOdds {
		t.Errorf("combinedOdds = %v, want %v", ticket.CombinedOdds, wantOdds)
	}
	wantProba := round2(combos[0].Proba / 100 * combos[1].Proba / 100 * 100)
	if math.Abs(ticket.CombinedProba-wantProba) > 0.01 {
		t.Errorf("combinedProba = %v, want %v", ticket.CombinedProba, wantProba)
	}
	// average confidence 8 -> 5 stars
	if ticket.Stars != 5 {
		t.Errorf("stars = %d, want 5", ticket.Stars)
	}
	if ticket.Status != StatusOK {
		t.Errorf("status = %s, want %s", ticket.Status, StatusOK)
	}
}

func TestFinalizeTicket_EmptyIsValidTerminalState(t *testing.T) {
	ticket := finalizeTicket(TicketJackpot, testDate, nil)
	if ticket.Status != StatusNotEnoughData {
		t.Errorf("status = %s, want %s", ticket.Status, StatusNotEnoughData)
	}
	if ticket.CombinedOdds != 0 || ticket.CombinedProba != 0 || ticket.Stars != 0 {
		t.Errorf("empty ticket should have zero figures: %+v", ticket)
	}
	if ticket.Payouts() != nil {
		t.Error("empty ticket has no payout table")
	}
}

func TestStarRating(t *testing.T) {
	tests := []struct {
		avg  float64
		want int
	}{
		{9, 5}, {8, 5}, {7.5, 4}, {7, 4}, {6, 3}, {5, 2}, {4.9, 1}, {0, 1},
	}
	for _, tt := range tests {
		if got := starRating(tt.avg); got != tt.want {
			t.Errorf("starRating(%v) = %d, want %d", tt.avg, got, tt.want)
		}
	}
}

func TestPayouts(t *testing.T) {
	combos := []Combo{
		newCombo([]Candidate{cand(BetHomeWin, 50, false), cand(BetOver15, 50, false)}),
	}
	ticket := finalizeTicket(TicketFun, testDate, combos)
	// combined odds 4.00 at stakes 10/20/50
	payouts := ticket.Payouts()
	if len(payouts) != 3 {
		t.Fatalf("expected 3 payout rows, got %d", len(payouts))
	}
	wants := []decimal.Decimal{
		decimal.NewFromInt(40),
		decimal.NewFromInt(80),
		decimal.NewFromInt(200),
	}
	for i, w := range wants {
		if !payouts[i].Return.Equal(w) {
			t.Errorf("payout[%d] = %s, want %s", i, payouts[i].Return, w)
		}
	}
}
