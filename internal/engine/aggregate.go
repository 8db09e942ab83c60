package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// Star rating buckets over the average per-combo confidence.
var starBuckets = []struct {
	Floor float64
	Stars int
}{
	{8, 5}, {7, 4}, {6, 3}, {5, 2},
}

const minStars = 1

// Informational stake amounts shown on every ticket.
var payoutStakes = []int64{10, 20, 50}

// Payout is one row of the informational payout table: stake * combined odds.
type Payout struct {
	Stake  decimal.Decimal `json:"stake"`
	Return decimal.Decimal `json:"return"`
}

// finalizeTicket multiplies the per-combo figures into whole-ticket odds and
// probability and derives the star rating. Zero combos is a valid terminal
// state flagged as not_enough_data.
func finalizeTicket(typ TicketType, date time.Time, combos []Combo) Ticket {
	t := Ticket{Type: typ, Date: date, Combos: combos, Status: StatusOK}
	if len(combos) == 0 {
		t.Status = StatusNotEnoughData
		return t
	}

	odds := 1.0
	frac := 1.0
	confSum := 0.0
	for _, c := range combos {
		odds *= c.Odds
		frac *= c.Proba / 100
		confSum += c.Confidence
	}
	t.CombinedOdds = round2(odds)
	t.CombinedProba = round2(frac * 100)
	t.Stars = starRating(confSum / float64(len(combos)))
	return t
}

func starRating(avgConfidence float64) int {
	for _, b := range starBuckets {
		if avgConfidence >= b.Floor {
			return b.Stars
		}
	}
	return minStars
}

// LegCount returns the number of legs across all combos.
func (t *Ticket) LegCount() int {
	n := 0
	for _, c := range t.Combos {
		n += len(c.Legs)
	}
	return n
}

// Payouts renders the informational payout table at the fixed stakes.
func (t *Ticket) Payouts() []Payout {
	if len(t.Combos) == 0 {
		return nil
	}
	odds := decimal.NewFromFloat(t.CombinedOdds)
	out := make([]Payout, 0, len(payoutStakes))
	for _, s := range payoutStakes {
		stake := decimal.NewFromInt(s)
		out = append(out, Payout{
			Stake:  stake,
			Return: odds.Mul(stake).Round(2),
		})
	}
	return out
}
