package engine

import (
	"math"
	"sort"
	"time"
)

// A combo needs at least this many non-redundant legs to be valid.
const minComboLegs = 2

// Combo is a multi-leg wager on one match: 2+ non-redundant candidates with
// multiplied odds and probability. Confidence is calibrated from the combined
// probability, not averaged from leg confidences.
type Combo struct {
	FixtureID  uint64    `json:"fixture_id"`
	MatchLabel string    `json:"match_label"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	League     string    `json:"league"`
	Kickoff    time.Time `json:"kickoff"`

	Legs       []Candidate `json:"legs"`
	Odds       float64     `json:"combo_odds"`
	Proba      float64     `json:"combo_proba"`
	Confidence float64     `json:"confidence"`
	HasValue   bool        `json:"has_value"`
}

// confidenceTable maps a combined probability to a 0-10 confidence level.
// Buckets are ordered by descending floor; the first bucket whose floor the
// probability reaches wins. Each ticket policy carries its own table because
// the boundaries are deliberately tier-specific.
type confidenceTable []struct {
	Floor float64
	Level float64
}

// Calibration for combos built through the generic builder.
var genericConfidence = confidenceTable{
	{65, 9}, {50, 8}, {40, 7}, {30, 6}, {20, 5}, {12, 4}, {5, 3}, {0, 2},
}

// Bonus added when a combo carries at least one value leg.
const valueConfidenceBonus = 0.5

const maxConfidence = 10

func (t confidenceTable) level(proba float64) float64 {
	for _, b := range t {
		if proba >= b.Floor {
			return b.Level
		}
	}
	return t[len(t)-1].Level
}

// calibrate applies a policy's confidence table plus the optional value bonus.
func calibrate(t confidenceTable, proba float64, valueBonus bool) float64 {
	c := t.level(proba)
	if valueBonus {
		c += valueConfidenceBonus
	}
	return math.Min(c, maxConfidence)
}

// newCombo assembles the multiplied figures for a selected leg list. Legs are
// assumed non-redundant; confidence is left for the caller's calibration.
func newCombo(legs []Candidate) Combo {
	first := legs[0]
	odds := 1.0
	frac := 1.0
	hasValue := false
	for _, l := range legs {
		odds *= l.Odds
		frac *= l.Proba / 100
		hasValue = hasValue || l.IsValue
	}
	return Combo{
		FixtureID:  first.FixtureID,
		MatchLabel: first.MatchLabel,
		HomeTeam:   first.HomeTeam,
		AwayTeam:   first.AwayTeam,
		League:     first.League,
		Kickoff:    first.Kickoff,
		Legs:       legs,
		Odds:       round2(odds),
		Proba:      round2(frac * 100),
		HasValue:   hasValue,
	}
}

// BuildCombo composes a combo from one match's candidate pool.
//
// Groups are attempted in the given order; every required group must yield a
// non-redundant leg with proba >= max(minProba, 1) or the whole combo fails.
// Optional groups with no eligible candidate are skipped. Within a group,
// candidates are ranked by quality score, ties keeping input order. Returns
// nil when fewer than two legs survive.
func BuildCombo(cands []Candidate, groups []MarketGroup, required []MarketGroup, minProba float64) *Combo {
	buckets := make(map[MarketGroup][]Candidate, len(groups))
	for _, c := range cands {
		buckets[c.Group] = append(buckets[c.Group], c)
	}
	for _, b := range buckets {
		sort.SliceStable(b, func(i, j int) bool {
			return qualityScore(b[i]) > qualityScore(b[j])
		})
	}

	var legs []Candidate
	covered := make(map[MarketGroup]bool, len(groups))

	requiredFloor := math.Max(minProba, 1)
	for _, g := range required {
		leg, ok := pickLeg(buckets[g], legs, requiredFloor)
		if !ok {
			return nil
		}
		legs = append(legs, leg)
		covered[g] = true
	}

	for _, g := range groups {
		if covered[g] {
			continue
		}
		leg, ok := pickLeg(buckets[g], legs, minProba)
		if !ok {
			continue
		}
		legs = append(legs, leg)
		covered[g] = true
	}

	if len(legs) < minComboLegs {
		return nil
	}

	combo := newCombo(legs)
	combo.Confidence = calibrate(genericConfidence, combo.Proba, combo.HasValue)
	return &combo
}

// pickLeg returns the best-ranked candidate meeting the floor that does not
// overlap an already selected leg.
func pickLeg(bucket []Candidate, selected []Candidate, floor float64) (Candidate, bool) {
	for _, c := range bucket {
		if c.Proba < floor {
			continue
		}
		if conflicts(selected, c) {
			continue
		}
		return c, true
	}
	return Candidate{}, false
}
