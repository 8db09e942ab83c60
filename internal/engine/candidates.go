package engine

import (
	"fmt"
	"math"
	"time"

	"TicketForge/internal/model"
)

// Value edge: a leg is a value leg when the model probability beats the
// probability implied by the book odds by at least this many percentage points.
const valueEdgePoints = 5.0

// Candidate is one elementary bet on a single match. Built fresh per
// generation run, never persisted, immutable once built.
type Candidate struct {
	FixtureID  uint64      `json:"fixture_id"`
	MatchLabel string      `json:"match_label"`
	HomeTeam   string      `json:"-"`
	AwayTeam   string      `json:"-"`
	League     string      `json:"league"`
	Kickoff    time.Time   `json:"kickoff"`
	Type       BetType     `json:"bet_type"`
	Label      string      `json:"label"`
	Selection  string      `json:"selection,omitempty"`
	Proba      float64     `json:"proba"`
	Odds       float64     `json:"odds"`
	Confidence float64     `json:"-"`
	IsValue    bool        `json:"is_value"`
	Group      MarketGroup `json:"-"`
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// fairOdds converts a percentage probability into decimal odds with
// two-decimal rounding: round(10000/p)/100.
func fairOdds(proba float64) float64 {
	return math.Round(10000/proba) / 100
}

// resolveOdds prefers quoted book odds over fair odds and flags value legs.
// Book odds at or below 1 are treated as absent.
func resolveOdds(proba float64, book *float64) (odds float64, isValue bool) {
	if book != nil && *book > 1 {
		implied := 100 / *book
		return round2(*book), proba > implied+valueEdgePoints
	}
	return fairOdds(proba), false
}

// GenerateCandidates derives every placeable candidate for one match. Markets
// with a missing or non-positive probability are silently skipped; binary
// markets emit both sides, the complement priced from 100-p.
func GenerateCandidates(p *model.MatchPrediction, o *model.MatchOdds) []Candidate {
	g := candidateGen{pred: p, odds: o}

	// 1X2 and double chance.
	g.add(BetHomeWin, p.ProbHomeWin, g.book(BetHomeWin), fmt.Sprintf("%s wins", p.HomeTeam), "")
	g.add(BetDraw, p.ProbDraw, g.book(BetDraw), "Draw", "")
	g.add(BetAwayWin, p.ProbAwayWin, g.book(BetAwayWin), fmt.Sprintf("%s wins", p.AwayTeam), "")
	g.add(BetHomeOrDraw, p.ProbHomeOrDraw, g.book(BetHomeOrDraw), fmt.Sprintf("%s or draw", p.HomeTeam), "")
	g.add(BetDrawOrAway, p.ProbDrawOrAway, g.book(BetDrawOrAway), fmt.Sprintf("Draw or %s", p.AwayTeam), "")
	g.add(BetNoDraw, p.ProbNoDraw, g.book(BetNoDraw), "No draw", "")

	// BTTS, both sides from the single yes-probability.
	g.add(BetBTTSYes, p.ProbBTTS, g.book(BetBTTSYes), "Both teams score", "")
	g.add(BetBTTSNo, complement(p.ProbBTTS), g.book(BetBTTSNo), "Both teams score: no", "")

	// Goal lines, over and under per line.
	g.add(BetOver05, p.ProbOver05, g.book(BetOver05), "Over 0.5 goals", "")
	g.add(BetOver15, p.ProbOver15, g.book(BetOver15), "Over 1.5 goals", "")
	g.add(BetOver25, p.ProbOver25, g.book(BetOver25), "Over 2.5 goals", "")
	g.add(BetOver35, p.ProbOver35, g.book(BetOver35), "Over 3.5 goals", "")
	g.add(BetUnder05, complement(p.ProbOver05), g.book(BetUnder05), "Under 0.5 goals", "")
	g.add(BetUnder15, complement(p.ProbOver15), g.book(BetUnder15), "Under 1.5 goals", "")
	g.add(BetUnder25, complement(p.ProbOver25), g.book(BetUnder25), "Under 2.5 goals", "")
	g.add(BetUnder35, complement(p.ProbOver35), g.book(BetUnder35), "Under 3.5 goals", "")

	// Single optional scorer and exact-score legs.
	if p.TopScorer != nil && *p.TopScorer != "" {
		g.add(BetTopScorer, p.TopScorerProb, g.book(BetTopScorer), fmt.Sprintf("%s scores", *p.TopScorer), *p.TopScorer)
	}
	if p.LikelyScore != nil && *p.LikelyScore != "" {
		g.add(BetExactScore, p.LikelyScoreProb, g.book(BetExactScore), fmt.Sprintf("Exact score %s", *p.LikelyScore), *p.LikelyScore)
	}

	return g.out
}

type candidateGen struct {
	pred *model.MatchPrediction
	odds *model.MatchOdds
	out  []Candidate
}

func (g *candidateGen) add(t BetType, proba *float64, book *float64, label, selection string) {
	if proba == nil || *proba <= 0 {
		return
	}
	odds, isValue := resolveOdds(*proba, book)
	g.out = append(g.out, Candidate{
		FixtureID:  g.pred.FixtureID,
		MatchLabel: g.pred.Label(),
		HomeTeam:   g.pred.HomeTeam,
		AwayTeam:   g.pred.AwayTeam,
		League:     g.pred.League,
		Kickoff:    g.pred.MatchTime,
		Type:       t,
		Label:      label,
		Selection:  selection,
		Proba:      *proba,
		Odds:       odds,
		Confidence: g.pred.Confidence,
		IsValue:    isValue,
		Group:      t.Group(),
	})
}

// book returns the quoted odds for a bet type, nil when the book has none.
func (g *candidateGen) book(t BetType) *float64 {
	if g.odds == nil {
		return nil
	}
	switch t {
	case BetHomeWin:
		return g.odds.OddsHomeWin
	case BetDraw:
		return g.odds.OddsDraw
	case BetAwayWin:
		return g.odds.OddsAwayWin
	case BetHomeOrDraw:
		return g.odds.OddsHomeOrDraw
	case BetDrawOrAway:
		return g.odds.OddsDrawOrAway
	case BetNoDraw:
		return g.odds.OddsNoDraw
	case BetBTTSYes:
		return g.odds.OddsBTTSYes
	case BetBTTSNo:
		return g.odds.OddsBTTSNo
	case BetOver05:
		return g.odds.OddsOver05
	case BetOver15:
		return g.odds.OddsOver15
	case BetOver25:
		return g.odds.OddsOver25
	case BetOver35:
		return g.odds.OddsOver35
	case BetUnder05:
		return g.odds.OddsUnder05
	case BetUnder15:
		return g.odds.OddsUnder15
	case BetUnder25:
		return g.odds.OddsUnder25
	case BetUnder35:
		return g.odds.OddsUnder35
	case BetTopScorer:
		return g.odds.OddsTopScorer
	case BetExactScore:
		return g.odds.OddsLikelyScore
	}
	return nil
}

// complement maps a binary market probability to its other side.
func complement(p *float64) *float64 {
	if p == nil {
		return nil
	}
	c := 100 - *p
	return &c
}
