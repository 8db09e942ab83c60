package engine

import (
	"testing"
	"time"

	"TicketForge/internal/model"
)

func fl(v float64) *float64 { return &v }

func str(s string) *string { return &s }

var testKickoff = time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

func testPrediction(fixtureID uint64) *model.MatchPrediction {
	return &model.MatchPrediction{
		FixtureID:  fixtureID,
		HomeTeam:   "Arsenal",
		AwayTeam:   "Chelsea",
		League:     "Premier League",
		MatchTime:  testKickoff,
		Confidence: 7,
	}
}

func TestFairOdds(t *testing.T) {
	tests := []struct {
		proba float64
		want  float64
	}{
		{50, 2.00},
		{90, 1.11},
		{95, 1.05},
		{20, 5.00},
		{33, 3.03},
	}
	for _, tt := range tests {
		if got := fairOdds(tt.proba); got != tt.want {
			t.Errorf("fairOdds(%v) = %v, want %v", tt.proba, got, tt.want)
		}
	}
}

func TestResolveOdds(t *testing.T) {
	tests := []struct {
		name      string
		proba     float64
		book      *float64
		wantOdds  float64
		wantValue bool
	}{
		{"no book odds falls back to fair", 50, nil, 2.00, false},
		{"book odds preferred", 50, fl(2.30), 2.30, true}, // implied 43.5, edge 6.5
		{"edge below margin is not value", 50, fl(2.10), 2.10, false},
		{"book odds at 1 treated as absent", 50, fl(1.0), 2.00, false},
		{"exact 5 point edge is not value", 50, fl(100.0 / 45.0), 2.22, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			odds, isValue := resolveOdds(tt.proba, tt.book)
			if odds != tt.wantOdds {
				t.Errorf("odds = %v, want %v", odds, tt.wantOdds)
			}
			if isValue != tt.wantValue {
				t.Errorf("isValue = %v, want %v", isValue, tt.wantValue)
			}
		})
	}
}

func TestGenerateCandidates_SkipsMissingMarkets(t *testing.T) {
	p := testPrediction(1)
	p.ProbHomeWin = fl(70)
	p.ProbDraw = fl(0) // zero proba never emitted

	cands := GenerateCandidates(p, nil)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	c := cands[0]
	if c.Type != BetHomeWin {
		t.Errorf("type = %s, want %s", c.Type, BetHomeWin)
	}
	if c.Group != GroupIssue {
		t.Errorf("group = %s, want %s", c.Group, GroupIssue)
	}
	if c.Odds != 1.43 {
		t.Errorf("odds = %v, want 1.43", c.Odds)
	}
}

func TestGenerateCandidates_BinaryMarketsEmitBothSides(t *testing.T) {
	p := testPrediction(1)
	p.ProbBTTS = fl(60)
	p.ProbOver25 = fl(55)

	cands := GenerateCandidates(p, nil)
	byType := map[BetType]Candidate{}
	for _, c := range cands {
		byType[c.Type] = c
	}

	yes, ok := byType[BetBTTSYes]
	if !ok || yes.Proba != 60 {
		t.Fatalf("btts_yes missing or wrong proba: %+v", yes)
	}
	no, ok := byType[BetBTTSNo]
	if !ok || no.Proba != 40 {
		t.Fatalf("btts_no missing or wrong proba: %+v", no)
	}
	under, ok := byType[BetUnder25]
	if !ok || under.Proba != 45 {
		t.Fatalf("under_25 missing or wrong proba: %+v", under)
	}
}

func TestGenerateCandidates_ScorerAndExactLegs(t *testing.T) {
	p := testPrediction(1)
	p.TopScorer = str("Saka")
	p.TopScorerProb = fl(42)
	p.LikelyScore = str("2-1")
	p.LikelyScoreProb = fl(11)

	cands := GenerateCandidates(p, nil)
	byType := map[BetType]Candidate{}
	for _, c := range cands {
		byType[c.Type] = c
	}

	scorer, ok := byType[BetTopScorer]
	if !ok {
		t.Fatal("scorer candidate missing")
	}
	if scorer.Selection != "Saka" || scorer.Group != GroupScorer {
		t.Errorf("scorer candidate wrong: %+v", scorer)
	}
	exact, ok := byType[BetExactScore]
	if !ok {
		t.Fatal("exact score candidate missing")
	}
	if exact.Selection != "2-1" || exact.Group != GroupExact {
		t.Errorf("exact candidate wrong: %+v", exact)
	}
}

func TestGenerateCandidates_BookOddsPreferred(t *testing.T) {
	p := testPrediction(1)
	p.ProbHomeWin = fl(60)
	o := &model.MatchOdds{FixtureID: 1, OddsHomeWin: fl(2.05)}

	cands := GenerateCandidates(p, o)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	c := cands[0]
	if c.Odds != 2.05 {
		t.Errorf("odds = %v, want book odds 2.05", c.Odds)
	}
	// implied 48.8, model 60: 11.2 point edge
	if !c.IsValue {
		t.Error("expected value leg")
	}
}
