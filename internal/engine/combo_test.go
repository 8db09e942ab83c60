package engine

import (
	"math"
	"testing"
)

func cand(t BetType, proba float64, isValue bool) Candidate {
	return Candidate{
		FixtureID:  1,
		MatchLabel: "Arsenal - Chelsea",
		HomeTeam:   "Arsenal",
		AwayTeam:   "Chelsea",
		Kickoff:    testKickoff,
		Type:       t,
		Label:      string(t),
		Proba:      proba,
		Odds:       fairOdds(proba),
		IsValue:    isValue,
		Group:      t.Group(),
	}
}

func TestBuildCombo_ProductInvariants(t *testing.T) {
	cands := []Candidate{
		cand(BetHomeWin, 70, false),
		cand(BetOver15, 80, false),
	}
	combo := BuildCombo(cands, []MarketGroup{GroupIssue, GroupGoals}, nil, 0)
	if combo == nil {
		t.Fatal("expected combo")
	}

	wantProba := round2(0.70 * 0.80 * 100)
	if combo.Proba != wantProba {
		t.Errorf("comboProba = %v, want %v", combo.Proba, wantProba)
	}
	wantOdds := round2(fairOdds(70) * fairOdds(80))
	if combo.Odds != wantOdds {
		t.Errorf("comboOdds = %v, want %v", combo.Odds, wantOdds)
	}
	// product of fractions: combined proba never exceeds the weakest leg
	if combo.Proba > 70 {
		t.Errorf("comboProba %v should not exceed weakest leg", combo.Proba)
	}
}

func TestBuildCombo_RedundancyInvariant(t *testing.T) {
	// over_05 ranks highest in the goals group, btts_yes overlaps it
	cands := []Candidate{
		cand(BetOver05, 95, false),
		cand(BetBTTSYes, 80, false),
		cand(BetHomeWin, 70, false),
	}
	combo := BuildCombo(cands, []MarketGroup{GroupGoals, GroupBTTS, GroupIssue}, nil, 0)
	if combo == nil {
		t.Fatal("expected combo")
	}
	hasOver05, hasBTTSYes := false, false
	for _, l := range combo.Legs {
		switch l.Type {
		case BetOver05:
			hasOver05 = true
		case BetBTTSYes:
			hasBTTSYes = true
		}
	}
	if hasOver05 && hasBTTSYes {
		t.Error("combo contains overlapping over_05 and btts_yes legs")
	}
	if !hasOver05 {
		t.Error("expected the higher-ranked over_05 leg to be kept")
	}
}

func TestBuildCombo_RequiredGroupAllOrNothing(t *testing.T) {
	cands := []Candidate{
		cand(BetHomeWin, 70, false),
		cand(BetOver15, 80, false),
	}
	// scorer group is required but has no candidate
	combo := BuildCombo(cands, []MarketGroup{GroupIssue, GroupGoals, GroupScorer}, []MarketGroup{GroupScorer}, 0)
	if combo != nil {
		t.Fatalf("expected nil combo when a required group is empty, got %+v", combo)
	}
}

func TestBuildCombo_RequiredFloorIsAtLeastOne(t *testing.T) {
	cands := []Candidate{
		cand(BetHomeWin, 0.5, false), // below the implicit floor of 1
		cand(BetOver15, 80, false),
	}
	combo := BuildCombo(cands, []MarketGroup{GroupIssue, GroupGoals}, []MarketGroup{GroupIssue}, 0)
	if combo != nil {
		t.Fatalf("required leg below floor 1 must fail the combo, got %+v", combo)
	}
}

func TestBuildCombo_TooFewLegsFails(t *testing.T) {
	cands := []Candidate{cand(BetHomeWin, 70, false)}
	if combo := BuildCombo(cands, []MarketGroup{GroupIssue}, nil, 0); combo != nil {
		t.Fatalf("single-leg combo must fail, got %+v", combo)
	}
}

func TestBuildCombo_MinProbaSkipsOptionalGroups(t *testing.T) {
	cands := []Candidate{
		cand(BetHomeWin, 70, false),
		cand(BetOver15, 80, false),
		cand(BetBTTSYes, 20, false), // below floor, group simply skipped
	}
	combo := BuildCombo(cands, []MarketGroup{GroupIssue, GroupGoals, GroupBTTS}, nil, 50)
	if combo == nil {
		t.Fatal("expected combo")
	}
	if len(combo.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(combo.Legs))
	}
}

func TestBuildCombo_ValueLegPrefersHigherScore(t *testing.T) {
	// value bonus of 10 lets a 65% value leg outrank a 70% plain leg
	cands := []Candidate{
		cand(BetHomeWin, 70, false),
		cand(BetHomeOrDraw, 65, true),
		cand(BetOver15, 80, false),
	}
	combo := BuildCombo(cands, []MarketGroup{GroupIssue, GroupGoals}, nil, 0)
	if combo == nil {
		t.Fatal("expected combo")
	}
	if combo.Legs[0].Type != BetHomeOrDraw {
		t.Errorf("issue leg = %s, want value leg dc_home_draw", combo.Legs[0].Type)
	}
	if !combo.HasValue {
		t.Error("combo should carry the value flag")
	}
}

func TestGenericConfidenceCalibration(t *testing.T) {
	tests := []struct {
		proba float64
		value bool
		want  float64
	}{
		{70, false, 9},
		{65, false, 9},
		{50, false, 8},
		{45, false, 7},
		{30, false, 6},
		{25, false, 5},
		{12, false, 4},
		{6, false, 3},
		{1, false, 2},
		{70, true, 9.5},
		{1, true, 2.5},
	}
	for _, tt := range tests {
		if got := calibrate(genericConfidence, tt.proba, tt.value); got != tt.want {
			t.Errorf("calibrate(%v, value=%v) = %v, want %v", tt.proba, tt.value, got, tt.want)
		}
	}
}

func TestCalibrateClampsAtTen(t *testing.T) {
	high := confidenceTable{{0, 10}}
	if got := calibrate(high, 50, true); got != maxConfidence {
		t.Errorf("calibrate = %v, want clamp at %v", got, maxConfidence)
	}
}

func TestRedundantIsSymmetric(t *testing.T) {
	pairs := [][2]BetType{
		{BetBTTSYes, BetOver05},
		{BetBTTSYes, BetOver15},
		{BetOver25, BetOver05},
		{BetOver25, BetOver15},
		{BetOver35, BetOver05},
		{BetOver35, BetOver15},
		{BetOver35, BetOver25},
	}
	for _, p := range pairs {
		if !redundant(p[0], p[1]) || !redundant(p[1], p[0]) {
			t.Errorf("redundant(%s, %s) should hold both ways", p[0], p[1])
		}
	}
	independent := [][2]BetType{
		{BetHomeWin, BetHomeOrDraw}, // intentionally not checked
		{BetBTTSYes, BetOver25},
		{BetOver05, BetOver15},
		{BetUnder25, BetOver05},
	}
	for _, p := range independent {
		if redundant(p[0], p[1]) {
			t.Errorf("redundant(%s, %s) should be false", p[0], p[1])
		}
	}
}

func TestComboProbaToleranceProperty(t *testing.T) {
	legs := []Candidate{
		cand(BetHomeWin, 63.3, false),
		cand(BetOver15, 77.7, false),
		cand(BetBTTSNo, 41.2, false),
	}
	combo := newCombo(legs)
	product := 1.0
	for _, l := range legs {
		product *= l.Proba / 100
	}
	if math.Abs(combo.Proba-product*100) > 0.005 {
		t.Errorf("comboProba %v deviates from product %v", combo.Proba, product*100)
	}
}
