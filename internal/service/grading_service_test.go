package service

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"TicketForge/internal/model"
)

func result(home, away int, scorers string) *model.MatchResult {
	return &model.MatchResult{
		FixtureID:  1,
		HomeGoals:  home,
		AwayGoals:  away,
		Scorers:    datatypes.JSON(scorers),
		FinishedAt: time.Date(2026, 8, 28, 22, 0, 0, 0, time.UTC),
	}
}

func TestGradePick(t *testing.T) {
	tests := []struct {
		name      string
		betType   string
		selection string
		res       *model.MatchResult
		wantWon   bool
		gradable  bool
	}{
		{"home win hits", "home_win", "", result(2, 1, ""), true, true},
		{"home win misses on draw", "home_win", "", result(1, 1, ""), false, true},
		{"draw hits", "draw", "", result(0, 0, ""), true, true},
		{"away win hits", "away_win", "", result(0, 3, ""), true, true},
		{"home or draw covers draw", "dc_home_draw", "", result(1, 1, ""), true, true},
		{"home or draw misses away win", "dc_home_draw", "", result(0, 1, ""), false, true},
		{"draw or away covers away", "dc_draw_away", "", result(0, 2, ""), true, true},
		{"no draw misses on draw", "dc_no_draw", "", result(2, 2, ""), false, true},
		{"btts yes hits", "btts_yes", "", result(2, 1, ""), true, true},
		{"btts yes misses clean sheet", "btts_yes", "", result(2, 0, ""), false, true},
		{"btts no hits clean sheet", "btts_no", "", result(2, 0, ""), true, true},
		{"over 0.5 hits single goal", "over_05", "", result(1, 0, ""), true, true},
		{"over 0.5 misses goalless", "over_05", "", result(0, 0, ""), false, true},
		{"over 2.5 needs three goals", "over_25", "", result(2, 0, ""), false, true},
		{"over 2.5 hits", "over_25", "", result(2, 1, ""), true, true},
		{"under 3.5 hits on three", "under_35", "", result(2, 1, ""), true, true},
		{"under 2.5 misses on three", "under_25", "", result(1, 2, ""), false, true},
		{"scorer listed", "top_scorer", "Haaland", result(2, 1, `["Haaland","Foden"]`), true, true},
		{"scorer case-insensitive", "top_scorer", "haaland", result(2, 1, `["Haaland"]`), true, true},
		{"scorer not listed", "top_scorer", "Kane", result(2, 1, `["Haaland"]`), false, true},
		{"scorer with no result list", "top_scorer", "Kane", result(2, 1, ""), false, true},
		{"exact score hits", "exact_score", "2-1", result(2, 1, ""), true, true},
		{"exact score misses", "exact_score", "2-1", result(1, 2, ""), false, true},
		{"exact score without selection ungradable", "exact_score", "", result(1, 0, ""), false, false},
		{"unknown bet type ungradable", "first_corner", "", result(1, 0, ""), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick := &model.Pick{BetType: tt.betType, Selection: tt.selection}
			won, gradable := gradePick(pick, tt.res)
			if gradable != tt.gradable {
				t.Fatalf("gradable = %v, want %v", gradable, tt.gradable)
			}
			if won != tt.wantWon {
				t.Errorf("won = %v, want %v", won, tt.wantWon)
			}
		})
	}
}
