package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// MatchPrediction is one row of upstream model output: per-market probabilities
// for a single fixture. Probabilities are percentages in (0,100]; a nil pointer
// means the model produced nothing for that market. Probabilities of the same
// market family are independent estimates and need not sum to 100.
type MatchPrediction struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	FixtureID uint64    `gorm:"column:fixture_id;type:bigint;not null;index:idx_prediction_fixture"`
	HomeTeam  string    `gorm:"column:home_team;type:varchar(128);not null"`
	AwayTeam  string    `gorm:"column:away_team;type:varchar(128);not null"`
	League    string    `gorm:"column:league;type:varchar(128)"`
	MatchTime time.Time `gorm:"column:match_time;type:timestamp;not null;index:idx_prediction_time"`

	ProbHomeWin *float64 `gorm:"column:prob_home_win;type:numeric(6,2)"`
	ProbDraw    *float64 `gorm:"column:prob_draw;type:numeric(6,2)"`
	ProbAwayWin *float64 `gorm:"column:prob_away_win;type:numeric(6,2)"`

	ProbHomeOrDraw *float64 `gorm:"column:prob_home_or_draw;type:numeric(6,2)"`
	ProbDrawOrAway *float64 `gorm:"column:prob_draw_or_away;type:numeric(6,2)"`
	ProbNoDraw     *float64 `gorm:"column:prob_no_draw;type:numeric(6,2)"`

	ProbBTTS *float64 `gorm:"column:prob_btts;type:numeric(6,2)"`

	ProbOver05 *float64 `gorm:"column:prob_over_05;type:numeric(6,2)"`
	ProbOver15 *float64 `gorm:"column:prob_over_15;type:numeric(6,2)"`
	ProbOver25 *float64 `gorm:"column:prob_over_25;type:numeric(6,2)"`
	ProbOver35 *float64 `gorm:"column:prob_over_35;type:numeric(6,2)"`

	TopScorer       *string  `gorm:"column:top_scorer;type:varchar(128)"`
	TopScorerProb   *float64 `gorm:"column:top_scorer_prob;type:numeric(6,2)"`
	LikelyScore     *string  `gorm:"column:likely_score;type:varchar(16)"`
	LikelyScoreProb *float64 `gorm:"column:likely_score_prob;type:numeric(6,2)"`

	// Source confidence reported by the model, 0-10.
	Confidence float64 `gorm:"column:confidence;type:numeric(4,1);default:0"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:now()"`
}

func (MatchPrediction) TableName() string { return "match_predictions" }

// Label renders the fixture as "Home - Away".
func (p *MatchPrediction) Label() string {
	return fmt.Sprintf("%s - %s", p.HomeTeam, p.AwayTeam)
}

// MatchOdds holds decimal bookmaker odds for a fixture's markets. All odds are
// strictly greater than 1 when present; nil means the book does not quote the
// market and the engine falls back to fair odds.
type MatchOdds struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	FixtureID uint64 `gorm:"column:fixture_id;type:bigint;not null;uniqueIndex:uk_odds_fixture"`

	OddsHomeWin *float64 `gorm:"column:odds_home_win;type:numeric(8,2)"`
	OddsDraw    *float64 `gorm:"column:odds_draw;type:numeric(8,2)"`
	OddsAwayWin *float64 `gorm:"column:odds_away_win;type:numeric(8,2)"`

	OddsHomeOrDraw *float64 `gorm:"column:odds_home_or_draw;type:numeric(8,2)"`
	OddsDrawOrAway *float64 `gorm:"column:odds_draw_or_away;type:numeric(8,2)"`
	OddsNoDraw     *float64 `gorm:"column:odds_no_draw;type:numeric(8,2)"`

	OddsBTTSYes *float64 `gorm:"column:odds_btts_yes;type:numeric(8,2)"`
	OddsBTTSNo  *float64 `gorm:"column:odds_btts_no;type:numeric(8,2)"`

	OddsOver05  *float64 `gorm:"column:odds_over_05;type:numeric(8,2)"`
	OddsOver15  *float64 `gorm:"column:odds_over_15;type:numeric(8,2)"`
	OddsOver25  *float64 `gorm:"column:odds_over_25;type:numeric(8,2)"`
	OddsOver35  *float64 `gorm:"column:odds_over_35;type:numeric(8,2)"`
	OddsUnder05 *float64 `gorm:"column:odds_under_05;type:numeric(8,2)"`
	OddsUnder15 *float64 `gorm:"column:odds_under_15;type:numeric(8,2)"`
	OddsUnder25 *float64 `gorm:"column:odds_under_25;type:numeric(8,2)"`
	OddsUnder35 *float64 `gorm:"column:odds_under_35;type:numeric(8,2)"`

	OddsTopScorer   *float64 `gorm:"column:odds_top_scorer;type:numeric(8,2)"`
	OddsLikelyScore *float64 `gorm:"column:odds_likely_score;type:numeric(8,2)"`

	Bookmaker string    `gorm:"column:bookmaker;type:varchar(64)"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:now()"`
}

func (MatchOdds) TableName() string { return "match_odds" }

// MatchResult is written by the results importer once a fixture finishes.
// Scorers is a JSON array of player names that scored, used to settle
// scorer picks.
type MatchResult struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	FixtureID  uint64         `gorm:"column:fixture_id;type:bigint;not null;uniqueIndex:uk_result_fixture"`
	HomeGoals  int            `gorm:"column:home_goals;type:int;not null"`
	AwayGoals  int            `gorm:"column:away_goals;type:int;not null"`
	Scorers    datatypes.JSON `gorm:"column:scorers;type:jsonb"`
	FinishedAt time.Time      `gorm:"column:finished_at;type:timestamp;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamp;default:now()"`
}

func (MatchResult) TableName() string { return "match_results" }
