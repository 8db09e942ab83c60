// Package engine derives bet candidates from per-match model probabilities and
// assembles them into three risk-tiered multi-leg tickets. It is a pure,
// synchronous batch computation: no I/O, no shared state, deterministic for a
// fixed input ordering.
package engine

// BetType is the machine-readable market key of a candidate.
type BetType string

const (
	BetHomeWin BetType = "home_win"
	BetDraw    BetType = "draw"
	BetAwayWin BetType = "away_win"

	BetHomeOrDraw BetType = "dc_home_draw"
	BetDrawOrAway BetType = "dc_draw_away"
	BetNoDraw     BetType = "dc_no_draw"

	BetBTTSYes BetType = "btts_yes"
	BetBTTSNo  BetType = "btts_no"

	BetOver05  BetType = "over_05"
	BetOver15  BetType = "over_15"
	BetOver25  BetType = "over_25"
	BetOver35  BetType = "over_35"
	BetUnder05 BetType = "under_05"
	BetUnder15 BetType = "under_15"
	BetUnder25 BetType = "under_25"
	BetUnder35 BetType = "under_35"

	BetTopScorer  BetType = "top_scorer"
	BetExactScore BetType = "exact_score"
)

// MarketGroup partitions bet types for redundancy and required-group logic.
type MarketGroup string

const (
	GroupIssue  MarketGroup = "issue"
	GroupBTTS   MarketGroup = "btts"
	GroupGoals  MarketGroup = "goals"
	GroupScorer MarketGroup = "scorer"
	GroupExact  MarketGroup = "exact"
)

var groupByType = map[BetType]MarketGroup{
	BetHomeWin:    GroupIssue,
	BetDraw:       GroupIssue,
	BetAwayWin:    GroupIssue,
	BetHomeOrDraw: GroupIssue,
	BetDrawOrAway: GroupIssue,
	BetNoDraw:     GroupIssue,

	BetBTTSYes: GroupBTTS,
	BetBTTSNo:  GroupBTTS,

	BetOver05:  GroupGoals,
	BetOver15:  GroupGoals,
	BetOver25:  GroupGoals,
	BetOver35:  GroupGoals,
	BetUnder05: GroupGoals,
	BetUnder15: GroupGoals,
	BetUnder25: GroupGoals,
	BetUnder35: GroupGoals,

	BetTopScorer:  GroupScorer,
	BetExactScore: GroupExact,
}

// Group returns the market group a bet type belongs to.
func (t BetType) Group() MarketGroup { return groupByType[t] }
