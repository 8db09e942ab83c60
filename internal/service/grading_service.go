package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"TicketForge/internal/engine"
	"TicketForge/internal/metrics"
	"TicketForge/internal/model"
	"TicketForge/internal/repository"
)

// GradingService settles pending picks against finished-match results and
// aggregates historical accuracy per ticket type.
type GradingService struct {
	predRepo repository.PredictionRepository
	pickRepo repository.PickRepository
	logger   *logrus.Logger
}

// NewGradingService creates the grading job.
func NewGradingService(db *gorm.DB, logger *logrus.Logger) *GradingService {
	return &GradingService{
		predRepo: repository.NewPredictionRepository(db),
		pickRepo: repository.NewPickRepository(db),
		logger:   logger,
	}
}

// Run settles every pending pick whose match finished and has a result row.
// Picks without a result yet are left for the next run. Returns the number
// settled.
func (s *GradingService) Run(ctx context.Context) (int, error) {
	pending, err := s.pickRepo.ListPending(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("list pending picks: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	fixtureIDs := make([]uint64, 0, len(pending))
	seen := make(map[uint64]bool, len(pending))
	for _, p := range pending {
		if !seen[p.FixtureID] {
			seen[p.FixtureID] = true
			fixtureIDs = append(fixtureIDs, p.FixtureID)
		}
	}
	results, err := s.predRepo.GetResultsByFixtureIDs(ctx, fixtureIDs)
	if err != nil {
		return 0, fmt.Errorf("load results: %w", err)
	}

	settled := 0
	for _, p := range pending {
		res, ok := results[p.FixtureID]
		if !ok {
			continue
		}
		won, gradable := gradePick(p, res)
		if !gradable {
			s.logger.WithFields(logrus.Fields{
				"pick_id":  p.ID,
				"bet_type": p.BetType,
			}).Warn("ungradable pick skipped")
			continue
		}
		if err := s.pickRepo.Settle(ctx, p.ID, won); err != nil {
			s.logger.WithError(err).WithField("pick_id", p.ID).Warn("pick settle failed")
			continue
		}
		outcome := "lost"
		if won {
			outcome = "won"
		}
		metrics.PicksSettled.WithLabelValues(outcome).Inc()
		settled++
	}
	if settled > 0 {
		s.logger.Infof("grading settled %d of %d pending picks", settled, len(pending))
	}
	return settled, nil
}

// Accuracy returns the per-ticket-type settle aggregates over a trailing window.
func (s *GradingService) Accuracy(ctx context.Context, days int) ([]repository.AccuracyRow, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	return s.pickRepo.AccuracySince(ctx, since)
}

// gradePick evaluates one settled market. The second return is false when the
// bet type is unknown or the stored selection cannot be interpreted.
func gradePick(p *model.Pick, res *model.MatchResult) (won bool, gradable bool) {
	home, away := res.HomeGoals, res.AwayGoals
	total := home + away

	switch engine.BetType(p.BetType) {
	case engine.BetHomeWin:
		return home > away, true
	case engine.BetDraw:
		return home == away, true
	case engine.BetAwayWin:
		return away > home, true
	case engine.BetHomeOrDraw:
		return home >= away, true
	case engine.BetDrawOrAway:
		return away >= home, true
	case engine.BetNoDraw:
		return home != away, true
	case engine.BetBTTSYes:
		return home > 0 && away > 0, true
	case engine.BetBTTSNo:
		return home == 0 || away == 0, true
	case engine.BetOver05:
		return total >= 1, true
	case engine.BetOver15:
		return total >= 2, true
	case engine.BetOver25:
		return total >= 3, true
	case engine.BetOver35:
		return total >= 4, true
	case engine.BetUnder05:
		return total < 1, true
	case engine.BetUnder15:
		return total < 2, true
	case engine.BetUnder25:
		return total < 3, true
	case engine.BetUnder35:
		return total < 4, true
	case engine.BetTopScorer:
		return scorerListed([]byte(res.Scorers), p.Selection), true
	case engine.BetExactScore:
		if p.Selection == "" {
			return false, false
		}
		return p.Selection == fmt.Sprintf("%d-%d", home, away), true
	}
	return false, false
}

func scorerListed(raw []byte, player string) bool {
	if len(raw) == 0 || player == "" {
		return false
	}
	var scorers []string
	if err := json.Unmarshal(raw, &scorers); err != nil {
		return false
	}
	for _, s := range scorers {
		if strings.EqualFold(s, player) {
			return true
		}
	}
	return false
}
