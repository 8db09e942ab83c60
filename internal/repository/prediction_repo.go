package repository

import (
	"context"
	"time"

	"TicketForge/internal/model"

	"gorm.io/gorm"
)

// PredictionRepository reads the upstream model output and bookmaker odds
// used as engine input, plus finished-match results for grading.
type PredictionRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*model.MatchPrediction, error)
	GetOddsByFixtureIDs(ctx context.Context, fixtureIDs []uint64) (map[uint64]*model.MatchOdds, error)
	GetResultsByFixtureIDs(ctx context.Context, fixtureIDs []uint64) (map[uint64]*model.MatchResult, error)
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates the prediction store.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// ListForDate returns the day's predictions ordered by kickoff then fixture id.
// The ordering is the engine's tie-break order and must stay stable.
func (r *predictionRepository) ListForDate(ctx context.Context, date time.Time) ([]*model.MatchPrediction, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var list []*model.MatchPrediction
	if err := r.db.WithContext(ctx).
		Where("match_time >= ? AND match_time < ?", dayStart, dayEnd).
		Order("match_time ASC, fixture_id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *predictionRepository) GetOddsByFixtureIDs(ctx context.Context, fixtureIDs []uint64) (map[uint64]*model.MatchOdds, error) {
	if len(fixtureIDs) == 0 {
		return map[uint64]*model.MatchOdds{}, nil
	}
	var list []*model.MatchOdds
	if err := r.db.WithContext(ctx).Where("fixture_id IN ?", fixtureIDs).Find(&list).Error; err != nil {
		return nil, err
	}
	byFixture := make(map[uint64]*model.MatchOdds, len(list))
	for _, o := range list {
		byFixture[o.FixtureID] = o
	}
	return byFixture, nil
}

func (r *predictionRepository) GetResultsByFixtureIDs(ctx context.Context, fixtureIDs []uint64) (map[uint64]*model.MatchResult, error) {
	if len(fixtureIDs) == 0 {
		return map[uint64]*model.MatchResult{}, nil
	}
	var list []*model.MatchResult
	if err := r.db.WithContext(ctx).Where("fixture_id IN ?", fixtureIDs).Find(&list).Error; err != nil {
		return nil, err
	}
	byFixture := make(map[uint64]*model.MatchResult, len(list))
	for _, res := range list {
		byFixture[res.FixtureID] = res
	}
	return byFixture, nil
}
