package repository

import (
	"context"
	"time"

	"TicketForge/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccuracyRow is one per-ticket-type grading aggregate.
type AccuracyRow struct {
	TicketType string `json:"ticket_type"`
	Settled    int64  `json:"settled"`
	Won        int64  `json:"won"`
}

// PickRepository persists flattened picks and generated ticket runs.
type PickRepository interface {
	UpsertPicks(ctx context.Context, picks []*model.Pick) error
	UpsertPick(ctx context.Context, pick *model.Pick) error
	ListByDate(ctx context.Context, date time.Time, ticketType string) ([]*model.Pick, error)
	ListPending(ctx context.Context, playedBefore time.Time) ([]*model.Pick, error)
	Settle(ctx context.Context, pickID uint64, won bool) error
	AccuracySince(ctx context.Context, since time.Time) ([]AccuracyRow, error)

	UpsertTicketRun(ctx context.Context, run *model.TicketRun) error
	ListTicketRuns(ctx context.Context, date time.Time) ([]*model.TicketRun, error)
}

type pickRepository struct {
	db *gorm.DB
}

// NewPickRepository creates the pick store.
func NewPickRepository(db *gorm.DB) PickRepository {
	return &pickRepository{db: db}
}

// pickConflict is the upsert key; regeneration refreshes odds and confidence
// but never overwrites a settle result.
var pickConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "ticket_type"}, {Name: "ticket_date"}, {Name: "fixture_id"}, {Name: "bet_label"},
	},
	DoUpdates: clause.AssignmentColumns([]string{
		"match_time", "bet_type", "selection", "confidence", "estimated_odds", "updated_at",
	}),
}

func (r *pickRepository) UpsertPicks(ctx context.Context, picks []*model.Pick) error {
	if len(picks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(pickConflict).Create(&picks).Error
}

func (r *pickRepository) UpsertPick(ctx context.Context, pick *model.Pick) error {
	return r.db.WithContext(ctx).Clauses(pickConflict).Create(pick).Error
}

func (r *pickRepository) ListByDate(ctx context.Context, date time.Time, ticketType string) ([]*model.Pick, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	q := r.db.WithContext(ctx).Where("ticket_date = ?", day)
	if ticketType != "" {
		q = q.Where("ticket_type = ?", ticketType)
	}
	var list []*model.Pick
	if err := q.Order("ticket_type ASC, match_time ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListPending returns unsettled picks whose match has already been played.
func (r *pickRepository) ListPending(ctx context.Context, playedBefore time.Time) ([]*model.Pick, error) {
	var list []*model.Pick
	if err := r.db.WithContext(ctx).
		Where("won IS NULL AND match_time < ?", playedBefore).
		Order("match_time ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Settle writes the won flag once; an already settled pick is left untouched.
func (r *pickRepository) Settle(ctx context.Context, pickID uint64, won bool) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.Pick{}).
		Where("id = ? AND won IS NULL", pickID).
		Updates(map[string]interface{}{
			"won":        won,
			"settled_at": now,
			"updated_at": now,
		}).Error
}

func (r *pickRepository) AccuracySince(ctx context.Context, since time.Time) ([]AccuracyRow, error) {
	var rows []AccuracyRow
	if err := r.db.WithContext(ctx).Model(&model.Pick{}).
		Select("ticket_type, count(won) AS settled, count(*) FILTER (WHERE won) AS won").
		Where("ticket_date >= ?", since).
		Group("ticket_type").
		Order("ticket_type ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var ticketRunConflict = clause.OnConflict{
	Columns: []clause.Column{{Name: "ticket_type"}, {Name: "ticket_date"}},
	DoUpdates: clause.AssignmentColumns([]string{
		"run_uuid", "status", "combined_odds", "combined_proba", "stars",
		"match_count", "leg_count", "combos", "updated_at",
	}),
}

func (r *pickRepository) UpsertTicketRun(ctx context.Context, run *model.TicketRun) error {
	return r.db.WithContext(ctx).Clauses(ticketRunConflict).Create(run).Error
}

func (r *pickRepository) ListTicketRuns(ctx context.Context, date time.Time) ([]*model.TicketRun, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var list []*model.TicketRun
	if err := r.db.WithContext(ctx).
		Where("ticket_date = ?", day).
		Order("ticket_type ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
