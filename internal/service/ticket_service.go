package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"TicketForge/internal/cache"
	"TicketForge/internal/engine"
	"TicketForge/internal/metrics"
	"TicketForge/internal/model"
	"TicketForge/internal/notify"
	"TicketForge/internal/repository"
)

// TicketService runs the engine for a date and handles everything around it:
// loading inputs, persisting picks and runs, cache refresh, notification.
// Ticket computation itself never fails on persistence errors.
type TicketService struct {
	predRepo repository.PredictionRepository
	pickRepo repository.PickRepository
	cache    *cache.TicketCache
	notifier *notify.TelegramNotifier
	logger   *logrus.Logger
}

// NewTicketService wires the ticket pipeline. Cache and notifier may be nil.
func NewTicketService(db *gorm.DB, ticketCache *cache.TicketCache, notifier *notify.TelegramNotifier, logger *logrus.Logger) *TicketService {
	return &TicketService{
		predRepo: repository.NewPredictionRepository(db),
		pickRepo: repository.NewPickRepository(db),
		cache:    ticketCache,
		notifier: notifier,
		logger:   logger,
	}
}

// GenerateForDate computes the day's three tickets and performs the external
// side effects. Regeneration is idempotent: picks and runs are upserted on
// their natural keys.
func (s *TicketService) GenerateForDate(ctx context.Context, date time.Time) (*engine.TicketSet, error) {
	started := time.Now()

	preds, err := s.predRepo.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load predictions: %w", err)
	}
	fixtureIDs := make([]uint64, 0, len(preds))
	for _, p := range preds {
		fixtureIDs = append(fixtureIDs, p.FixtureID)
	}
	odds, err := s.predRepo.GetOddsByFixtureIDs(ctx, fixtureIDs)
	if err != nil {
		return nil, fmt.Errorf("load odds: %w", err)
	}

	ts := engine.BuildTicketSet(date, preds, odds)
	picks := ts.Flatten()

	s.persistRuns(ctx, ts)
	s.persistPicks(ctx, picks)

	if err := s.cache.SetTickets(ctx, date, ts); err != nil {
		s.logger.WithError(err).Warn("ticket cache refresh failed")
	}
	s.notifier.SendTicketSet(ts)

	metrics.GenerationDuration.Observe(time.Since(started).Seconds())
	s.logger.WithFields(logrus.Fields{
		"date":    date.Format("2006-01-02"),
		"matches": len(preds),
		"picks":   len(picks),
	}).Info("ticket generation finished")
	return ts, nil
}

// GetForDate serves the ticket set, cache first. A miss regenerates, which is
// safe because generation is deterministic and idempotent.
func (s *TicketService) GetForDate(ctx context.Context, date time.Time) (*engine.TicketSet, error) {
	var cached engine.TicketSet
	hit, err := s.cache.GetTickets(ctx, date, &cached)
	if err != nil {
		s.logger.WithError(err).Warn("ticket cache read failed")
	}
	if hit {
		return &cached, nil
	}
	return s.GenerateForDate(ctx, date)
}

// ListPicks returns the persisted picks for a date, optionally one ticket type.
func (s *TicketService) ListPicks(ctx context.Context, date time.Time, ticketType string) ([]*model.Pick, error) {
	return s.pickRepo.ListByDate(ctx, date, ticketType)
}

func (s *TicketService) persistRuns(ctx context.Context, ts *engine.TicketSet) {
	day := ts.Date.Truncate(24 * time.Hour)
	for _, t := range ts.Tickets() {
		combos, err := json.Marshal(t.Combos)
		if err != nil {
			s.logger.WithError(err).WithField("ticket", t.Type).Warn("combo snapshot marshal failed")
			combos = []byte("[]")
		}
		run := &model.TicketRun{
			RunUUID:       uuid.NewString(),
			TicketType:    string(t.Type),
			TicketDate:    day,
			Status:        t.Status,
			CombinedOdds:  t.CombinedOdds,
			CombinedProba: t.CombinedProba,
			Stars:         t.Stars,
			MatchCount:    len(t.Combos),
			LegCount:      t.LegCount(),
			Combos:        combos,
		}
		if err := s.pickRepo.UpsertTicketRun(ctx, run); err != nil {
			s.logger.WithError(err).WithField("ticket", t.Type).Warn("ticket run upsert failed")
			continue
		}
		metrics.TicketRuns.WithLabelValues(string(t.Type), t.Status).Inc()
	}
}

// persistPicks tries the batch first, then falls back to per-record upserts so
// one bad record does not abort the day's picks.
func (s *TicketService) persistPicks(ctx context.Context, picks []*model.Pick) {
	if len(picks) == 0 {
		return
	}
	if err := s.pickRepo.UpsertPicks(ctx, picks); err == nil {
		metrics.PicksUpserted.Add(float64(len(picks)))
		return
	} else {
		s.logger.WithError(err).Warn("batch pick upsert failed, retrying per record")
	}
	for _, p := range picks {
		if err := s.pickRepo.UpsertPick(ctx, p); err != nil {
			metrics.PickUpsertFailures.Inc()
			s.logger.WithError(err).WithFields(logrus.Fields{
				"ticket_type": p.TicketType,
				"fixture_id":  p.FixtureID,
				"bet_label":   p.BetLabel,
			}).Warn("pick upsert dropped")
			continue
		}
		metrics.PicksUpserted.Inc()
	}
}
