package model

import (
	"time"

	"gorm.io/datatypes"
)

// Ticket type identifiers, one per risk tier.
const (
	TicketSafe    = "safe"
	TicketFun     = "fun"
	TicketJackpot = "jackpot"
)

// Pick is one flattened ticket leg persisted for later grading. The upsert key
// is (ticket_type, ticket_date, fixture_id, bet_label); regenerating a day's
// tickets rewrites odds and confidence but never touches an already settled
// won flag.
type Pick struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	TicketType string    `gorm:"column:ticket_type;type:varchar(16);not null;uniqueIndex:uk_pick"`
	TicketDate time.Time `gorm:"column:ticket_date;type:date;not null;uniqueIndex:uk_pick"`
	FixtureID  uint64    `gorm:"column:fixture_id;type:bigint;not null;uniqueIndex:uk_pick"`
	HomeTeam   string    `gorm:"column:home_team;type:varchar(128);not null"`
	AwayTeam   string    `gorm:"column:away_team;type:varchar(128);not null"`
	MatchTime  time.Time `gorm:"column:match_time;type:timestamp;not null"`

	// BetType is the machine-readable market key, Selection the optional
	// parameter (scorer name, exact score). The grading job settles from
	// these instead of parsing the display label.
	BetType   string `gorm:"column:bet_type;type:varchar(32);not null"`
	Selection string `gorm:"column:selection;type:varchar(128)"`
	BetLabel  string `gorm:"column:bet_label;type:varchar(256);not null;uniqueIndex:uk_pick"`

	Confidence    int     `gorm:"column:confidence;type:int;not null"`
	EstimatedOdds float64 `gorm:"column:estimated_odds;type:numeric(8,2);not null"`

	// Won stays NULL until the grading job settles the pick; it is set
	// exactly once.
	Won       *bool      `gorm:"column:won;type:boolean"`
	SettledAt *time.Time `gorm:"column:settled_at;type:timestamp"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:now()"`
}

func (Pick) TableName() string { return "picks" }

// TicketRun records one generated ticket per (type, date): the combined
// figures plus a jsonb snapshot of the combos as rendered to the dashboard.
type TicketRun struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	RunUUID       string         `gorm:"column:run_uuid;type:varchar(64);not null"`
	TicketType    string         `gorm:"column:ticket_type;type:varchar(16);not null;uniqueIndex:uk_ticket_run"`
	TicketDate    time.Time      `gorm:"column:ticket_date;type:date;not null;uniqueIndex:uk_ticket_run"`
	Status        string         `gorm:"column:status;type:varchar(32);not null"`
	CombinedOdds  float64        `gorm:"column:combined_odds;type:numeric(12,2);default:0"`
	CombinedProba float64        `gorm:"column:combined_proba;type:numeric(6,2);default:0"`
	Stars         int            `gorm:"column:stars;type:int;default:0"`
	MatchCount    int            `gorm:"column:match_count;type:int;default:0"`
	LegCount      int            `gorm:"column:leg_count;type:int;default:0"`
	Combos        datatypes.JSON `gorm:"column:combos;type:jsonb"`
	CreatedAt     time.Time      `gorm:"column:created_at;type:timestamp;default:now()"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;type:timestamp;default:now()"`
}

func (TicketRun) TableName() string { return "ticket_runs" }
