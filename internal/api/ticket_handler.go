package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"TicketForge/internal/engine"
	"TicketForge/internal/service"
)

const dateLayout = "2006-01-02"

// TicketHandler serves the dashboard endpoints: tickets, picks and accuracy.
type TicketHandler struct {
	tickets *service.TicketService
	grading *service.GradingService
	logger  *logrus.Logger
}

// NewTicketHandler creates the handler.
func NewTicketHandler(tickets *service.TicketService, grading *service.GradingService, logger *logrus.Logger) *TicketHandler {
	return &TicketHandler{
		tickets: tickets,
		grading: grading,
		logger:  logger,
	}
}

// Register mounts the routes on the given router group.
func (h *TicketHandler) Register(r *gin.RouterGroup) {
	r.GET("/tickets", h.GetTickets)
	r.GET("/tickets/:type", h.GetTicket)
	r.POST("/generate", h.Generate)
	r.GET("/picks", h.ListPicks)
	r.GET("/stats/accuracy", h.Accuracy)
}

// GetTickets returns the three tickets for a date.
// GET /api/tickets?date=2026-08-28
func (h *TicketHandler) GetTickets(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	ts, err := h.tickets.GetForDate(c.Request.Context(), date)
	if err != nil {
		h.logger.WithError(err).Error("GetTickets failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, renderTicketSet(ts))
}

// GetTicket returns a single ticket by type.
// GET /api/tickets/safe?date=2026-08-28
func (h *TicketHandler) GetTicket(c *gin.Context) {
	typ := c.Param("type")
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	ts, err := h.tickets.GetForDate(c.Request.Context(), date)
	if err != nil {
		h.logger.WithError(err).Error("GetTicket failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, t := range ts.Tickets() {
		if string(t.Type) == typ {
			c.JSON(http.StatusOK, renderTicket(t))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown ticket type %q", typ)})
}

// Generate recomputes and re-persists a date's tickets on demand.
// POST /api/generate?date=2026-08-28
func (h *TicketHandler) Generate(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	ts, err := h.tickets.GenerateForDate(c.Request.Context(), date)
	if err != nil {
		h.logger.WithError(err).Error("Generate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, renderTicketSet(ts))
}

// ListPicks returns persisted picks with their settle status.
// GET /api/picks?date=2026-08-28&type=safe
func (h *TicketHandler) ListPicks(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	picks, err := h.tickets.ListPicks(c.Request.Context(), date, c.Query("type"))
	if err != nil {
		h.logger.WithError(err).Error("ListPicks failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date.Format(dateLayout), "picks": picks})
}

// Accuracy returns per-ticket-type win rates over a trailing window.
// GET /api/stats/accuracy?days=30
func (h *TicketHandler) Accuracy(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	rows, err := h.grading.Accuracy(c.Request.Context(), days)
	if err != nil {
		h.logger.WithError(err).Error("Accuracy failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	type accuracyEntry struct {
		TicketType string  `json:"ticket_type"`
		Settled    int64   `json:"settled"`
		Won        int64   `json:"won"`
		WinRate    float64 `json:"win_rate"`
	}
	out := make([]accuracyEntry, 0, len(rows))
	for _, r := range rows {
		e := accuracyEntry{TicketType: r.TicketType, Settled: r.Settled, Won: r.Won}
		if r.Settled > 0 {
			e.WinRate = float64(r.Won) / float64(r.Settled)
		}
		out = append(out, e)
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "accuracy": out})
}

func (h *TicketHandler) dateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

type ticketResponse struct {
	Type          engine.TicketType `json:"type"`
	Status        string            `json:"status"`
	Stars         int               `json:"stars"`
	Subtitle      string            `json:"subtitle"`
	CombinedOdds  float64           `json:"combined_odds"`
	CombinedProba float64           `json:"combined_proba"`
	Payouts       []engine.Payout   `json:"payouts"`
	Combos        []engine.Combo    `json:"combos"`
}

func renderTicket(t *engine.Ticket) ticketResponse {
	return ticketResponse{
		Type:          t.Type,
		Status:        t.Status,
		Stars:         t.Stars,
		Subtitle:      fmt.Sprintf("%d matches, %d legs", len(t.Combos), t.LegCount()),
		CombinedOdds:  t.CombinedOdds,
		CombinedProba: t.CombinedProba,
		Payouts:       t.Payouts(),
		Combos:        t.Combos,
	}
}

func renderTicketSet(ts *engine.TicketSet) gin.H {
	tickets := make([]ticketResponse, 0, 3)
	for _, t := range ts.Tickets() {
		tickets = append(tickets, renderTicket(t))
	}
	return gin.H{
		"date":    ts.Date.Format(dateLayout),
		"tickets": tickets,
	}
}
