package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"grub-pool/internal/model"
	"grub-pool/internal/repository"

	"github.com/rs/zerolog"
)

// statsService implements StatsService. All figures are recomputed from the
// current order rows on every call.
type statsService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewStatsService creates a new aggregation service.
func NewStatsService(store repository.Store, logger zerolog.Logger) StatsService {
	return &statsService{
		store:  store,
		logger: logger.With().Str("service", "stats").Logger(),
	}
}

func (s *statsService) SessionStats(ctx context.Context, sessionID int) (*model.SessionStats, error) {
	orders, err := s.store.GetOrdersBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute session stats: %w", err)
	}

	// Participants are distinct customer names, compared exactly: no
	// trimming, case-sensitive.
	participants := make(map[string]struct{})
	var total float64
	for _, o := range orders {
		participants[o.CustomerName] = struct{}{}
		total += parseAmount(o.TotalPrice)
	}

	return &model.SessionStats{
		TotalOrders:      len(orders),
		TotalAmount:      formatAmount(total),
		ParticipantCount: len(participants),
	}, nil
}

func (s *statsService) SessionSummary(ctx context.Context, sessionID int) ([]model.CustomerSummary, error) {
	orders, err := s.store.GetOrdersBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute session summary: %w", err)
	}

	menuItems, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute session summary: %w", err)
	}
	itemNames := make(map[int]string, len(menuItems))
	for _, m := range menuItems {
		itemNames[m.ID] = m.Name
	}

	type group struct {
		items []string
		total float64
		paid  bool
	}

	groups := make(map[string]*group)
	var names []string // first-appearance order
	for _, o := range orders {
		g, ok := groups[o.CustomerName]
		if !ok {
			g = &group{paid: true}
			groups[o.CustomerName] = g
			names = append(names, o.CustomerName)
		}
		name, ok := itemNames[o.MenuItemID]
		if !ok {
			// Menu item was hard-deleted; the order keeps its reference.
			name = fmt.Sprintf("item #%d", o.MenuItemID)
		}
		g.items = append(g.items, fmt.Sprintf("%dx %s", o.Quantity, name))
		g.total += parseAmount(o.TotalPrice)
		g.paid = g.paid && o.IsPaid
	}

	summaries := make([]model.CustomerSummary, 0, len(names))
	for _, n := range names {
		g := groups[n]
		summaries = append(summaries, model.CustomerSummary{
			CustomerName: n,
			Items:        strings.Join(g.items, ", "),
			TotalAmount:  formatAmount(g.total),
			Paid:         g.paid,
		})
	}

	return summaries, nil
}

func (s *statsService) OrdersByDateRange(ctx context.Context, start, end time.Time) (*model.DateRangeReport, error) {
	orders, err := s.store.GetOrdersByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by date range: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}

	report := &model.DateRangeReport{
		Orders:      orders,
		TotalOrders: len(orders),
	}
	var total float64
	for _, o := range orders {
		if o.IsPaid {
			report.PaidOrders++
		}
		total += parseAmount(o.TotalPrice)
	}
	report.TotalAmount = formatAmount(total)

	return report, nil
}

// parseAmount reads a stored decimal string. Stored totals are summed as-is,
// never recomputed from unit price and quantity; unparseable values count as
// zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
