package relief

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

// DayBucket is one calendar day's requested and supplied line-item counts.
type DayBucket struct {
	Date      string `json:"date"`
	Requested int    `json:"requested"`
	Supplied  int    `json:"supplied"`
}

// Statistics summarizes a shelter's relief activity over a trailing window.
type Statistics struct {
	ReliefItems     []DayBucket `json:"relief_items"`
	TotalRequests   int         `json:"total_requests"`
	TotalSupplies   int         `json:"total_supplies"`
	PendingRequests int         `json:"pending_requests"`
}

// SupplyRate derives the supplied percentage, defined as 0 when there are no
// requests in the window.
func (st *Statistics) SupplyRate() int {
	if st.TotalRequests == 0 {
		return 0
	}
	return int(float64(st.TotalSupplies)/float64(st.TotalRequests)*100 + 0.5)
}

// SupplyBreakdown counts a shelter's supplies by status and category.
type SupplyBreakdown struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Confirmed  int            `json:"confirmed"`
	Shipped    int            `json:"shipped"`
	Delivered  int            `json:"delivered"`
	Cancelled  int            `json:"cancelled"`
	ByCategory map[string]int `json:"by_category"`
}

// GetReliefStatistics loads the shelter's requests and supplies in parallel,
// keeps those created within the trailing windowDays, and buckets line-item
// counts per calendar date, ascending.
func (s *Service) GetReliefStatistics(ctx context.Context, shelterID string, windowDays int) (*Statistics, error) {
	if shelterID == "" {
		return nil, apperr.Validation("missing-shelter-id", "대피소 ID가 필요합니다.")
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -windowDays)

	var requests []model.ReliefRequest
	var supplies []model.ReliefSupply
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.store.ListRequestsByShelter(gctx, shelterID)
		return err
	})
	g.Go(func() error {
		var err error
		supplies, err = s.store.ListSuppliesByShelter(gctx, shelterID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Statistics{ReliefItems: []DayBucket{}}
	buckets := make(map[string]*DayBucket)
	bucket := func(date string) *DayBucket {
		b, ok := buckets[date]
		if !ok {
			b = &DayBucket{Date: date}
			buckets[date] = b
		}
		return b
	}

	for _, request := range requests {
		if request.CreatedAt.Before(start) || request.CreatedAt.After(now) {
			continue
		}
		stats.TotalRequests++
		if request.Status == model.RequestPending {
			stats.PendingRequests++
		}
		bucket(request.CreatedAt.UTC().Format("2006-01-02")).Requested += request.TotalItems
	}
	for _, supply := range supplies {
		if supply.CreatedAt.Before(start) || supply.CreatedAt.After(now) {
			continue
		}
		stats.TotalSupplies++
		bucket(supply.CreatedAt.UTC().Format("2006-01-02")).Supplied++
	}

	for _, b := range buckets {
		stats.ReliefItems = append(stats.ReliefItems, *b)
	}
	sort.Slice(stats.ReliefItems, func(i, j int) bool {
		return stats.ReliefItems[i].Date < stats.ReliefItems[j].Date
	})
	return stats, nil
}

// GetSupplyBreakdown counts the shelter's supply records by status and by
// category.
func (s *Service) GetSupplyBreakdown(ctx context.Context, shelterID string) (*SupplyBreakdown, error) {
	supplies, err := s.ListSuppliesByShelter(ctx, shelterID)
	if err != nil {
		return nil, err
	}

	breakdown := &SupplyBreakdown{ByCategory: make(map[string]int)}
	for _, supply := range supplies {
		breakdown.Total++
		switch supply.Status {
		case model.SupplyPending:
			breakdown.Pending++
		case model.SupplyConfirmed:
			breakdown.Confirmed++
		case model.SupplyShipped:
			breakdown.Shipped++
		case model.SupplyDelivered:
			breakdown.Delivered++
		case model.SupplyCancelled:
			breakdown.Cancelled++
		}
		if supply.Category != "" {
			breakdown.ByCategory[supply.Category]++
		}
	}
	return breakdown, nil
}
