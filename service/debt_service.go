package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"debtwatch/models"
	"debtwatch/sanitize"
)

// DebtOverview is the resolved answer for the total-debt query, tagged
// with the source that produced it.
type DebtOverview struct {
	TotalDebt          float64  `json:"totalDebt"`
	TotalDebtFormatted string   `json:"totalDebtFormatted"`
	DebtHeldByPublic   *float64 `json:"debtHeldByPublic"`
	Intragovernmental  *float64 `json:"intragovernmental"`
	LastUpdated        string   `json:"lastUpdated"`
	Source             string   `json:"source"`
}

// debtService resolves total-debt queries store-first with a live
// upstream fallback. There is no safe placeholder for debt magnitudes,
// so exhausting both sources is a hard failure.
type debtService struct {
	snapshots DebtSnapshotRepository
	client    FiscalClient
}

// NewDebtService creates a new debt service. snapshots may be nil in
// store-less mode, in which case every query goes straight upstream.
func NewDebtService(snapshots DebtSnapshotRepository, client FiscalClient) DebtService {
	return &debtService{snapshots: snapshots, client: client}
}

// GetLatest resolves the most recent debt snapshot.
func (s *debtService) GetLatest(ctx context.Context) (*DebtOverview, error) {
	if s.snapshots != nil {
		snapshot, err := s.snapshots.GetLatest(ctx)
		if err != nil {
			log.Warnf("debt store query failed, falling back to live fetch: %v", err)
		} else if snapshot != nil {
			return overviewFromSnapshot(snapshot, SourceDatabase), nil
		}
	}

	raw, err := s.client.LatestDebtSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch debt snapshot: %w", err)
	}
	if raw == nil {
		return nil, ErrNoData
	}

	snapshot := sanitize.CleanDebtSnapshot(*raw)
	if snapshot == nil {
		return nil, ErrNoData
	}

	return overviewFromSnapshot(snapshot, SourceAPI), nil
}

func overviewFromSnapshot(snapshot *models.DebtSnapshot, source string) *DebtOverview {
	return &DebtOverview{
		TotalDebt:          snapshot.TotalDebt,
		TotalDebtFormatted: FormatTrillions(snapshot.TotalDebt),
		DebtHeldByPublic:   snapshot.DebtHeldByPublic,
		Intragovernmental:  snapshot.IntragovernmentalHoldings,
		LastUpdated:        snapshot.RecordDate,
		Source:             source,
	}
}

// FormatTrillions renders a dollar amount in human units, e.g.
// "$36.22T" or "$850.00B" for smaller magnitudes.
func FormatTrillions(amount float64) string {
	switch {
	case amount >= 1e12:
		return fmt.Sprintf("$%.2fT", amount/1e12)
	case amount >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}
