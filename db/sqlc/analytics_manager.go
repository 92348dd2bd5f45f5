package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) RecordMatchStarted(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.IncrementMatchesPlayed(ctx, hostIpNet)
}

func (a *AnalyticsManager) RecordMatchResult(ctx context.Context, hostIpNet pqtype.Inet, humanWon bool) error {
	if humanWon {
		return a.queries.IncrementHumanWins(ctx, hostIpNet)
	}
	return a.queries.IncrementComputerWins(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetMatchAnalytics(ctx context.Context, hostIpNet pqtype.Inet) (GetMatchAnalyticsRow, error) {
	return a.queries.GetMatchAnalytics(ctx, hostIpNet)
}
