package dashboard

import (
	"context"

	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type DashboardService interface {
	Today(ctx context.Context, date string) (TodayResponse, error)
	Overview(ctx context.Context, period dateutil.Period) (OverviewResponse, error)
}
