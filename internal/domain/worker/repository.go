package worker

import (
	"context"

	"github.com/shopspring/decimal"
)

// WorkerRepository defines data access methods for workers.
// All methods take the owning userID so one user never reads another user's rows.
type WorkerRepository interface {
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	GetByID(ctx context.Context, id string, userID string) (Worker, error)
	List(ctx context.Context, userID string) ([]Worker, error)
	Update(ctx context.Context, userID string, req UpdateWorkerRequest) (Worker, error)
	UpdateDailyWage(ctx context.Context, id string, userID string, wage decimal.Decimal) (Worker, error)
	UpdatePhoto(ctx context.Context, id string, userID string, photoURL string) (Worker, error)
	Delete(ctx context.Context, id string, userID string) error
}
