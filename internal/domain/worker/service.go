package worker

import (
	"context"
	"io"
)

type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context) ([]WorkerResponse, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// UpdateDailyWage changes the wage used for every summary computed afterwards,
	// including summaries of past months.
	UpdateDailyWage(ctx context.Context, req UpdateDailyWageRequest) (WorkerResponse, error)

	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (WorkerResponse, error)
	Delete(ctx context.Context, id string) error
}
