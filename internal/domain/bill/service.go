package bill

import (
	"context"
	"io"
)

type BillService interface {
	Create(ctx context.Context, req CreateBillRequest) (BillResponse, error)
	Get(ctx context.Context, id string) (BillResponse, error)
	List(ctx context.Context, filter BillFilter) (ListBillResponse, error)
	Update(ctx context.Context, req UpdateBillRequest) (BillResponse, error)
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (BillResponse, error)
	Delete(ctx context.Context, id string) error
}
