package attendance

import (
	"context"

	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

// AttendanceStore is the session projection of a user's attendance marks and payments.
type AttendanceStore interface {
	// MarkAttendance upserts the mark for (worker, date). Calling it repeatedly with the
	// same arguments leaves exactly one mark.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (Mark, error)

	// RecordPayment appends a payment. Payments are never merged.
	RecordPayment(ctx context.Context, req payment.RecordPaymentRequest) (payment.Payment, error)

	// QueryAttendance returns the worker's marks, limited to period when it is non-nil.
	QueryAttendance(ctx context.Context, workerID string, period *dateutil.Period) ([]Mark, error)

	// QueryPayments returns the worker's payments, limited to period when it is non-nil.
	QueryPayments(ctx context.Context, workerID string, period *dateutil.Period) ([]payment.Payment, error)

	// MarksOn returns every mark of the user on a single date.
	MarksOn(ctx context.Context, date string) ([]Mark, error)

	// PaymentsIn returns every payment of the user in period, across workers.
	PaymentsIn(ctx context.Context, period *dateutil.Period) ([]payment.Payment, error)

	// Refresh discards the cached projection and reloads it from persistence.
	Refresh(ctx context.Context) error

	// ForgetWorker drops the worker's marks and payments from the projection after the
	// worker has been deleted from persistence.
	ForgetWorker(ctx context.Context, workerID string)
}
