package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

type RecordPaymentRequest struct {
	WorkerID string          `json:"-"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Amount   decimal.Decimal `json:"amount"`
	Note     *string         `json:"note,omitempty"`
	Kind     string          `json:"kind"` // advance (default), expenditure
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		})
	} else if !validator.IsValidMoney(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must have at most 2 decimal places",
		})
	}

	if r.Kind == "" {
		r.Kind = string(KindAdvance)
	}
	if _, ok := ParseKind(r.Kind); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: advance, expenditure",
		})
	}

	if r.Note != nil && len(*r.Note) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	WorkerID  string          `json:"worker_id"`
	Kind      Kind            `json:"kind"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt string          `json:"created_at"`
}

func NewPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		WorkerID:  p.WorkerID,
		Kind:      p.Kind,
		Date:      dateutil.Format(p.Date),
		Amount:    p.Amount,
		Note:      p.Note,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func NewPaymentResponses(payments []Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return out
}
