package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind separates cash advances from expenditure (wage) records in the single payment ledger.
type Kind string

const (
	KindAdvance     Kind = "advance"
	KindExpenditure Kind = "expenditure"
)

var Kinds = []Kind{KindAdvance, KindExpenditure}

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindAdvance, KindExpenditure:
		return Kind(s), true
	}
	return "", false
}

// Payment is immutable once recorded and always belongs to one worker.
type Payment struct {
	ID        string
	UserID    string
	WorkerID  string
	Kind      Kind
	Date      time.Time
	Amount    decimal.Decimal
	Note      *string
	CreatedAt time.Time
}
