package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID        string
	UserID    string
	Name      string
	Phone     *string
	Address   *string
	PhotoURL  *string
	DailyWage *decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WageRate returns the daily wage, treating an unset wage as zero.
func (w Worker) WageRate() decimal.Decimal {
	if w.DailyWage == nil {
		return decimal.Zero
	}
	return *w.DailyWage
}
