package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a material purchase receipt.
type Bill struct {
	ID        string
	UserID    string
	ShopName  string
	Material  Material
	Amount    decimal.Decimal
	Date      time.Time
	Location  *string
	PhotoURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
