package bill

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

type CreateBillRequest struct {
	ShopName string          `json:"shop_name"`
	Material string          `json:"material"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Location *string         `json:"location,omitempty"`
}

func (r *CreateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShopName) {
		errs = append(errs, validator.ValidationError{
			Field:   "shop_name",
			Message: "shop_name is required",
		})
	} else if len(r.ShopName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "shop_name",
			Message: "shop_name must not exceed 255 characters",
		})
	}

	if _, ok := ParseMaterial(r.Material); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "material",
			Message: "material must be one of the catalogue ids",
		})
	}

	errs = append(errs, validateAmount(r.Amount)...)

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBillRequest struct {
	ID       string           `json:"-"`
	ShopName *string          `json:"shop_name,omitempty"`
	Material *string          `json:"material,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Location *string          `json:"location,omitempty"`
}

func (r *UpdateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.ShopName != nil && validator.IsEmpty(*r.ShopName) {
		errs = append(errs, validator.ValidationError{
			Field:   "shop_name",
			Message: "shop_name must not be empty",
		})
	}
	if r.Material != nil {
		if _, ok := ParseMaterial(*r.Material); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "material",
				Message: "material must be one of the catalogue ids",
			})
		}
	}
	if r.Amount != nil {
		errs = append(errs, validateAmount(*r.Amount)...)
	}
	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BillFilter selects bills either by calendar month or by an explicit date range.
type BillFilter struct {
	Month     *int    `json:"month,omitempty"`
	Year      *int    `json:"year,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *BillFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be given together",
		})
	} else if f.Month != nil && !dateutil.ValidMonth(*f.Month, *f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be 1-12 with a four digit year",
		})
	}

	if f.StartDate != nil {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.StartDate != nil && f.EndDate != nil && *f.StartDate > *f.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range resolves the filter to inclusive bounds. Zero times mean unbounded.
func (f *BillFilter) Range() (from, to time.Time) {
	if f.Month != nil && f.Year != nil {
		return dateutil.MonthBounds(*f.Month, *f.Year)
	}
	if f.StartDate != nil {
		from, _ = dateutil.Parse(*f.StartDate)
	}
	if f.EndDate != nil {
		to, _ = dateutil.Parse(*f.EndDate)
	}
	return from, to
}

type BillResponse struct {
	ID        string          `json:"id"`
	ShopName  string          `json:"shop_name"`
	Material  MaterialInfo    `json:"material"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Location  *string         `json:"location,omitempty"`
	PhotoURL  *string         `json:"photo_url,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

func NewBillResponse(b Bill) BillResponse {
	return BillResponse{
		ID:        b.ID,
		ShopName:  b.ShopName,
		Material:  b.Material.Info(),
		Amount:    b.Amount,
		Date:      dateutil.Format(b.Date),
		Location:  b.Location,
		PhotoURL:  b.PhotoURL,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

type MaterialTotal struct {
	Material MaterialInfo    `json:"material"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

type ListBillResponse struct {
	Bills      []BillResponse  `json:"bills"`
	TotalCount int             `json:"total_count"`
	Total      decimal.Decimal `json:"total"`
	ByMaterial []MaterialTotal `json:"by_material"`
}

// TotalsByMaterial sums bills per material in catalogue order, skipping empty materials.
func TotalsByMaterial(bills []Bill) []MaterialTotal {
	sums := make(map[Material]*MaterialTotal)
	for _, b := range bills {
		t, ok := sums[b.Material]
		if !ok {
			t = &MaterialTotal{Material: b.Material.Info(), Total: decimal.Zero}
			sums[b.Material] = t
		}
		t.Count++
		t.Total = t.Total.Add(b.Amount)
	}

	out := make([]MaterialTotal, 0, len(sums))
	for _, info := range materials {
		if t, ok := sums[info.ID]; ok {
			out = append(out, *t)
		}
	}
	return out
}

func validateAmount(amount decimal.Decimal) validator.ValidationErrors {
	if !amount.IsPositive() {
		return validator.ValidationErrors{{Field: "amount", Message: "amount must be greater than 0"}}
	}
	if !validator.IsValidMoney(amount) {
		return validator.ValidationErrors{{Field: "amount", Message: "amount must have at most 2 decimal places"}}
	}
	return nil
}
