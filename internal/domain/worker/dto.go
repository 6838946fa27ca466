package worker

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name      string           `json:"name"`
	Phone     *string          `json:"phone,omitempty"`
	Address   *string          `json:"address,omitempty"`
	PhotoURL  *string          `json:"photo_url,omitempty"`
	DailyWage *decimal.Decimal `json:"daily_wage,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateName(r.Name)...)
	errs = append(errs, validatePhone(r.Phone)...)
	if r.DailyWage != nil {
		errs = append(errs, validateWage(*r.DailyWage)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil {
		errs = append(errs, validateName(*r.Name)...)
	}
	errs = append(errs, validatePhone(r.Phone)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDailyWageRequest struct {
	ID        string          `json:"-"`
	DailyWage decimal.Decimal `json:"daily_wage"`
}

func (r *UpdateDailyWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	errs = append(errs, validateWage(r.DailyWage)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone,omitempty"`
	Address   *string         `json:"address,omitempty"`
	PhotoURL  *string         `json:"photo_url,omitempty"`
	DailyWage decimal.Decimal `json:"daily_wage"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		Address:   w.Address,
		PhotoURL:  w.PhotoURL,
		DailyWage: w.WageRate(),
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

func validateName(name string) validator.ValidationErrors {
	if validator.IsEmpty(name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	if len(name) > 255 {
		return validator.ValidationErrors{{Field: "name", Message: "name must not exceed 255 characters"}}
	}
	return nil
}

func validatePhone(phone *string) validator.ValidationErrors {
	if phone == nil || *phone == "" {
		return nil
	}
	if !validator.IsValidPhoneNumber(*phone) {
		return validator.ValidationErrors{{Field: "phone", Message: "phone must contain 7 to 15 digits"}}
	}
	return nil
}

func validateWage(wage decimal.Decimal) validator.ValidationErrors {
	if wage.IsNegative() {
		return validator.ValidationErrors{{Field: "daily_wage", Message: "daily_wage must not be negative"}}
	}
	if !validator.IsValidMoney(wage) {
		return validator.ValidationErrors{{Field: "daily_wage", Message: "daily_wage must have at most 2 decimal places"}}
	}
	return nil
}
