package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

type BillHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Materials(w http.ResponseWriter, r *http.Request)
}

type billHandlerImpl struct {
	billService bill.BillService
}

func NewBillHandler(billService bill.BillService) BillHandler {
	return &billHandlerImpl{billService: billService}
}

// Create implements BillHandler.
func (h *billHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bill.CreateBillRequest
	if !decodeJSON(w, r, &req, "CreateBill") {
		return
	}

	result, err := h.billService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bill created successfully", result)
}

// List implements BillHandler. Accepts ?month=&year= or ?start_date=&end_date=.
func (h *billHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter bill.BillFilter
	var errs validator.ValidationErrors
	query := r.URL.Query()

	if v := query.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		}
		filter.Month = &month
	}
	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		}
		filter.Year = &year
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.billService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements BillHandler.
func (h *billHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.billService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements BillHandler.
func (h *billHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req bill.UpdateBillRequest
	if !decodeJSON(w, r, &req, "UpdateBill") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.billService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill updated successfully", result)
}

// UploadPhoto implements BillHandler.
func (h *billHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := photoFromForm(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.billService.UploadPhoto(r.Context(), chi.URLParam(r, "id"), file, filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Receipt uploaded successfully", result)
}

// Delete implements BillHandler.
func (h *billHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.billService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill deleted successfully", nil)
}

// Materials implements BillHandler.
func (h *billHandlerImpl) Materials(w http.ResponseWriter, r *http.Request) {
	response.Success(w, bill.Materials())
}
