package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/calendar"
	"github.com/sitebook/sitebook-backend/internal/domain/payment"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
)

// AttendanceHandler serves a worker's attendance marks, payments and calendar.
type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	store           attendance.AttendanceStore
	workerService   worker.WorkerService
	calendarService calendar.CalendarService
}

func NewAttendanceHandler(store attendance.AttendanceStore, workerService worker.WorkerService, calendarService calendar.CalendarService) AttendanceHandler {
	return &attendanceHandlerImpl{
		store:           store,
		workerService:   workerService,
		calendarService: calendarService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if !decodeJSON(w, r, &req, "MarkAttendance") {
		return
	}
	req.WorkerID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := req.ValidateNotAfter(time.Now()); err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := h.workerService.Get(r.Context(), req.WorkerID); err != nil {
		response.HandleError(w, err)
		return
	}

	mark, err := h.store.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", attendance.NewAttendanceResponse(mark))
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := h.workerService.Get(r.Context(), workerID); err != nil {
		response.HandleError(w, err)
		return
	}

	marks, err := h.store.QueryAttendance(r.Context(), workerID, &period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, attendance.NewAttendanceResponses(marks), &response.Meta{
		TotalItems: len(marks),
		Month:      period.String(),
	})
}

// RecordPayment implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req payment.RecordPaymentRequest
	if !decodeJSON(w, r, &req, "RecordPayment") {
		return
	}
	req.WorkerID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := h.workerService.Get(r.Context(), req.WorkerID); err != nil {
		response.HandleError(w, err)
		return
	}

	p, err := h.store.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded", payment.NewPaymentResponse(p))
}

// ListPayments implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if _, err := h.workerService.Get(r.Context(), workerID); err != nil {
		response.HandleError(w, err)
		return
	}

	payments, err := h.store.QueryPayments(r.Context(), workerID, &period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, payment.NewPaymentResponses(payments), &response.Meta{
		TotalItems: len(payments),
		Month:      period.String(),
	})
}

// Calendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grid, err := h.calendarService.WorkerCalendar(r.Context(), chi.URLParam(r, "id"), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

// Refresh implements AttendanceHandler. It reloads the cached ledger from the database.
func (h *attendanceHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance refreshed", nil)
}
