package http

import (
	"net/http"
	"time"

	"github.com/sitebook/sitebook-backend/internal/domain/dashboard"
	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
)

type DashboardHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Today implements DashboardHandler. ?date= defaults to the current day.
func (h *dashboardHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = dateutil.Format(time.Now())
	}

	result, err := h.dashboardService.Today(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements DashboardHandler.
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Overview(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
