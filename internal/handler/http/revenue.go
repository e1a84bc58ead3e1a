package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/revenue"
	"github.com/swisscourtage/brokerage-backend-go/internal/handler/http/response"
)

type RevenueHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	MonthlySeries(w http.ResponseWriter, r *http.Request)
}

type revenueHandlerImpl struct {
	revenueService revenue.RevenueService
}

func NewRevenueHandler(revenueService revenue.RevenueService) RevenueHandler {
	return &revenueHandlerImpl{revenueService: revenueService}
}

func (h *revenueHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = string(revenue.PeriodAll)
	}
	if !revenue.ValidPeriod(period) {
		response.BadRequest(w, "period must be one of all, week, month, quarter, year", nil)
		return
	}

	overview, err := h.revenueService.Overview(r.Context(), revenue.Period(period))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

func (h *revenueHandlerImpl) MonthlySeries(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 {
			response.BadRequest(w, "year must be a valid year", nil)
			return
		}
		year = parsed
	}

	series, err := h.revenueService.MonthlySeries(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, series)
}
