package http

import (
	"encoding/json"
	"net/http"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/payroll"
	"github.com/swisscourtage/brokerage-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	payslips, err := h.payrollService.GeneratePayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if len(payslips) == 0 {
		response.SuccessWithMessage(w, "No collaborators found for the selected period", payslips)
		return
	}
	response.Success(w, payslips)
}
