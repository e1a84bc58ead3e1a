package http

import (
	"encoding/json"
	"net/http"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/settlement"
	"github.com/swisscourtage/brokerage-backend-go/internal/handler/http/response"
)

type SettlementHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

func (h *settlementHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req settlement.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	statements, err := h.settlementService.GenerateStatements(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if len(statements) == 0 {
		response.SuccessWithMessage(w, "No commissions found for the selected period", statements)
		return
	}
	response.Success(w, statements)
}
