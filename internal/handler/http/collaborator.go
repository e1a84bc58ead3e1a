package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/handler/http/response"
)

type CollaboratorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type collaboratorHandlerImpl struct {
	collaboratorService collaborator.CollaboratorService
}

func NewCollaboratorHandler(collaboratorService collaborator.CollaboratorService) CollaboratorHandler {
	return &collaboratorHandlerImpl{collaboratorService: collaboratorService}
}

func (h *collaboratorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.collaboratorService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *collaboratorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.collaboratorService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *collaboratorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req collaborator.CreateCollaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.collaboratorService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Collaborator created", result)
}
