package handler

import (
	"net/http"

	"github.com/medilab/lab-api/internal/usecase"
	"github.com/medilab/lab-api/pkg/response"
)

type SecretaryHandler struct {
	secretaryUsecase usecase.SecretaryUsecase
}

func NewSecretaryHandler(secretaryUsecase usecase.SecretaryUsecase) *SecretaryHandler {
	return &SecretaryHandler{secretaryUsecase: secretaryUsecase}
}

func (h *SecretaryHandler) GetAllSecretaries(w http.ResponseWriter, r *http.Request) {
	secretaries, err := h.secretaryUsecase.GetAllSecretaries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get secretaries")
		return
	}

	response.Success(w, http.StatusOK, "Secretaries retrieved successfully", secretaries)
}

func (h *SecretaryHandler) GetSecretary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid secretary ID", nil)
		return
	}

	secretary, err := h.secretaryUsecase.GetSecretary(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSecretaryNotFound:
			response.NotFound(w, "Secretary not found")
		default:
			response.InternalServerError(w, "Failed to get secretary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Secretary retrieved successfully", secretary)
}
