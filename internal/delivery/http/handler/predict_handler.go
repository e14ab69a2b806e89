package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/ml"
	"github.com/medilab/lab-api/pkg/response"
)

type PredictHandler struct {
	predictor *ml.Predictor
}

func NewPredictHandler(predictor *ml.Predictor) *PredictHandler {
	return &PredictHandler{predictor: predictor}
}

// Predict classifies a CBC panel into a diagnosis suggestion. When the
// trained classifier is unavailable the adapter answers from its
// rule-based fallback, so this endpoint never fails on model errors.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	prediction := h.predictor.Predict(ml.CBC{
		WBC:  req.WBC,
		RBC:  req.RBC,
		HGB:  req.HGB,
		HCT:  req.HCT,
		MCV:  req.MCV,
		MCH:  req.MCH,
		MCHC: req.MCHC,
		PLT:  req.PLT,
	})

	response.JSON(w, http.StatusOK, dto.PredictResponse{
		Diagnosis:  prediction.Diagnosis,
		Confidence: prediction.Confidence,
	})
}
