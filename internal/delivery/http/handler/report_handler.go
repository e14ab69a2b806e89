package handler

import (
	"encoding/json"
	"net/http"

	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/usecase"
	"github.com/medilab/lab-api/pkg/response"
	"github.com/medilab/lab-api/pkg/validator"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func (h *ReportHandler) GetAllReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetAllReports(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

// GetPendingPatients lists patients still waiting for a report.
func (h *ReportHandler) GetPendingPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.reportUsecase.GetPendingPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pending reports")
		return
	}

	response.Success(w, http.StatusOK, "Pending patients retrieved successfully", patients)
}

func (h *ReportHandler) GetReportByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	report, err := h.reportUsecase.GetReportByPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.CreateReport(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report created successfully", report)
}
