package converter

import (
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/entity"
)

// ReportToResponse converts a Report entity, folding in the identifying
// patient fields when the relation is loaded.
func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	resp := &dto.ReportResponse{
		ReportID:  report.ReportID,
		PatientID: report.PatientID,
		WBC:       report.WBC,
		RBC:       report.RBC,
		HGB:       report.HGB,
		HCT:       report.HCT,
		MCV:       report.MCV,
		MCH:       report.MCH,
		MCHC:      report.MCHC,
		PLT:       report.PLT,
		Diagnosis: report.Diagnosis,
		CreatedAt: report.CreatedAt,
	}
	if report.Patient != nil {
		resp.PatientName = report.Patient.Name
		resp.PatientAge = report.Patient.Age
		resp.Phone = report.Patient.Phone
	}
	return resp
}

func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *ReportToResponse(&reports[i]))
	}
	return responses
}
