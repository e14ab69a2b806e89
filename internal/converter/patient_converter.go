package converter

import (
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its API shape.
// paid_amount is derived, never stored.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		PatientID:    patient.PatientID,
		Name:         patient.Name,
		Age:          patient.Age,
		Phone:        patient.Phone,
		TotalPayment: patient.TotalPayment,
		Remaining:    patient.Remaining,
		PaidAmount:   patient.PaidAmount(),
		SecretaryID:  patient.SecretaryID,
		NowDate:      patient.NowDate,
	}
	if patient.Secretary != nil {
		resp.SecretaryName = patient.Secretary.Name
	}
	return resp
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
