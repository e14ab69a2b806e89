package converter

import (
	"github.com/medilab/lab-api/internal/delivery/dto"
	"github.com/medilab/lab-api/internal/domain/entity"
)

func SecretaryToResponse(secretary *entity.Secretary) *dto.SecretaryResponse {
	if secretary == nil {
		return nil
	}
	return &dto.SecretaryResponse{
		SecretaryID: secretary.SecretaryID,
		Name:        secretary.Name,
	}
}

func SecretariesToResponses(secretaries []entity.Secretary) []dto.SecretaryResponse {
	responses := make([]dto.SecretaryResponse, 0, len(secretaries))
	for i := range secretaries {
		responses = append(responses, *SecretaryToResponse(&secretaries[i]))
	}
	return responses
}
