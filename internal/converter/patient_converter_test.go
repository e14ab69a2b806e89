package converter

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/medilab/lab-api/internal/domain/entity"
)

func TestPatientToResponseDerivesPaidAmount(t *testing.T) {
	patient := &entity.Patient{
		PatientID:    1,
		Name:         "Alice",
		TotalPayment: decimal.NewFromInt(500),
		Remaining:    decimal.NewFromInt(300),
		Secretary:    &entity.Secretary{SecretaryID: 2, Name: "Mona"},
	}

	resp := PatientToResponse(patient)
	if !resp.PaidAmount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected paid amount 200, got %s", resp.PaidAmount)
	}
	if resp.SecretaryName != "Mona" {
		t.Fatalf("expected secretary name from the preloaded relation, got %q", resp.SecretaryName)
	}
}

func TestPatientToResponseNil(t *testing.T) {
	if resp := PatientToResponse(nil); resp != nil {
		t.Fatalf("expected nil response for nil patient, got %+v", resp)
	}
}
