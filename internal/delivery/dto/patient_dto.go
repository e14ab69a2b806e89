package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PatientCreateRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Age          int             `json:"age" validate:"gte=0,lte=150"`
	Phone        string          `json:"phone" validate:"max=20"`
	TotalPayment decimal.Decimal `json:"total_payment"`
	SecretaryID  *int            `json:"secertary_id"`
}

type PatientUpdateRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Age          int             `json:"age" validate:"gte=0,lte=150"`
	Phone        string          `json:"phone" validate:"max=20"`
	TotalPayment decimal.Decimal `json:"total_payment"`
}

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	PatientID    int             `json:"patient_id"`
	NewRemaining decimal.Decimal `json:"new_remaining"`
}

type PatientResponse struct {
	PatientID     int             `json:"patient_id"`
	Name          string          `json:"name"`
	Age           int             `json:"age"`
	Phone         string          `json:"phone"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	Remaining     decimal.Decimal `json:"remaining"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	SecretaryID   *int            `json:"secertary_id,omitempty"`
	SecretaryName string          `json:"secretary_name,omitempty"`
	NowDate       time.Time       `json:"now_date"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
