package dto

import "time"

// CBC field keys stay uppercase on the wire, matching the schema the
// lab devices and the frontend already use.
type ReportCreateRequest struct {
	PatientID int     `json:"patient_id" validate:"required,gt=0"`
	WBC       float64 `json:"WBC"`
	RBC       float64 `json:"RBC"`
	HGB       float64 `json:"HGB"`
	HCT       float64 `json:"HCT"`
	MCV       float64 `json:"MCV"`
	MCH       float64 `json:"MCH"`
	MCHC      float64 `json:"MCHC"`
	PLT       float64 `json:"PLT"`
	Diagnosis string  `json:"Diagnosis" validate:"required"`
}

type ReportResponse struct {
	ReportID    int       `json:"report_id"`
	PatientID   int       `json:"patient_id"`
	WBC         float64   `json:"WBC"`
	RBC         float64   `json:"RBC"`
	HGB         float64   `json:"HGB"`
	HCT         float64   `json:"HCT"`
	MCV         float64   `json:"MCV"`
	MCH         float64   `json:"MCH"`
	MCHC        float64   `json:"MCHC"`
	PLT         float64   `json:"PLT"`
	Diagnosis   string    `json:"Diagnosis"`
	CreatedAt   time.Time `json:"created_at"`
	PatientName string    `json:"patient_name,omitempty"`
	PatientAge  int       `json:"age,omitempty"`
	Phone       string    `json:"phone,omitempty"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
