package dto

type PredictRequest struct {
	WBC  float64 `json:"WBC"`
	RBC  float64 `json:"RBC"`
	HGB  float64 `json:"HGB"`
	HCT  float64 `json:"HCT"`
	MCV  float64 `json:"MCV"`
	MCH  float64 `json:"MCH"`
	MCHC float64 `json:"MCHC"`
	PLT  float64 `json:"PLT"`
}

type PredictResponse struct {
	Diagnosis  string  `json:"diagnosis"`
	Confidence float64 `json:"confidence"`
}
