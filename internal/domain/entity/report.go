package entity

import "time"

// Report holds a single complete blood count panel for a patient.
// Reports are immutable once created, there is no update or delete path.
type Report struct {
	ReportID  int       `gorm:"column:report_id;primaryKey;autoIncrement" json:"report_id"`
	PatientID int       `gorm:"column:patient_id;not null;index" json:"patient_id"`
	WBC       float64   `gorm:"column:wbc;type:numeric(8,2);not null" json:"WBC"`
	RBC       float64   `gorm:"column:rbc;type:numeric(8,2);not null" json:"RBC"`
	HGB       float64   `gorm:"column:hgb;type:numeric(8,2);not null" json:"HGB"`
	HCT       float64   `gorm:"column:hct;type:numeric(8,2);not null" json:"HCT"`
	MCV       float64   `gorm:"column:mcv;type:numeric(8,2);not null" json:"MCV"`
	MCH       float64   `gorm:"column:mch;type:numeric(8,2);not null" json:"MCH"`
	MCHC      float64   `gorm:"column:mchc;type:numeric(8,2);not null" json:"MCHC"`
	PLT       float64   `gorm:"column:plt;type:numeric(8,2);not null" json:"PLT"`
	Diagnosis string    `gorm:"type:text;not null" json:"Diagnosis"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"patient,omitempty"`
}

func (Report) TableName() string {
	return "report"
}
