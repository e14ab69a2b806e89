package ml

import (
	"github.com/sirupsen/logrus"

	"github.com/medilab/lab-api/config"
)

// CBC holds the eight complete blood count measurements, in the order
// the classifier was trained on: WBC, RBC, HGB, HCT, MCV, MCH, MCHC, PLT.
type CBC struct {
	WBC  float64
	RBC  float64
	HGB  float64
	HCT  float64
	MCV  float64
	MCH  float64
	MCHC float64
	PLT  float64
}

// Prediction is the adapter output.
type Prediction struct {
	Diagnosis  string  `json:"diagnosis"`
	Confidence float64 `json:"confidence"`
}

// diagnosisLabels maps the classifier's integer class to a diagnosis.
var diagnosisLabels = [...]string{
	0: "Healthy",
	1: "Other microcytic anemia",
	2: "Iron deficiency anemia",
	3: "Normocytic hypochromic anemia",
	4: "Normocytic normochromic anemia",
	5: "Macrocytic anemia",
	6: "Thrombocytopenia",
	7: "Leukemia",
	8: "Leukemia with thrombocytopenia",
}

const defaultConfidence = 0.85

// Predictor wraps the persisted scaler and decision tree. It is
// constructed once at startup and shared read-only afterwards; when the
// artifacts could not be loaded it stays in rule-based fallback mode.
type Predictor struct {
	log    *logrus.Logger
	scaler *Scaler
	model  *DecisionTree
}

func NewPredictor(cfg config.MLConfig, log *logrus.Logger) *Predictor {
	p := &Predictor{log: log}

	scaler, err := LoadScaler(cfg.ScalerPath)
	if err != nil {
		log.Warnf("Could not load feature scaler, falling back to rule-based prediction: %+v", err)
		return p
	}

	model, err := LoadDecisionTree(cfg.ModelPath)
	if err != nil {
		log.Warnf("Could not load classifier, falling back to rule-based prediction: %+v", err)
		return p
	}

	p.scaler = scaler
	p.model = model
	log.Info("CBC classifier loaded")
	return p
}

// ModelLoaded reports whether the trained classifier is available.
func (p *Predictor) ModelLoaded() bool {
	return p.model != nil && p.scaler != nil
}

// Predict classifies a CBC panel. Any inference failure degrades to the
// rule-based fallback rather than returning an error.
func (p *Predictor) Predict(cbc CBC) Prediction {
	if !p.ModelLoaded() {
		return ruleBasedPrediction(cbc)
	}

	features := []float64{cbc.WBC, cbc.RBC, cbc.HGB, cbc.HCT, cbc.MCV, cbc.MCH, cbc.MCHC, cbc.PLT}
	scaled, err := p.scaler.Transform(features)
	if err != nil {
		p.log.Warnf("Scaler transform failed: %+v", err)
		return ruleBasedPrediction(cbc)
	}

	class, probabilities, err := p.model.Predict(scaled)
	if err != nil {
		p.log.Warnf("Classifier prediction failed: %+v", err)
		return ruleBasedPrediction(cbc)
	}

	diagnosis := "Unknown"
	if class >= 0 && class < len(diagnosisLabels) {
		diagnosis = diagnosisLabels[class]
	}

	confidence := defaultConfidence
	if len(probabilities) > 0 {
		confidence = probabilities[0]
		for _, prob := range probabilities[1:] {
			if prob > confidence {
				confidence = prob
			}
		}
	}

	return Prediction{Diagnosis: diagnosis, Confidence: confidence}
}

// ruleBasedPrediction is the hand-coded fallback chain, evaluated in
// precedence order.
func ruleBasedPrediction(cbc CBC) Prediction {
	switch {
	case cbc.HGB < 13.5:
		return Prediction{Diagnosis: "Anemia Detected", Confidence: 0.92}
	case cbc.WBC > 11.0:
		return Prediction{Diagnosis: "Elevated WBC - Further Investigation Needed", Confidence: 0.88}
	case cbc.PLT < 150:
		return Prediction{Diagnosis: "Low Platelet Count", Confidence: 0.90}
	default:
		return Prediction{Diagnosis: "Normal", Confidence: defaultConfidence}
	}
}
