package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler is a standard z-score feature scaler exported from the
// training pipeline: x' = (x - mean) / scale, per feature.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact: %w", err)
	}

	var scaler Scaler
	if err := json.Unmarshal(data, &scaler); err != nil {
		return nil, fmt.Errorf("decode scaler artifact: %w", err)
	}
	if len(scaler.Mean) != len(scaler.Scale) {
		return nil, fmt.Errorf("scaler artifact mismatch: %d means vs %d scales", len(scaler.Mean), len(scaler.Scale))
	}

	return &scaler, nil
}

// Transform applies the scaler to a feature vector.
func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(features))
	}

	scaled := make([]float64, len(features))
	for i, value := range features {
		divisor := s.Scale[i]
		if divisor == 0 {
			divisor = 1
		}
		scaled[i] = (value - s.Mean[i]) / divisor
	}
	return scaled, nil
}

// TreeNode is one node of the exported decision tree. Feature is -1 on
// leaves; Counts holds the per-class training sample counts of a leaf.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Counts    []float64 `json:"counts"`
}

// DecisionTree is the persisted classifier: a flat node array with
// index 0 as the root. Samples with feature <= threshold go left.
type DecisionTree struct {
	Nodes []TreeNode `json:"nodes"`
}

func LoadDecisionTree(path string) (*DecisionTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var tree DecisionTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if len(tree.Nodes) == 0 {
		return nil, fmt.Errorf("model artifact has no nodes")
	}

	return &tree, nil
}

// Predict walks the tree and returns the winning class together with
// the leaf's class probability distribution.
func (t *DecisionTree) Predict(features []float64) (int, []float64, error) {
	index := 0
	for {
		if index < 0 || index >= len(t.Nodes) {
			return 0, nil, fmt.Errorf("node index %d out of range", index)
		}
		node := t.Nodes[index]

		if node.Feature < 0 {
			return leafPrediction(node)
		}
		if node.Feature >= len(features) {
			return 0, nil, fmt.Errorf("node references feature %d, have %d features", node.Feature, len(features))
		}

		if features[node.Feature] <= node.Threshold {
			index = node.Left
		} else {
			index = node.Right
		}
	}
}

func leafPrediction(node TreeNode) (int, []float64, error) {
	if len(node.Counts) == 0 {
		return 0, nil, fmt.Errorf("leaf carries no class counts")
	}

	total := 0.0
	best := 0
	for class, count := range node.Counts {
		total += count
		if count > node.Counts[best] {
			best = class
		}
	}
	if total == 0 {
		return 0, nil, fmt.Errorf("leaf carries empty class counts")
	}

	probabilities := make([]float64, len(node.Counts))
	for class, count := range node.Counts {
		probabilities[class] = count / total
	}
	return best, probabilities, nil
}
