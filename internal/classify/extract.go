package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sopclassify/internal/model"
)

var (
	// ErrNoJSON is returned when the model output contains no {...} span.
	ErrNoJSON = errors.New("no JSON object found in model response")

	// ErrMalformedJSON is returned when the extracted span fails to parse.
	ErrMalformedJSON = errors.New("malformed JSON in model response")
)

// ResponseExtractor recovers a ClassificationResult from raw model output.
// It is an interface so the greedy heuristic can be swapped for a stricter
// parser (or a provider structured-output feature) without touching callers.
type ResponseExtractor interface {
	Extract(raw string) (*model.ClassificationResult, error)
}

// GreedyExtractor takes the substring from the first '{' to the last '}'
// and parses it as JSON. Models are instructed, but not guaranteed, to emit
// JSON-only output; the greedy span tolerates leading/trailing prose and
// code fencing. Missing keys are not validated; absent fields surface as
// zero values downstream.
type GreedyExtractor struct{}

func (GreedyExtractor) Extract(raw string) (*model.ClassificationResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSON
	}

	var result model.ClassificationResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return &result, nil
}
