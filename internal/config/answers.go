package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seniorplan/carecalc/internal/domain"
)

// AnswersParser handles parsing of saved answer files. The form layer may
// serialize its answer map for save/resume; the file is a flat YAML (or
// JSON) mapping of answer keys to primitives.
type AnswersParser struct{}

// NewAnswersParser creates a new answers parser.
func NewAnswersParser() *AnswersParser {
	return &AnswersParser{}
}

// LoadFromFile loads an answer map from a YAML or JSON file. Unknown keys
// are preserved untouched; the engine simply ignores keys it does not read.
func (ap *AnswersParser) LoadFromFile(filename string) (domain.AnswerMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ap.Parse(data)
}

// Parse parses answer file contents.
func (ap *AnswersParser) Parse(data []byte) (domain.AnswerMap, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return domain.AnswerMap(raw), nil
}
