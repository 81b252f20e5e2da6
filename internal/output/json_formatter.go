package output

import (
	json "github.com/goccy/go-json"

	"github.com/seniorplan/carecalc/internal/domain"
)

// JSONFormatter renders the estimate as indented JSON, suitable for piping
// into other tooling or the form layer.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ResultRecord) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
