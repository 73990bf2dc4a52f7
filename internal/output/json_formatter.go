package output

import (
	"encoding/json"

	"github.com/trevoralpert/FutureFund-sub002/internal/consequence"
)

// JSONFormatter serializes the full analysis envelope as pretty-printed JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *consequence.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
