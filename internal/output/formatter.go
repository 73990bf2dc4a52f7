package output

import (
	"fmt"
	"strings"

	"github.com/trevoralpert/FutureFund-sub002/internal/consequence"
)

// Formatter renders an analysis result as bytes. Implementations must be
// pure: identical results format identically.
type Formatter interface {
	Format(result *consequence.AnalysisResult) ([]byte, error)
	// Name returns the identifier used on the --format flag.
	Name() string
}

// builtInFormatters lists the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, nil if unknown.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames lists the valid --format values.
func AvailableFormatterNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}

// FormatResult renders a result using the named formatter.
func FormatResult(result *consequence.AnalysisResult, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("unsupported format %q, try one of: %s",
			format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return f.Format(result)
}
