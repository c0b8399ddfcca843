package domain

import "go.trai.ch/zerr"

// OutputFormat selects how results are presented.
type OutputFormat string

const (
	// FormatText is the human-readable format.
	FormatText OutputFormat = "text"
	// FormatJSON is the machine-readable format.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates s as an OutputFormat. An empty string selects FormatText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", zerr.With(ErrUnknownOutputFormat, "format", s)
	}
}
