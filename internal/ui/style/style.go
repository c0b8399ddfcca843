// Package style provides shared colors and icons for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Sky    = lipgloss.Color("#0EA5E9")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Reclaimable sizes at or above these thresholds are highlighted.
const (
	HeavyBytes  int64 = 1 << 30
	MediumBytes int64 = 100 << 20
)

// SizeColor returns the color a reclaimable size is drawn in.
func SizeColor(n int64) lipgloss.Color {
	switch {
	case n >= HeavyBytes:
		return Red
	case n >= MediumBytes:
		return Yellow
	default:
		return Slate
	}
}
