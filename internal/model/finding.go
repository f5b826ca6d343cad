// finding.go - A single reconciliation finding.

package model

// Severity classes for findings, from most to least urgent.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Display colors paired with the severity classes.
const (
	ColorRed   = "red"
	ColorAmber = "amber"
	ColorBlue  = "blue"
)

// Finding is one discrepancy surfaced by the reconciliation engine. It is
// a pure derivation of the three records, never mutated after creation,
// and serialized directly into the response.
type Finding struct {
	SeverityClass     string `json:"severityClass"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	RecommendedAction string `json:"recommendedAction"`
	SeverityColor     string `json:"severityColor"`
}
