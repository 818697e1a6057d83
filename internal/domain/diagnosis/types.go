package diagnosis

// Severity is the urgency tier assigned to a diagnosis. Tokens are the
// Indonesian product vocabulary and appear verbatim in API payloads.
type Severity string

const (
	SeverityLow    Severity = "rendah"
	SeverityMedium Severity = "sedang"
	SeverityHigh   Severity = "tinggi"
)

// Valid reports whether s is one of the three known tokens.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Rank orders severities for display, highest urgency last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Diagnosis is the normalized result of one diagnosis request.
type Diagnosis struct {
	PossibleConditions []string `json:"possibleConditions"`
	Severity           Severity `json:"severity"`
	Recommendation     string   `json:"recommendation"`
}

// HealthFacility describes one recommended facility. All fields are
// free text supplied by the model; nothing here is verified.
type HealthFacility struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Address  string `json:"address"`
	Distance string `json:"distance"`
}

// Request is the diagnosis payload accepted by the HTTP transport.
type Request struct {
	Symptoms []string `json:"symptoms"`
}
