package domain

// Numeric ranges every generator clamps to before returning, whether
// the numbers came from a model or from a heuristic.
const (
	// MinConfidence and MaxConfidence bound confidence scores.
	MinConfidence = 1
	MaxConfidence = 100

	// MaxMonths bounds duration estimates.
	MaxMonths = 120
)

// ClampConfidence forces a confidence score into [1, 100].
func ClampConfidence(c int) int {
	if c < MinConfidence {
		return MinConfidence
	}
	if c > MaxConfidence {
		return MaxConfidence
	}
	return c
}

// ClampMonths forces a month estimate into [0, 120].
func ClampMonths(m int) int {
	if m < 0 {
		return 0
	}
	if m > MaxMonths {
		return MaxMonths
	}
	return m
}

// RoadmapStep is one ordered action within a roadmap path.
type RoadmapStep struct {
	// Title is the short action name.
	Title string `json:"title"`

	// Detail explains what the step involves.
	Detail string `json:"detail,omitempty"`

	// Months is the estimated duration, clamped to [0, 120].
	Months int `json:"months"`

	// Documents lists paperwork required at this step.
	Documents []string `json:"documents,omitempty"`
}

// RoadmapPath is one named route towards the user's goal.
type RoadmapPath struct {
	// RouteName names the path (e.g., "Skilled Worker visa").
	RouteName string `json:"routeName"`

	// Steps are the ordered actions for this path.
	Steps []RoadmapStep `json:"steps"`

	// TotalMonths is the summed duration estimate, clamped.
	TotalMonths int `json:"totalMonths"`

	// Confidence scores how well the path fits, clamped to [1, 100].
	Confidence int `json:"confidence"`
}

// RoadmapPlan is the roadmap tool's structured result: one to three
// named paths, most suitable first.
type RoadmapPlan struct {
	Destination string        `json:"destination"`
	Goal        string        `json:"goal"`
	Paths       []RoadmapPath `json:"paths"`
}

// Checklist is the checklist tool's structured result.
type Checklist struct {
	Destination string   `json:"destination"`
	VisaGoal    string   `json:"visaGoal"`
	Items       []string `json:"items"`
	Confidence  int      `json:"confidence"`
}

// CostLine is one line of a cost estimate.
type CostLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// CostEstimate is the cost tool's structured result.
type CostEstimate struct {
	Destination string     `json:"destination"`
	VisaGoal    string     `json:"visaGoal"`
	Lines       []CostLine `json:"lines"`
	Summary     string     `json:"summary,omitempty"`
	Confidence  int        `json:"confidence"`
}

// EligibilityReport is the eligibility tool's structured result.
type EligibilityReport struct {
	Destination string   `json:"destination"`
	VisaGoal    string   `json:"visaGoal"`
	Verdict     string   `json:"verdict"`
	Strengths   []string `json:"strengths,omitempty"`
	Gaps        []string `json:"gaps,omitempty"`
	Confidence  int      `json:"confidence"`
}

// ComparisonRow scores one country within a comparison.
type ComparisonRow struct {
	Country        string `json:"country"`
	VisaOptions    string `json:"visaOptions"`
	ProcessingTime string `json:"processingTime,omitempty"`
	IndicativeCost string `json:"indicativeCost,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// VisaComparison is the compare tool's structured result.
type VisaComparison struct {
	Goal       string          `json:"goal"`
	Rows       []ComparisonRow `json:"rows"`
	Suggestion string          `json:"suggestion,omitempty"`
	Confidence int             `json:"confidence"`
}

// VisaTypeList is the visa-type tool's structured result.
type VisaTypeList struct {
	Destination string     `json:"destination"`
	Types       []VisaType `json:"types"`
	Recommended string     `json:"recommended,omitempty"`
	Confidence  int        `json:"confidence"`
}

// EmbassyInfo is the embassy tool's structured result.
type EmbassyInfo struct {
	Destination     string `json:"destination"`
	OfficialSiteURL string `json:"officialSiteURL"`
	Guidance        string `json:"guidance"`
}

// FactsAnswer is the facts tool's structured result: the retrieved
// statements backing a factual question.
type FactsAnswer struct {
	Destination string   `json:"destination,omitempty"`
	Statements  []string `json:"statements"`
	Sources     []string `json:"sources,omitempty"`
}

// Artifact is a saved tool result (a roadmap, checklist, ...).
type Artifact struct {
	// ID is the unique artifact identifier.
	ID string `json:"id"`

	// Kind is the tool that produced it (an Intent's tool name).
	Kind string `json:"kind"`

	// Title is a short human-readable summary.
	Title string `json:"title"`

	// Payload is the JSON-encoded structured result.
	Payload []byte `json:"payload"`

	// CreatedAt is when the artifact was saved.
	CreatedAt string `json:"createdAt"`
}
