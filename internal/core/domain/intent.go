package domain

// Intent is the classified purpose of a user message, drawn from a
// closed set. Classification is an auditable keyword decision table,
// not a learned model.
type Intent string

// Recognised intents, in router priority order.
const (
	// IntentChecklist asks for a document checklist.
	IntentChecklist Intent = "checklist"

	// IntentRoadmap asks for a step-by-step immigration plan.
	IntentRoadmap Intent = "roadmap"

	// IntentCost asks for a cost estimate.
	IntentCost Intent = "cost"

	// IntentEmbassy asks where to find an embassy or consulate.
	IntentEmbassy Intent = "embassy"

	// IntentCompare asks to compare destination countries.
	IntentCompare Intent = "compare"

	// IntentVisaType asks which visa categories exist or fit.
	IntentVisaType Intent = "visa_type"

	// IntentEligibility asks whether the user qualifies.
	IntentEligibility Intent = "eligibility"

	// IntentFacts asks for factual requirements or rules.
	IntentFacts Intent = "facts"

	// IntentGeneric is everything else; answered via retrieval +
	// synthesis rather than a structured tool.
	IntentGeneric Intent = "generic"
)

// IsValid returns true if the intent is recognised.
func (i Intent) IsValid() bool {
	switch i {
	case IntentChecklist, IntentRoadmap, IntentCost, IntentEmbassy,
		IntentCompare, IntentVisaType, IntentEligibility, IntentFacts,
		IntentGeneric:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i Intent) String() string {
	return string(i)
}

// ToolName returns the tool identifier reported in AgentReply.ToolUsed
// for this intent.
func (i Intent) ToolName() string {
	if i == IntentGeneric {
		return "chat"
	}
	return string(i)
}
