package services

import (
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// routerRule pairs an intent with the keywords that select it.
// Keywords may be multi-word phrases; matching is substring containment
// on the lower-cased input.
type routerRule struct {
	intent   domain.Intent
	keywords []string
}

// routerRules is a deliberate priority list: the first rule whose
// keyword set intersects the input wins, so a message matching several
// rules resolves deterministically to the earliest-declared one.
// No machine-learned classifier; this table is the whole router.
var routerRules = []routerRule{
	{domain.IntentChecklist, []string{"checklist", "documents do i need", "paperwork", "what documents", "which documents"}},
	{domain.IntentRoadmap, []string{"roadmap", "step by step", "plan for moving", "how do i move", "how can i move", "relocate", "migration plan"}},
	{domain.IntentCost, []string{"cost", "fee", "fees", "price", "how much", "expensive", "budget"}},
	{domain.IntentEmbassy, []string{"embassy", "consulate"}},
	{domain.IntentCompare, []string{"compare", "versus", " vs ", "vs.", "better option", "which country"}},
	{domain.IntentVisaType, []string{"visa type", "visa types", "types of visa", "kind of visa", "which visa", "what visa"}},
	{domain.IntentEligibility, []string{"eligible", "eligibility", "qualify", "do i meet", "my chances"}},
	{domain.IntentFacts, []string{"requirement", "requirements", "rules", "policy", "allowed", "how long can i stay", "passport"}},
}

// IntentRouter classifies free-text input into one of the fixed
// intents. It is a pure function over the rule table above.
type IntentRouter struct{}

// NewIntentRouter creates a new intent router.
func NewIntentRouter() *IntentRouter {
	return &IntentRouter{}
}

// Classify returns the intent of the message. Unmatched input is
// IntentGeneric.
func (r *IntentRouter) Classify(text string) domain.Intent {
	lowered := strings.ToLower(text)

	for _, rule := range routerRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.intent
			}
		}
	}
	return domain.IntentGeneric
}
