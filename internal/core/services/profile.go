package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages the single local user profile: persistence,
// field-precedence merging, and chat-derived auto-fill.
type ProfileService struct {
	store   driven.ProfileStore
	extract *extractor
	fields  driven.FieldExtractor
	now     func() time.Time
}

// NewProfileService creates a new profile service. The catalogue is
// used to recognise country mentions in chat.
func NewProfileService(store driven.ProfileStore, catalogue driven.FactCatalogue) *ProfileService {
	return &ProfileService{
		store:   store,
		extract: newExtractor(catalogue),
		now:     time.Now,
	}
}

// WithFieldExtractor sets the optional document field-extraction
// collaborator used by ImportDocument.
func (s *ProfileService) WithFieldExtractor(fx driven.FieldExtractor) *ProfileService {
	s.fields = fx
	return s
}

// GetOrCreate returns the stored profile, creating an empty one on
// first access. A failed read is treated as "no profile yet".
func (s *ProfileService) GetOrCreate(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Profile load failed, starting empty: %v", err)
		}
		return &domain.UserProfile{LastSeen: s.now()}, nil
	}
	return profile, nil
}

// Apply merges a partial update onto the profile and persists it.
// A failed write keeps the merged profile in the reply; persistence is
// a side effect, not part of the merge contract.
func (s *ProfileService) Apply(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	profile, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	profile.Merge(update)
	profile.LastSeen = s.now()

	if err := s.store.Save(ctx, profile); err != nil {
		logger.Warn("Profile save failed: %v", err)
	}
	return profile, nil
}

// AutoFillFromChat extracts profile signals from the full message
// history and merges them, weighting user messages over assistant
// messages: when both mention the same field, the user's value wins.
// It then computes at most one missing-information question for the
// given "needed for" context.
func (s *ProfileService) AutoFillFromChat(ctx context.Context, history []domain.ChatTurn, destinationHint, neededFor string) (*domain.UserProfile, string, error) {
	profile, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, "", err
	}

	// Assistant-derived signals first, user-derived second, so the
	// user's values overwrite the assistant's for the same field.
	for _, turn := range history {
		if turn.Role != domain.RoleAssistant {
			continue
		}
		profile.Merge(s.extract.profileSignals(turn.Content))
	}
	for _, turn := range history {
		if turn.Role != domain.RoleUser {
			continue
		}
		profile.Merge(s.extract.profileSignals(turn.Content))
	}
	profile.LastSeen = s.now()

	if err := s.store.Save(ctx, profile); err != nil {
		logger.Warn("Profile save failed during auto-fill: %v", err)
	}

	prompt := s.missingInfoPrompt(profile, destinationHint, neededFor)
	return profile, prompt, nil
}

// ImportDocument runs the field-extraction collaborator over a
// document and merges any recognised fields into the profile. The
// extractor is best-effort: unrecognised keys are ignored, and a
// document with no usable fields is domain.ErrInvalidInput.
func (s *ProfileService) ImportDocument(ctx context.Context, content []byte, mimeType string) (*domain.UserProfile, error) {
	if s.fields == nil {
		return nil, domain.ErrFeatureUnavailable
	}

	extracted, err := s.fields.ExtractFields(ctx, content, mimeType)
	if err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}

	update, found := updateFromFields(extracted)
	if !found {
		return nil, fmt.Errorf("%w: no recognised profile fields", domain.ErrInvalidInput)
	}
	return s.Apply(ctx, update)
}

// updateFromFields maps extracted key-value pairs onto a profile
// update. Keys are matched case-insensitively with spaces and hyphens
// treated as underscores.
func updateFromFields(fields map[string]string) (domain.ProfileUpdate, bool) {
	var update domain.ProfileUpdate
	found := false

	for key, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		key = strings.ReplaceAll(key, " ", "_")
		key = strings.ReplaceAll(key, "-", "_")

		switch key {
		case "nationality", "citizenship":
			update.Nationality = value
		case "residence", "country_of_residence":
			update.Residence = value
		case "education", "education_level":
			update.Education = value
		case "finances", "funds":
			update.Finances = value
		case "work_status", "employment":
			update.WorkStatus = value
		case "current_visa", "visa":
			update.CurrentVisa = value
		case "work_years", "years_of_experience":
			years, err := strconv.Atoi(value)
			if err != nil || years < 0 {
				continue
			}
			update.WorkYears = &years
		case "passport_expiry", "date_of_expiry":
			expiry, err := time.Parse("2006-01-02", value)
			if err != nil {
				continue
			}
			update.PassportExpiry = &expiry
		case "languages":
			for _, lang := range strings.Split(value, ",") {
				if lang = strings.TrimSpace(lang); lang != "" {
					update.Languages = append(update.Languages, lang)
				}
			}
		default:
			continue
		}
		found = true
	}
	return update, found
}

// Reset deletes the stored profile.
func (s *ProfileService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

// requiredField is one required-input rule for a "needed for" context.
type requiredField struct {
	label   string
	missing func(p *domain.UserProfile, destination string) bool
}

var (
	needDestination = requiredField{
		label: "destination country",
		missing: func(_ *domain.UserProfile, destination string) bool {
			return destination == ""
		},
	}
	needGoal = requiredField{
		label: "visa goal (work, study, tourism, family or residency)",
		missing: func(p *domain.UserProfile, _ string) bool {
			return len(p.SelectedGoals) == 0
		},
	}
	needNationality = requiredField{
		label: "nationality",
		missing: func(p *domain.UserProfile, _ string) bool {
			return p.Nationality == ""
		},
	}
)

// requiredByContext maps a tool name to the inputs it cannot run
// without. Contexts absent from the map never gate.
var requiredByContext = map[string][]requiredField{
	"roadmap":     {needDestination, needGoal, needNationality},
	"checklist":   {needDestination, needGoal},
	"cost":        {needDestination, needGoal},
	"eligibility": {needDestination, needGoal, needNationality},
	"visa_type":   {needDestination},
	"embassy":     {needDestination},
	"facts":       {needDestination},
}

// missingInfoPrompt returns one context-aware question covering every
// still-missing required field, or "" when nothing is missing.
func (s *ProfileService) missingInfoPrompt(profile *domain.UserProfile, destination, neededFor string) string {
	rules, ok := requiredByContext[neededFor]
	if !ok {
		return ""
	}

	var missing []string
	for _, rule := range rules {
		if rule.missing(profile, destination) {
			missing = append(missing, rule.label)
		}
	}
	if len(missing) == 0 {
		return ""
	}

	logger.Debug("Gating %s: missing %v", neededFor, missing)
	return fmt.Sprintf("Before I can help with that, could you tell me your %s?",
		joinNatural(missing))
}

// joinNatural joins items as "a, b and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
